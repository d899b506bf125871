package web

import (
	"database/sql"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/draft"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/ops"
	"github.com/ikhairy/outreach/internal/request"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	drafts   *draft.Service
	renderer *Renderer
}

// HandleDashboard handles GET /requests — the request table plus the
// new-request form.
func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	result, err := ops.List(r.Context(), h.db, ops.ListInput{Status: statusFilter})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// Only Pending requests are offered for drafting.
	pending, err := ops.List(r.Context(), h.db, ops.ListInput{Status: string(request.StatusPending)})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "dashboard", DashboardPageData{
		PageData: PageData{
			Title:   "Requests",
			Version: h.renderer.version,
			Nav:     "requests",
		},
		Requests:     result.Requests,
		Pending:      pending.Requests,
		Total:        result.Total,
		Services:     h.cfg.Services,
		StatusFilter: statusFilter,
		Statuses:     request.AllStatuses(),
		Notice:       r.URL.Query().Get("notice"),
	})
}

// HandleDraftSelect handles GET /requests/draft — open the proposal
// workspace for the chosen pending request.
func (h *Handlers) HandleDraftSelect(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("request ID must be a positive integer"))
		return
	}
	http.Redirect(w, r, "/requests/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// HandleCreate handles POST /requests — record a new client request.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	result, err := ops.Create(r.Context(), h.db, h.cfg, ops.CreateInput{
		ClientName:     r.FormValue("client_name"),
		ServiceNeeded:  r.FormValue("service_needed"),
		ClientHeadline: r.FormValue("client_headline"),
		ProjectDetails: r.FormValue("project_details"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/requests/"+strconv.FormatInt(result.Request.ID, 10), http.StatusSeeOther)
}

// HandleDetail handles GET /requests/{id} — view a request and its
// proposal workspace.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.fetchRequest(w, r)
	if !ok {
		return
	}

	h.renderDetail(w, req, detailView{
		Notice: r.URL.Query().Get("notice"),
	})
}

// HandleEditForm handles GET /requests/{id}/edit — the edit form.
func (h *Handlers) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	req, ok := h.fetchRequest(w, r)
	if !ok {
		return
	}

	h.renderer.renderPage(w, "edit", EditPageData{
		PageData: PageData{
			Title:   "Edit " + req.ClientName,
			Version: h.renderer.version,
			Nav:     "requests",
		},
		Request:  req,
		Services: h.cfg.Services,
		Statuses: request.AllStatuses(),
	})
}

// HandleEdit handles POST /requests/{id}/edit — apply field updates.
func (h *Handlers) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	_, err := ops.Update(r.Context(), h.db, h.cfg, ops.UpdateInput{
		ID:             id,
		ClientName:     formPtr(r, "client_name"),
		ServiceNeeded:  formPtr(r, "service_needed"),
		ClientHeadline: formPtr(r, "client_headline"),
		ProjectDetails: formPtr(r, "project_details"),
		Status:         formPtr(r, "status"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, detailURL(id, "Request updated."), http.StatusSeeOther)
}

// HandleGenerate handles POST /requests/{id}/generate — produce a fresh
// proposal draft. The draft travels in the rendered page, not in server
// state, so a reload never resurrects a stale draft.
func (h *Handlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.fetchRequest(w, r)
	if !ok {
		return
	}
	if !req.Pending() {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("draft generation is only available for Pending requests"))
		return
	}

	text, err := h.drafts.Generate(r.Context(), req)
	if err != nil {
		h.renderDraftError(w, req, "", err)
		return
	}

	h.renderDetail(w, req, detailView{Draft: text})
}

// HandleRefine handles POST /requests/{id}/refine — rewrite the draft the
// author currently has in the editor. On failure the editor keeps the
// original text.
func (h *Handlers) HandleRefine(w http.ResponseWriter, r *http.Request) {
	req, ok := h.fetchRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	text := r.FormValue("draft")
	if strings.TrimSpace(text) == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("draft text is required"))
		return
	}

	refined, err := h.drafts.Refine(r.Context(), text)
	if err != nil {
		h.renderDraftError(w, req, refined, err)
		return
	}

	h.renderDetail(w, req, detailView{Draft: refined, Notice: "Draft refined."})
}

// HandleFinalize handles POST /requests/{id}/finalize — persist the sent
// proposal and mark the request Contacted.
func (h *Handlers) HandleFinalize(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	_, err := ops.Finalize(r.Context(), h.db, ops.FinalizeInput{
		ID:           id,
		ProposalText: r.FormValue("draft"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, detailURL(id, "Proposal saved and request marked Contacted."), http.StatusSeeOther)
}

// detailView carries per-render state for the detail page.
type detailView struct {
	Draft      string
	Notice     string
	DraftError string
}

func (h *Handlers) renderDetail(w http.ResponseWriter, req *request.Request, view detailView) {
	data := DetailPageData{
		PageData: PageData{
			Title:   req.ClientName,
			Version: h.renderer.version,
			Nav:     "requests",
		},
		Request:     req,
		Draft:       view.Draft,
		DraftChars:  utf8.RuneCountInString(view.Draft),
		DraftReady:  view.Draft != "",
		CanGenerate: h.drafts.Available(),
		Notice:      view.Notice,
		DraftError:  view.DraftError,
	}
	if view.Draft != "" {
		data.DraftHTML = renderMarkdown(view.Draft)
	}
	if req.SubmittedProposal != "" {
		data.ProposalHTML = renderMarkdown(req.SubmittedProposal)
	}
	h.renderer.renderPage(w, "detail", data)
}

// renderDraftError re-renders the detail page with the draft editor intact
// and the failure message shown beside it.
func (h *Handlers) renderDraftError(w http.ResponseWriter, req *request.Request, draftText string, err error) {
	message := "draft operation failed"
	if oErr, ok := errors.AsOutreach(err); ok {
		message = oErr.Message
	}
	h.renderDetail(w, req, detailView{
		Draft:      draftText,
		DraftError: message,
	})
}

func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("request ID must be a positive integer"))
		return 0, false
	}
	return id, true
}

func (h *Handlers) fetchRequest(w http.ResponseWriter, r *http.Request) (*request.Request, bool) {
	id, ok := h.pathID(w, r)
	if !ok {
		return nil, false
	}

	result, err := ops.Fetch(r.Context(), h.db, ops.FetchInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return nil, false
	}
	return &result.Request, true
}

func detailURL(id int64, notice string) string {
	return "/requests/" + strconv.FormatInt(id, 10) + "?notice=" + url.QueryEscape(notice)
}

// formPtr returns a pointer to the form value if the field was submitted,
// nil otherwise.
func formPtr(r *http.Request, name string) *string {
	if !r.Form.Has(name) {
		return nil
	}
	v := r.FormValue(name)
	return &v
}
