package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/draft"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db      *sql.DB
	cfg     *config.Config
	drafts  *draft.Service
	baseDir string
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config, drafts *draft.Service, baseDir string) *Handlers {
	return &Handlers{db: db, cfg: cfg, drafts: drafts, baseDir: baseDir}
}

// Request types for each tool

// CreateRequest represents the arguments for request_create.
type CreateRequest struct {
	ClientName     string `json:"client_name"`
	ServiceNeeded  string `json:"service_needed"`
	ClientHeadline string `json:"client_headline,omitempty"`
	ProjectDetails string `json:"project_details"`
}

// FetchRequest represents the arguments for request_fetch.
type FetchRequest struct {
	ID int64 `json:"id"`
}

// ListRequest represents the arguments for request_list.
type ListRequest struct {
	Status string `json:"status,omitempty"`
}

// UpdateRequest represents the arguments for request_update.
type UpdateRequest struct {
	ID                int64   `json:"id"`
	ClientName        *string `json:"client_name,omitempty"`
	ServiceNeeded     *string `json:"service_needed,omitempty"`
	ClientHeadline    *string `json:"client_headline,omitempty"`
	ProjectDetails    *string `json:"project_details,omitempty"`
	Status            *string `json:"status,omitempty"`
	SubmittedProposal *string `json:"submitted_proposal,omitempty"`
}

// FinalizeRequest represents the arguments for request_finalize.
type FinalizeRequest struct {
	ID           int64  `json:"id"`
	ProposalText string `json:"proposal_text"`
	Status       string `json:"status,omitempty"`
}

// GenerateRequest represents the arguments for proposal_generate.
type GenerateRequest struct {
	ID int64 `json:"id"`
}

// RefineRequest represents the arguments for proposal_refine.
type RefineRequest struct {
	Draft string `json:"draft"`
}

// ExportRequest represents the arguments for request_export.
type ExportRequest struct {
	Path   string `json:"path,omitempty"`
	Status string `json:"status,omitempty"`
}

// DraftResult is the payload returned by the proposal tools.
type DraftResult struct {
	Draft string `json:"draft"`
}

// Handler implementations

// HandleCreate handles the request_create tool call.
func (h *Handlers) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CreateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Create(ctx, h.db, h.cfg, ops.CreateInput{
		ClientName:     input.ClientName,
		ServiceNeeded:  input.ServiceNeeded,
		ClientHeadline: input.ClientHeadline,
		ProjectDetails: input.ProjectDetails,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the request_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(ctx, h.db, ops.FetchInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the request_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(ctx, h.db, ops.ListInput{Status: input.Status})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUpdate handles the request_update tool call.
func (h *Handlers) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Update(ctx, h.db, h.cfg, ops.UpdateInput{
		ID:                input.ID,
		ClientName:        input.ClientName,
		ServiceNeeded:     input.ServiceNeeded,
		ClientHeadline:    input.ClientHeadline,
		ProjectDetails:    input.ProjectDetails,
		Status:            input.Status,
		SubmittedProposal: input.SubmittedProposal,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFinalize handles the request_finalize tool call.
func (h *Handlers) HandleFinalize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FinalizeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Finalize(ctx, h.db, ops.FinalizeInput{
		ID:           input.ID,
		ProposalText: input.ProposalText,
		Status:       input.Status,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleGenerate handles the proposal_generate tool call.
func (h *Handlers) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	fetched, err := ops.Fetch(ctx, h.db, ops.FetchInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	text, err := h.drafts.Generate(ctx, &fetched.Request)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(DraftResult{Draft: text})
}

// HandleRefine handles the proposal_refine tool call.
func (h *Handlers) HandleRefine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RefineRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Draft == "" {
		return errorResult(errors.NewInvalidRequest("draft is required")), nil
	}

	text, err := h.drafts.Refine(ctx, input.Draft)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(DraftResult{Draft: text})
}

// HandleExport handles the request_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(ctx, h.db, h.baseDir, ops.ExportInput{
		Path:   input.Path,
		Status: input.Status,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if oErr, ok := errors.AsOutreach(err); ok {
		errorObj := map[string]any{
			"code":    oErr.Code,
			"message": oErr.Message,
			"status":  oErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if oErr.Code != errors.ErrInternal && oErr.Details != nil {
			errorObj["details"] = oErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
