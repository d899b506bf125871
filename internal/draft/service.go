package draft

import (
	"context"
	"strings"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

// Service generates and refines proposal drafts. A nil completer means no
// API key is configured; draft operations fail with CREDENTIAL_MISSING while
// the rest of the application keeps working.
type Service struct {
	completer Completer
	cfg       *config.Config
}

// New creates a draft service. completer may be nil when no credential
// is available.
func New(completer Completer, cfg *config.Config) *Service {
	return &Service{completer: completer, cfg: cfg}
}

// Available reports whether a text-generation backend is configured.
func (s *Service) Available() bool {
	return s.completer != nil
}

// Generate produces a proposal draft for a Pending request. The draft is
// returned to the caller for review; nothing is persisted.
func (s *Service) Generate(ctx context.Context, r *request.Request) (string, error) {
	if !r.Pending() {
		return "", errors.NewInvalidRequest("draft generation is only available for Pending requests")
	}
	if s.completer == nil {
		return "", errors.NewCredentialMissing()
	}

	out, err := s.completer.Complete(ctx, proposalPrompt(s.cfg, r))
	if err != nil {
		return "", errors.NewRemote(err)
	}
	return strings.TrimSpace(out), nil
}

// Refine rewrites an existing draft to be more persuasive and concise.
// On any failure the original text is returned unchanged alongside the
// error, so the caller never loses the working draft.
func (s *Service) Refine(ctx context.Context, text string) (string, error) {
	if s.completer == nil {
		return text, errors.NewCredentialMissing()
	}

	out, err := s.completer.Complete(ctx, refinePrompt(s.cfg, text))
	if err != nil {
		return text, errors.NewRemote(err)
	}
	return strings.TrimSpace(out), nil
}
