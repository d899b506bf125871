package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ikhairy/outreach/internal/db"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

// FinalizeInput contains parameters for the Finalize operation.
type FinalizeInput struct {
	ID           int64
	ProposalText string // required
	Status       string // optional, defaults to Contacted; must not be Pending
}

// FinalizeOutput contains the result of the Finalize operation.
type FinalizeOutput struct {
	Request request.Request `json:"request"`
}

// Finalize records the proposal text that was actually sent to the client
// and advances the request out of Pending, to Contacted unless another
// status was given.
func Finalize(ctx context.Context, database *sql.DB, input FinalizeInput) (*FinalizeOutput, error) {
	if input.ID <= 0 {
		return nil, errors.NewInvalidRequest("id must be a positive integer")
	}
	if strings.TrimSpace(input.ProposalText) == "" {
		return nil, errors.NewInvalidRequest("proposal_text is required")
	}

	status := request.StatusContacted
	if strings.TrimSpace(input.Status) != "" {
		parsed, err := parseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		if parsed == request.StatusPending {
			return nil, errors.NewInvalidRequest("finalize cannot set status back to Pending")
		}
		status = parsed
	}

	r, err := db.GetByID(ctx, database, input.ID)
	if err != nil {
		return nil, err
	}

	r.SubmittedProposal = input.ProposalText
	r.Status = status

	if err := db.UpdateByID(ctx, database, r); err != nil {
		return nil, err
	}

	return &FinalizeOutput{Request: *r}, nil
}
