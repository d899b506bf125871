package ops

import (
	"context"
	"database/sql"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/db"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

// UpdateInput contains parameters for the Update operation.
type UpdateInput struct {
	ID int64

	// Editable fields (nil = don't change)
	ClientName        *string
	ServiceNeeded     *string
	ClientHeadline    *string
	ProjectDetails    *string
	Status            *string
	SubmittedProposal *string
}

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	Request request.Request `json:"request"`
}

// Update modifies an existing request in place.
func Update(ctx context.Context, database *sql.DB, cfg *config.Config, input UpdateInput) (*UpdateOutput, error) {
	if input.ID <= 0 {
		return nil, errors.NewInvalidRequest("id must be a positive integer")
	}

	if input.ClientName == nil && input.ServiceNeeded == nil && input.ClientHeadline == nil &&
		input.ProjectDetails == nil && input.Status == nil && input.SubmittedProposal == nil {
		return nil, errors.NewInvalidRequest("at least one editable field must be provided")
	}

	r, err := db.GetByID(ctx, database, input.ID)
	if err != nil {
		return nil, err
	}

	if name := cleanOptionalString(input.ClientName); name != nil {
		r.ClientName = *name
	} else if input.ClientName != nil {
		return nil, errors.NewInvalidRequest("client_name must not be empty")
	}

	if service := cleanOptionalString(input.ServiceNeeded); service != nil {
		if err := validateService(cfg, *service); err != nil {
			return nil, err
		}
		r.ServiceNeeded = *service
	} else if input.ServiceNeeded != nil {
		return nil, errors.NewInvalidRequest("service_needed must not be empty")
	}

	if input.ClientHeadline != nil {
		r.ClientHeadline = *input.ClientHeadline
	}

	if details := cleanOptionalString(input.ProjectDetails); details != nil {
		r.ProjectDetails = *details
	} else if input.ProjectDetails != nil {
		return nil, errors.NewInvalidRequest("project_details must not be empty")
	}

	if input.Status != nil {
		var status request.Status
		status, err = parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		r.Status = status
	}

	if input.SubmittedProposal != nil {
		r.SubmittedProposal = *input.SubmittedProposal
	}

	if err := db.UpdateByID(ctx, database, r); err != nil {
		return nil, err
	}

	return &UpdateOutput{Request: *r}, nil
}
