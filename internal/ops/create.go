package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/db"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

// CreateInput contains parameters for the Create operation.
type CreateInput struct {
	ClientName     string // required
	ServiceNeeded  string // required, must match a configured offering
	ClientHeadline string // optional
	ProjectDetails string // required
}

// CreateOutput contains the result of the Create operation.
type CreateOutput struct {
	Request request.Request `json:"request"`
}

// Create records a new client request. New requests always start Pending
// with no submitted proposal.
func Create(ctx context.Context, database *sql.DB, cfg *config.Config, input CreateInput) (*CreateOutput, error) {
	clientName := strings.TrimSpace(input.ClientName)
	serviceNeeded := strings.TrimSpace(input.ServiceNeeded)
	clientHeadline := strings.TrimSpace(input.ClientHeadline)
	projectDetails := strings.TrimSpace(input.ProjectDetails)

	if clientName == "" {
		return nil, errors.NewInvalidRequest("client_name is required")
	}
	if err := validateService(cfg, serviceNeeded); err != nil {
		return nil, err
	}
	if projectDetails == "" {
		return nil, errors.NewInvalidRequest("project_details is required")
	}

	r := &request.Request{
		ClientName:     clientName,
		ServiceNeeded:  serviceNeeded,
		ClientHeadline: clientHeadline,
		ProjectDetails: projectDetails,
		Status:         request.StatusPending,
	}

	if _, err := db.Insert(ctx, database, r); err != nil {
		return nil, err
	}

	return &CreateOutput{Request: *r}, nil
}
