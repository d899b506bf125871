package ops

import (
	"context"
	"database/sql"

	"github.com/ikhairy/outreach/internal/db"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID int64
}

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	Request request.Request `json:"request"`
}

// Fetch retrieves a single request by identifier.
func Fetch(ctx context.Context, database *sql.DB, input FetchInput) (*FetchOutput, error) {
	if input.ID <= 0 {
		return nil, errors.NewInvalidRequest("id must be a positive integer")
	}

	r, err := db.GetByID(ctx, database, input.ID)
	if err != nil {
		return nil, err
	}

	return &FetchOutput{Request: *r}, nil
}
