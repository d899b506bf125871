package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ikhairy/outreach/internal/db"
	"github.com/ikhairy/outreach/internal/request"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Status string // optional filter; empty means all requests
}

// ListOutput contains the result of the List operation. Count is the number
// of rows returned; Total is the number of rows in the store regardless of
// any filter.
type ListOutput struct {
	Requests []request.Request `json:"requests"`
	Count    int               `json:"count"`
	Total    int               `json:"total"`
}

// List retrieves requests in submission order, optionally filtered by status.
func List(ctx context.Context, database *sql.DB, input ListInput) (*ListOutput, error) {
	var (
		requests []request.Request
		err      error
	)

	statusFilter := strings.TrimSpace(input.Status)
	if statusFilter == "" {
		requests, err = db.ListAll(ctx, database)
	} else {
		var status request.Status
		status, err = parseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		requests, err = db.ListByStatus(ctx, database, status)
	}
	if err != nil {
		return nil, err
	}

	total, err := db.CountAll(ctx, database)
	if err != nil {
		return nil, err
	}

	return &ListOutput{
		Requests: requests,
		Count:    len(requests),
		Total:    total,
	}, nil
}
