package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

const requestColumns = `id, client_name, service_needed, client_headline,
	project_details, status, submitted_proposal, created_at, updated_at`

// Insert stores a new request row and returns the assigned id.
func Insert(ctx context.Context, db *sql.DB, r *request.Request) (int64, error) {
	now := time.Now().Unix()
	r.CreatedAt = now
	r.UpdatedAt = now

	query := `
		INSERT INTO requests (
			client_name, service_needed, client_headline, project_details,
			status, submitted_proposal, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := db.ExecContext(ctx, query,
		r.ClientName, r.ServiceNeeded, r.ClientHeadline, r.ProjectDetails,
		string(r.Status), r.SubmittedProposal, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return 0, errors.NewInternal(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	r.ID = id

	return id, nil
}

// GetByID retrieves a request by its identifier.
func GetByID(ctx context.Context, db *sql.DB, id int64) (*request.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = ?`

	row := db.QueryRowContext(ctx, query, id)
	r, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return r, nil
}

// ListAll returns every request in insertion (id) order. The whole table is
// the working set; there is no pagination.
func ListAll(ctx context.Context, db *sql.DB) ([]request.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListByStatus returns requests with the given status in insertion order.
func ListByStatus(ctx context.Context, db *sql.DB, status request.Status) ([]request.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE status = ? ORDER BY id`

	rows, err := db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// UpdateByID replaces every mutable field of the row matching r.ID and bumps
// updated_at. Does NOT change: id, created_at.
func UpdateByID(ctx context.Context, db *sql.DB, r *request.Request) error {
	r.UpdatedAt = time.Now().Unix()

	query := `
		UPDATE requests SET
			client_name = ?, service_needed = ?, client_headline = ?,
			project_details = ?, status = ?, submitted_proposal = ?,
			updated_at = ?
		WHERE id = ?
	`

	res, err := db.ExecContext(ctx, query,
		r.ClientName, r.ServiceNeeded, r.ClientHeadline, r.ProjectDetails,
		string(r.Status), r.SubmittedProposal, r.UpdatedAt, r.ID,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if affected == 0 {
		return errors.NewNotFound(r.ID)
	}

	return nil
}

// CountAll returns the total number of rows in the requests table.
func CountAll(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM requests`).Scan(&count); err != nil {
		return 0, errors.NewInternal(err)
	}
	return count, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanRequest.
type scanner interface {
	Scan(dest ...any) error
}

// scanRequest scans a row into a request.Request.
func scanRequest(s scanner) (*request.Request, error) {
	var r request.Request
	var status string

	err := s.Scan(
		&r.ID, &r.ClientName, &r.ServiceNeeded, &r.ClientHeadline,
		&r.ProjectDetails, &status, &r.SubmittedProposal,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Status = request.Status(status)
	return &r, nil
}

// collectRequests drains rows into a slice, returning an empty slice (not
// nil) when the table is empty.
func collectRequests(rows *sql.Rows) ([]request.Request, error) {
	result := []request.Request{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		result = append(result, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return result, nil
}
