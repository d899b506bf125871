package ops

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ikhairy/outreach/internal/db"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path   string // optional, default: <baseDir>/exports/requests-<timestamp>.csv
	Status string // optional filter by status
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

var exportHeader = []string{
	"id", "client_name", "service_needed", "client_headline",
	"project_details", "status", "submitted_proposal", "created_at", "updated_at",
}

// Export writes requests to a CSV file.
func Export(ctx context.Context, database *sql.DB, baseDir string, input ExportInput) (*ExportOutput, error) {
	now := time.Now()

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

	exportPath := strings.TrimSpace(input.Path)
	if exportPath == "" {
		exportPath = defaultExportPath(baseDir, now)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	// Write to a temp file first, then rename so a failure never leaves a
	// truncated export behind.
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportHeader); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export header: %w", err))
	}
	for i := range requests {
		if err := writer.Write(exportRow(&requests[i])); err != nil {
			return nil, errors.NewInternal(fmt.Errorf("failed to write export row: %w", err))
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to flush export: %w", err))
	}

	if err := file.Close(); err != nil {
		file = nil
		return nil, errors.NewInternal(fmt.Errorf("failed to close export file: %w", err))
	}
	file = nil

	if err := os.Rename(tempPath, exportPath); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export file: %w", err))
	}
	success = true

	return &ExportOutput{
		Path:       exportPath,
		Count:      len(requests),
		ExportedAt: now.Unix(),
	}, nil
}

func exportRow(r *request.Request) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.ClientName,
		r.ServiceNeeded,
		r.ClientHeadline,
		r.ProjectDetails,
		string(r.Status),
		r.SubmittedProposal,
		strconv.FormatInt(r.CreatedAt, 10),
		strconv.FormatInt(r.UpdatedAt, 10),
	}
}

func defaultExportPath(baseDir string, now time.Time) string {
	filename := fmt.Sprintf("requests-%s.csv", now.Format("20060102-150405"))
	return filepath.Join(baseDir, "exports", filename)
}
