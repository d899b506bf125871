package ops

import (
	"context"
	"testing"

	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

func TestUpdate_SingleField(t *testing.T) {
	database, cfg := setupOps(t)
	ctx := context.Background()

	created, err := Create(ctx, database, cfg, CreateInput{
		ClientName:     "Ada",
		ServiceNeeded:  "Resume Writing",
		ProjectDetails: "details",
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := Update(ctx, database, cfg, UpdateInput{
		ID:     created.Request.ID,
		Status: stringPtr("Follow-up"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if out.Request.Status != request.StatusFollowUp {
		t.Errorf("Status = %q, want Follow-up", out.Request.Status)
	}
	// Untouched fields survive
	if out.Request.ClientName != "Ada" {
		t.Errorf("ClientName = %q, want Ada", out.Request.ClientName)
	}
	if out.Request.ProjectDetails != "details" {
		t.Errorf("ProjectDetails = %q, want details", out.Request.ProjectDetails)
	}
}

func TestUpdate_NoFields(t *testing.T) {
	database, cfg := setupOps(t)
	ctx := context.Background()

	created, err := Create(ctx, database, cfg, CreateInput{
		ClientName:     "Ada",
		ServiceNeeded:  "Resume Writing",
		ProjectDetails: "details",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Update(ctx, database, cfg, UpdateInput{ID: created.Request.ID})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	database, cfg := setupOps(t)

	_, err := Update(context.Background(), database, cfg, UpdateInput{
		ID:         999,
		ClientName: stringPtr("Ghost"),
	})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	database, cfg := setupOps(t)
	ctx := context.Background()

	created, err := Create(ctx, database, cfg, CreateInput{
		ClientName:     "Ada",
		ServiceNeeded:  "Resume Writing",
		ProjectDetails: "details",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Update(ctx, database, cfg, UpdateInput{
		ID:     created.Request.ID,
		Status: stringPtr("Archived"),
	})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
}

func TestUpdate_UnknownService(t *testing.T) {
	database, cfg := setupOps(t)
	ctx := context.Background()

	created, err := Create(ctx, database, cfg, CreateInput{
		ClientName:     "Ada",
		ServiceNeeded:  "Resume Writing",
		ProjectDetails: "details",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Update(ctx, database, cfg, UpdateInput{
		ID:            created.Request.ID,
		ServiceNeeded: stringPtr("Skywriting"),
	})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
}

func TestUpdate_EmptyClientNameRejected(t *testing.T) {
	database, cfg := setupOps(t)
	ctx := context.Background()

	created, err := Create(ctx, database, cfg, CreateInput{
		ClientName:     "Ada",
		ServiceNeeded:  "Resume Writing",
		ProjectDetails: "details",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Update(ctx, database, cfg, UpdateInput{
		ID:         created.Request.ID,
		ClientName: stringPtr("   "),
	})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
}
