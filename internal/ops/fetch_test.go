package ops

import (
	"context"
	"testing"

	"github.com/ikhairy/outreach/internal/errors"
)

func TestFetch(t *testing.T) {
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

	out, err := Fetch(ctx, database, FetchInput{ID: created.Request.ID})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if out.Request.ClientName != "Ada" {
		t.Errorf("ClientName = %q, want Ada", out.Request.ClientName)
	}
}

func TestFetch_NotFound(t *testing.T) {
	database, _ := setupOps(t)

	_, err := Fetch(context.Background(), database, FetchInput{ID: 999})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestFetch_InvalidID(t *testing.T) {
	database, _ := setupOps(t)

	_, err := Fetch(context.Background(), database, FetchInput{ID: 0})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
}
