package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func sampleRequest() *request.Request {
	return &request.Request{
		ClientName:     "Ada",
		ServiceNeeded:  "Resume Writing",
		ClientHeadline: "Engineer",
		ProjectDetails: "Need new resume",
		Status:         request.StatusPending,
	}
}

func TestInsert_AssignsSequentialIDs(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	id1, err := Insert(ctx, database, sampleRequest())
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	id2, err := Insert(ctx, database, sampleRequest())
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if id1 == 0 {
		t.Error("first id should not be zero")
	}
	if id2 <= id1 {
		t.Errorf("ids not increasing: %d then %d", id1, id2)
	}
}

func TestGetByID_RoundTrip(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	in := sampleRequest()
	id, err := Insert(ctx, database, in)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := GetByID(ctx, database, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if got.ClientName != "Ada" {
		t.Errorf("ClientName = %q, want Ada", got.ClientName)
	}
	if got.ServiceNeeded != "Resume Writing" {
		t.Errorf("ServiceNeeded = %q, want Resume Writing", got.ServiceNeeded)
	}
	if got.Status != request.StatusPending {
		t.Errorf("Status = %q, want Pending", got.Status)
	}
	if got.SubmittedProposal != "" {
		t.Errorf("SubmittedProposal = %q, want empty", got.SubmittedProposal)
	}
	if got.CreatedAt == 0 || got.UpdatedAt == 0 {
		t.Error("timestamps should be set on insert")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	database := setupDB(t)

	_, err := GetByID(context.Background(), database, 999)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("GetByID(999) error = %v, want NOT_FOUND", err)
	}
}

func TestListAll_InsertionOrder(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	first := sampleRequest()
	first.ClientName = "Ada"
	second := sampleRequest()
	second.ClientName = "Bob"

	if _, err := Insert(ctx, database, first); err != nil {
		t.Fatal(err)
	}
	if _, err := Insert(ctx, database, second); err != nil {
		t.Fatal(err)
	}

	all, err := ListAll(ctx, database)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].ClientName != "Ada" || all[1].ClientName != "Bob" {
		t.Errorf("order = [%s, %s], want [Ada, Bob]", all[0].ClientName, all[1].ClientName)
	}
}

func TestListAll_EmptyTable(t *testing.T) {
	database := setupDB(t)

	all, err := ListAll(context.Background(), database)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if all == nil {
		t.Error("ListAll should return an empty slice, not nil")
	}
	if len(all) != 0 {
		t.Errorf("len = %d, want 0", len(all))
	}
}

func TestListByStatus(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	pending := sampleRequest()
	contacted := sampleRequest()
	contacted.ClientName = "Bob"
	contacted.Status = request.StatusContacted

	if _, err := Insert(ctx, database, pending); err != nil {
		t.Fatal(err)
	}
	if _, err := Insert(ctx, database, contacted); err != nil {
		t.Fatal(err)
	}

	got, err := ListByStatus(ctx, database, request.StatusPending)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ClientName != "Ada" {
		t.Errorf("ClientName = %q, want Ada", got[0].ClientName)
	}
}

func TestUpdateByID_FullReplace(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	in := sampleRequest()
	id, err := Insert(ctx, database, in)
	if err != nil {
		t.Fatal(err)
	}

	updated := &request.Request{
		ID:                id,
		ClientName:        "Ada Lovelace",
		ServiceNeeded:     "Interview Preparation",
		ClientHeadline:    "Mathematician",
		ProjectDetails:    "Mock interviews",
		Status:            request.StatusContacted,
		SubmittedProposal: "Hi Ada, ...",
	}
	if err := UpdateByID(ctx, database, updated); err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}

	got, err := GetByID(ctx, database, id)
	if err != nil {
		t.Fatal(err)
	}

	if got.ClientName != "Ada Lovelace" {
		t.Errorf("ClientName = %q", got.ClientName)
	}
	if got.ServiceNeeded != "Interview Preparation" {
		t.Errorf("ServiceNeeded = %q", got.ServiceNeeded)
	}
	if got.ClientHeadline != "Mathematician" {
		t.Errorf("ClientHeadline = %q", got.ClientHeadline)
	}
	if got.ProjectDetails != "Mock interviews" {
		t.Errorf("ProjectDetails = %q", got.ProjectDetails)
	}
	if got.Status != request.StatusContacted {
		t.Errorf("Status = %q", got.Status)
	}
	if got.SubmittedProposal != "Hi Ada, ..." {
		t.Errorf("SubmittedProposal = %q", got.SubmittedProposal)
	}
}

func TestUpdateByID_NotFound(t *testing.T) {
	database := setupDB(t)

	r := sampleRequest()
	r.ID = 12345
	err := UpdateByID(context.Background(), database, r)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("UpdateByID error = %v, want NOT_FOUND", err)
	}

	// No row should have been created
	count, err := CountAll(context.Background(), database)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestCountAll(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	count, err := CountAll(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	if _, err := Insert(ctx, database, sampleRequest()); err != nil {
		t.Fatal(err)
	}

	count, err = CountAll(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
