package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/db"
	"github.com/ikhairy/outreach/internal/draft"
	"github.com/ikhairy/outreach/internal/request"
)

type fixedCompleter struct {
	reply string
}

func (f *fixedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return f.reply, nil
}

// TestFullWorkflow exercises the complete request lifecycle:
// create → generate → edit → finalize → fetch → list
func TestFullWorkflow(t *testing.T) {
	ctx := context.Background()
	database, err := db.Init(t.TempDir())
	require.NoError(t, err)
	defer database.Close()

	cfg := config.DefaultConfig()
	drafts := draft.New(&fixedCompleter{reply: "DRAFT"}, cfg)

	// 1. Create
	createOut, err := Create(ctx, database, cfg, CreateInput{
		ClientName:     "Bob",
		ServiceNeeded:  "Interview Preparation",
		ProjectDetails: "prep for FAANG onsite",
	})
	require.NoError(t, err)
	id := createOut.Request.ID
	require.NotZero(t, id)
	require.Equal(t, request.StatusPending, createOut.Request.Status)

	// 2. Generate a draft
	text, err := drafts.Generate(ctx, &createOut.Request)
	require.NoError(t, err)
	require.Equal(t, "DRAFT", text)

	// 3. The author edits the draft before sending
	edited := text + " v2"

	// 4. Finalize
	finalizeOut, err := Finalize(ctx, database, FinalizeInput{
		ID:           id,
		ProposalText: edited,
	})
	require.NoError(t, err)
	require.Equal(t, request.StatusContacted, finalizeOut.Request.Status)

	// 5. Fetch and verify persistence
	fetchOut, err := Fetch(ctx, database, FetchInput{ID: id})
	require.NoError(t, err)
	require.Equal(t, "DRAFT v2", fetchOut.Request.SubmittedProposal)
	require.Equal(t, request.StatusContacted, fetchOut.Request.Status)

	// 6. List shows the contacted request
	listOut, err := List(ctx, database, ListInput{Status: "Contacted"})
	require.NoError(t, err)
	require.Equal(t, 1, listOut.Count)
	require.Equal(t, "Bob", listOut.Requests[0].ClientName)
}
