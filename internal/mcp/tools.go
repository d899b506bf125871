package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var createToolDef = mcp.NewTool("request_create",
	mcp.WithDescription("Record a new client request. New requests start Pending with no submitted proposal."),
	mcp.WithString("client_name", mcp.Required(), mcp.Description("Name of the client who reached out")),
	mcp.WithString("service_needed", mcp.Required(), mcp.Description("Requested service; must match a configured offering")),
	mcp.WithString("client_headline", mcp.Description("The client's professional headline (optional)")),
	mcp.WithString("project_details", mcp.Required(), mcp.Description("What the client is asking for")),
)

var fetchToolDef = mcp.NewTool("request_fetch",
	mcp.WithDescription("Fetch a single client request by ID."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Request ID")),
)

var listToolDef = mcp.NewTool("request_list",
	mcp.WithDescription("List client requests in submission order, optionally filtered by status."),
	mcp.WithString("status", mcp.Description("Filter by status: Pending, Contacted, Follow-up, or Closed")),
)

var updateToolDef = mcp.NewTool("request_update",
	mcp.WithDescription("Update fields of an existing request. Only the provided fields change."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Request ID")),
	mcp.WithString("client_name", mcp.Description("New client name")),
	mcp.WithString("service_needed", mcp.Description("New service; must match a configured offering")),
	mcp.WithString("client_headline", mcp.Description("New client headline")),
	mcp.WithString("project_details", mcp.Description("New project details")),
	mcp.WithString("status", mcp.Description("New status: Pending, Contacted, Follow-up, or Closed")),
	mcp.WithString("submitted_proposal", mcp.Description("Replace the stored proposal text")),
)

var finalizeToolDef = mcp.NewTool("request_finalize",
	mcp.WithDescription("Store the proposal text that was sent to the client and mark the request Contacted."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Request ID")),
	mcp.WithString("proposal_text", mcp.Required(), mcp.Description("The proposal exactly as sent")),
	mcp.WithString("status", mcp.Description("Status to set instead of Contacted (Follow-up or Closed)")),
)

var generateToolDef = mcp.NewTool("proposal_generate",
	mcp.WithDescription("Generate a personalized proposal draft for a request using the configured Gemini model. The draft is returned, not stored."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Request ID")),
)

var refineToolDef = mcp.NewTool("proposal_refine",
	mcp.WithDescription("Rewrite a proposal draft to be more persuasive and concise."),
	mcp.WithString("draft", mcp.Required(), mcp.Description("The draft text to refine")),
)

var exportToolDef = mcp.NewTool("request_export",
	mcp.WithDescription("Export requests to a CSV file."),
	mcp.WithString("path", mcp.Description("Destination path; defaults to the exports directory")),
	mcp.WithString("status", mcp.Description("Only export requests with this status")),
)
