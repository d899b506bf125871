// Package request defines the client request record and its lifecycle status.
package request

// Status is the lifecycle state of a client request.
// It only moves through explicit user action, never automatically.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusContacted Status = "Contacted"
	StatusFollowUp  Status = "Follow-up"
	StatusClosed    Status = "Closed"
)

// AllStatuses lists every valid status in display order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusContacted, StatusFollowUp, StatusClosed}
}

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Request represents one prospect's request and its lifecycle status.
type Request struct {
	// ID is the store-assigned identifier, immutable and never reused
	ID int64 `json:"id"`

	// ClientName is the prospect's display name
	ClientName string `json:"client_name"`

	// ServiceNeeded is one of the configured service catalog entries
	ServiceNeeded string `json:"service_needed"`

	// ClientHeadline is the prospect's profile headline (optional)
	ClientHeadline string `json:"client_headline"`

	// ProjectDetails is the free-text description of what the prospect wants
	ProjectDetails string `json:"project_details"`

	// Status is the lifecycle state, starting at Pending
	Status Status `json:"status"`

	// SubmittedProposal is the finalized outreach text, empty until finalize
	SubmittedProposal string `json:"submitted_proposal"`

	// CreatedAt is the Unix timestamp when the request was logged
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last update
	UpdatedAt int64 `json:"updated_at"`
}

// Pending reports whether the request is still awaiting a proposal.
// Only pending requests appear in the generate-draft selection list.
func (r *Request) Pending() bool {
	return r.Status == StatusPending
}
