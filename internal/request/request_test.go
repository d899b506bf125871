package request

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"Pending", StatusPending, true},
		{"Contacted", StatusContacted, true},
		{"Follow-up", StatusFollowUp, true},
		{"Closed", StatusClosed, true},
		{"pending", "", false},
		{"", "", false},
		{"Done", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseStatus(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPending(t *testing.T) {
	r := &Request{Status: StatusPending}
	if !r.Pending() {
		t.Error("Pending() = false for a Pending request")
	}

	for _, st := range []Status{StatusContacted, StatusFollowUp, StatusClosed} {
		r.Status = st
		if r.Pending() {
			t.Errorf("Pending() = true for status %q", st)
		}
	}
}

func TestAllStatuses_Order(t *testing.T) {
	statuses := AllStatuses()
	if len(statuses) != 4 {
		t.Fatalf("AllStatuses() len = %d, want 4", len(statuses))
	}
	if statuses[0] != StatusPending {
		t.Errorf("first status = %q, want Pending", statuses[0])
	}
}
