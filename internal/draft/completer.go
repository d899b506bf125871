// Package draft generates and refines proposal text for client requests
// using a text-generation backend.
package draft

import "context"

// Completer produces a completion for a prompt. Implementations wrap a
// remote text-generation endpoint; tests substitute a stub.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
