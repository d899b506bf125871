// Package ops implements the request lifecycle operations shared by the
// web UI, CLI, and MCP surfaces. Each operation takes an Input struct and
// returns an Output struct so every surface sees identical semantics.
package ops

import (
	"strings"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/request"
)

// validateService checks that the service name matches a configured offering.
func validateService(cfg *config.Config, service string) error {
	if service == "" {
		return errors.NewInvalidRequest("service_needed is required")
	}
	if !cfg.HasService(service) {
		return errors.NewInvalidRequest("unknown service: " + service +
			" (configured services: " + strings.Join(cfg.ServiceNames(), ", ") + ")")
	}
	return nil
}

// parseStatus validates a status string, returning an INVALID_REQUEST error
// listing the accepted values when it does not match.
func parseStatus(s string) (request.Status, error) {
	status, ok := request.ParseStatus(s)
	if !ok {
		var names []string
		for _, st := range request.AllStatuses() {
			names = append(names, string(st))
		}
		return "", errors.NewInvalidRequest("status must be one of: " + strings.Join(names, ", "))
	}
	return status, nil
}

// cleanOptionalString trims an optional field, treating whitespace-only
// values as absent.
func cleanOptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
