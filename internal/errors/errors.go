// Package errors defines the structured error taxonomy shared by every surface
// (web, CLI, MCP). Each error carries a stable code and an HTTP status.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies an error category.
type ErrorCode string

const (
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"    // 400
	ErrNotFound          ErrorCode = "NOT_FOUND"          // 404
	ErrCredentialMissing ErrorCode = "CREDENTIAL_MISSING" // 503
	ErrRemote            ErrorCode = "REMOTE_ERROR"       // 502
	ErrInternal          ErrorCode = "INTERNAL"           // 500
)

// OutreachError is a structured error with code, status, and details.
type OutreachError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *OutreachError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for a missing or invalid field.
func NewInvalidRequest(msg string) *OutreachError {
	return &OutreachError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for an update or fetch targeting an
// identifier that does not exist.
func NewNotFound(id int64) *OutreachError {
	return &OutreachError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("request not found: %d", id),
		Details: map[string]any{"id": id},
	}
}

// NewCredentialMissing creates a 503 error for draft operations attempted
// without a configured API key.
func NewCredentialMissing() *OutreachError {
	return &OutreachError{
		Code:    ErrCredentialMissing,
		Status:  503,
		Message: "no Gemini API key configured; set GEMINI_API_KEY or gemini_api_key in config.json",
	}
}

// NewRemote creates a 502 error wrapping a failure from the text-generation
// endpoint. The endpoint's message is preserved verbatim for display.
func NewRemote(err error) *OutreachError {
	msg := "text generation failed"
	if err != nil {
		msg = err.Error()
	}
	return &OutreachError{
		Code:    ErrRemote,
		Status:  502,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic so SQL errors and file paths are not exposed;
// the original error is kept in Details for logging.
func NewInternal(err error) *OutreachError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &OutreachError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// AsOutreach extracts an OutreachError from err or any error it wraps.
func AsOutreach(err error) (*OutreachError, bool) {
	var oErr *OutreachError
	if stderrors.As(err, &oErr) {
		return oErr, true
	}
	return nil, false
}

// Is checks if an error (or any error it wraps) is an OutreachError with the
// given code.
func Is(err error, code ErrorCode) bool {
	var oErr *OutreachError
	if stderrors.As(err, &oErr) {
		return oErr.Code == code
	}
	return false
}
