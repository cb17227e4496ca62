package crsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrCancelled is returned when an interactive date selection is aborted by
// the user. No request has been attempted when this is returned.
var ErrCancelled = errors.New("crsdk: date selection cancelled")

// ============================================================================
// Error taxonomy
// ============================================================================
//
// Every failed operation returns exactly one of the four types below. All of
// them carry enough structure (status code, status text, raw body) for the
// caller to branch with errors.As rather than string matching.

// AuthError reports a failed authentication or logout exchange with the
// Control Room.
type AuthError struct {
	// StatusCode is the HTTP status code, or 0 when no response was received.
	StatusCode int

	// Status is the HTTP status line, e.g. "401 Unauthorized".
	Status string

	// Details is the server's error message when the body parsed, otherwise
	// the raw response body.
	Details string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("authentication failed: %s", e.Status)
	}
	return fmt.Sprintf("authentication failed: %s: %s", e.Status, e.Details)
}

// ValidationError reports malformed or incomplete caller input. It is
// returned before any request is built.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// TransportError wraps a network-level failure (DNS, TLS, timeout) surfaced
// by the HTTP client. The server was never reached or never answered.
type TransportError struct {
	// Op identifies the attempted operation, e.g. "POST /v1/authentication".
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying transport failure for errors.Is checks,
// e.g. context.DeadlineExceeded.
func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response from an endpoint other than
// authentication. The connection itself succeeded.
type APIError struct {
	StatusCode int

	// Status is the HTTP status line.
	Status string

	// Message is the server's error message when the body parsed as the
	// standard Control Room error shape.
	Message string

	// Body is the raw response body.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("control room error: %s", e.Status)
	}
	return fmt.Sprintf("control room error: %s: %s", e.Status, e.Message)
}

// ============================================================================
// Error response parsing
// ============================================================================

// vendorError is the Control Room's standard error body.
type vendorError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	e := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}

	var ve vendorError
	if err := json.Unmarshal(body, &ve); err == nil {
		e.Message = ve.Message
	}

	return e
}

func newAuthError(resp *http.Response, body []byte) *AuthError {
	e := &AuthError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Details:    string(body),
	}

	var ve vendorError
	if err := json.Unmarshal(body, &ve); err == nil && ve.Message != "" {
		e.Details = ve.Message
	}

	return e
}
