package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types for common failure scenarios.
var (
	// ErrNotAuthenticated indicates no bearer token is configured.
	ErrNotAuthenticated = errors.New("not authenticated: no token configured")

	// ErrNoResponse indicates the request never produced a response
	// (DNS failure, refused connection, timeout). Rendered to users as
	// a generic "no response" message.
	ErrNoResponse = errors.New("no response from server")
)

// HTTPError represents a non-2xx response from the backend. Message is
// the body's "message" field when the backend supplied one; otherwise
// empty and the status text is used.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsRetryable reports whether the failure is likely transient.
// 5xx responses and 429 Too Many Requests are retryable; 4xx are not.
func (e *HTTPError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Error wraps a backend API error with operation context.
type Error struct {
	Op      string // operation that failed, e.g. "exams.submit"
	Status  int    // HTTP status, 0 for transport failures
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: [%d] %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// wrapErr wraps an error with operation context.
func wrapErr(op string, err error) *Error {
	e := &Error{Op: op, Err: err, Message: err.Error()}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		e.Status = httpErr.StatusCode
	}
	return e
}

// IsAuthError reports whether the error is an authentication or
// authorization failure.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) {
		return true
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFoundError reports whether the error indicates a missing resource.
func IsNotFoundError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRetryable reports whether the request should be retried.
func IsRetryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.IsRetryable()
	}
	// Transport-level failures (no response at all) are retryable.
	return errors.Is(err, ErrNoResponse)
}

// UserMessage renders an error the way the UI banners expect: the
// backend message when there is one, a generic line for transport
// failures, the HTTP status otherwise.
func UserMessage(err error) string {
	if errors.Is(err, ErrNoResponse) {
		return "No response from server. Please try again."
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
