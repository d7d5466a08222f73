package webapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error-status response from a remote API.
// Callers should prefer the predicate functions (IsNotFound,
// HasStatusCode) to inspect errors rather than asserting on this type
// directly.
type APIError struct {
	url        string
	statusCode int
	message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.url, e.statusCode, e.message)
}

func newAPIError(url string, statusCode int, message string) *APIError {
	return &APIError{url: url, statusCode: statusCode, message: message}
}

// StatusCode returns the HTTP status code from the response.
func (e *APIError) StatusCode() int { return e.statusCode }

// Message returns the response body or status line.
func (e *APIError) Message() string { return e.message }

// URL returns the request URL that failed.
func (e *APIError) URL() string { return e.url }

// IsNotFound reports whether err is an API error with HTTP 404 status.
func IsNotFound(err error) bool { return HasStatusCode(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is an API error with HTTP 401 status.
func IsUnauthorized(err error) bool { return HasStatusCode(err, http.StatusUnauthorized) }

// IsRateLimited reports whether err is an API error with HTTP 403 or 429
// status. GitHub signals exhausted rate limits with 403.
func IsRateLimited(err error) bool {
	return HasStatusCode(err, http.StatusForbidden) || HasStatusCode(err, http.StatusTooManyRequests)
}

// HasStatusCode reports whether err is an API error whose HTTP status code matches.
func HasStatusCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.statusCode == code
}
