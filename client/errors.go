package client

import (
	"errors"
	"fmt"
	"net/http"

	circuit "github.com/rubyist/circuitbreaker"
)

// ErrBreakerOpen is returned when a host's circuit breaker is open.
var ErrBreakerOpen = circuit.ErrBreakerOpen

// HTTPError represents a non-2xx HTTP response.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}

// IsNotFound returns true if the error represents a 404 response.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// DecodeError is returned when a response body is not valid JSON for the
// requested shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// retryable reports whether a request failing with err may be retried.
// Only rate limiting and server errors qualify.
func retryable(err error) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= 500
}
