package core

import (
	"errors"
	"fmt"
)

// ErrUnknownSource is returned by New for an unregistered source name.
var ErrUnknownSource = errors.New("unknown source")

// FetchTransportError is returned when the request for the catalog could
// not complete.
type FetchTransportError struct {
	URL string
	Err error
}

func (e *FetchTransportError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchTransportError) Unwrap() error {
	return e.Err
}

// FetchStatusError is returned when the catalog request completed with a
// non-success status.
type FetchStatusError struct {
	URL        string
	StatusCode int
}

func (e *FetchStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// ParseError is returned when the response body is not a plugin collection.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing plugin collection from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MockLoadError is returned when loading the built-in dataset fails.
type MockLoadError struct {
	Err error
}

func (e *MockLoadError) Error() string {
	return fmt.Sprintf("mock data loading failed: %v", e.Err)
}

func (e *MockLoadError) Unwrap() error {
	return e.Err
}
