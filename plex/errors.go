package plex

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid plex configuration")
	// ErrSizeUnavailable indicates the collection size probe failed
	ErrSizeUnavailable = errors.New("collection size unavailable")
	// ErrLibraryNotFound indicates the requested library section does not exist
	ErrLibraryNotFound = errors.New("library not found")
)

// PageError reports a page request that failed after exhausting its
// retries. Pages fetched before the failure are discarded.
type PageError struct {
	Offset int
	Err    error
}

// Error implements the error interface
func (e *PageError) Error() string {
	return fmt.Sprintf("page request at offset %d failed: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying request error
func (e *PageError) Unwrap() error {
	return e.Err
}

// APIError represents a Plex API error response
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("plex API error: status %d", e.StatusCode)
}

// IsUnauthorized checks if the error indicates an invalid or missing token
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
