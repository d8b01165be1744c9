package client

import (
	"errors"
	"fmt"
)

// ErrNetwork wraps failures that never produced an HTTP response.
var ErrNetwork = errors.New("server unreachable")

var ErrInvalidResponse = errors.New("invalid server response")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}

	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the same request may succeed later.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429 || e.StatusCode == 408
}
