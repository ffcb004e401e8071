package source

import (
	"errors"
	"fmt"
)

// UserMessage is the fixed message shown to the viewer when a load fails.
const UserMessage = "Failed to load users"

// ErrLoadFailed is the sentinel matched by every load failure.
var ErrLoadFailed = errors.New("load failed")

// LoadError wraps the cause of a failed load.
type LoadError struct {
	// Endpoint is the URL that was fetched.
	Endpoint string
	// Cause is the underlying transport, status or decode error.
	Cause error
}

// Error implements error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrLoadFailed, e.Endpoint, e.Cause)
}

// Unwrap exposes the cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrLoadFailed) true for every LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}

// UserMessage returns the fixed viewer-facing message.
func (e *LoadError) UserMessage() string {
	return UserMessage
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected response status: " + e.Status
}
