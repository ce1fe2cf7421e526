package datasource

import (
	"errors"
	"fmt"
)

// The two variants raise the same error taxonomy so workflow code never
// needs to know which one it is talking to.

// NetworkError wraps a transport-level failure (DNS, connect, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIStatusError is a non-2xx response from the remote service.
type APIStatusError struct {
	Status  int
	Message string
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("API request failed (status %d): %s", e.Status, e.Message)
}

// NotFoundError reports a single-record lookup that matched nothing.
type NotFoundError struct {
	FoodNumber int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("food with number %d not found", e.FoodNumber)
}

// ValidationError reports missing or out-of-range client-side fields,
// detected before any call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsStatusError reports whether err carries a non-2xx API status, and
// returns the status when it does.
func IsStatusError(err error) (int, bool) {
	var se *APIStatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
