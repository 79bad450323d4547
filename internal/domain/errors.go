package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrLoadNotFound signals a missing load. Matches ErrNotFound.
	ErrLoadNotFound = fmt.Errorf("load %w", ErrNotFound)
	// ErrTruckNotFound signals a missing truck posting. Matches ErrNotFound.
	ErrTruckNotFound = fmt.Errorf("truck %w", ErrNotFound)
	// ErrCityNotFound signals a formatted city string absent from the index. Matches ErrNotFound.
	ErrCityNotFound = fmt.Errorf("city %w", ErrNotFound)

	// ErrInvalidState signals that an operation's preconditions are unmet.
	ErrInvalidState = errors.New("invalid state")
	// ErrLoadNotAvailable signals a claim against a load that is not available. Matches ErrInvalidState.
	ErrLoadNotAvailable = fmt.Errorf("load not available: %w", ErrInvalidState)
	// ErrInvalidTransition signals a disallowed lifecycle move. Matches ErrInvalidState.
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrInvalidState)

	// ErrValidation signals absent or malformed input fields.
	ErrValidation = errors.New("validation failed")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnauthenticated signals a mutating request without a session cookie.
	ErrUnauthenticated = errors.New("session required")
)

// ValidationError wraps ErrValidation with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid creates a validation error for a field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
