package domain

import (
	"errors"
	"fmt"
)

// ErrListingNotFound is returned by storage lookups and updates that target
// an unknown listing id. Updating a missing listing is an explicit error
// here, not a silent no-op.
var ErrListingNotFound = errors.New("listing not found")

// ValidationError reports a rejected field on a listing or filter payload.
// It is raised at the boundary, before any state is replaced.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
