package grouping

import (
	"errors"
	"fmt"
)

// EmptyGroupError reports a discovered Γ value with no associated records.
type EmptyGroupError struct {
	Gamma float64
}

// Error implements the error interface.
func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("EMPTY_GROUP: no records for Γ=%g", e.Gamma)
}

// NewEmptyGroupError creates an EmptyGroupError for the given Γ value.
func NewEmptyGroupError(gamma float64) *EmptyGroupError {
	return &EmptyGroupError{Gamma: gamma}
}

// IsEmptyGroupError returns true if the error is an EmptyGroupError.
// Uses errors.As to handle wrapped errors.
func IsEmptyGroupError(err error) bool {
	var ee *EmptyGroupError
	return errors.As(err, &ee)
}
