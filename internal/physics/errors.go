package physics

import (
	"errors"
	"fmt"
)

// DegenerateError reports a parameter set with h = Γ = 0. The magnetization
// formulas divide by E = sqrt(h² + Γ²), so there is no prediction to draw;
// the run aborts rather than plotting a silently wrong reference.
type DegenerateError struct {
	Params Parameters
}

// Error implements the error interface.
func (e *DegenerateError) Error() string {
	return fmt.Sprintf("DEGENERATE_PARAMETERS: h and Γ are both zero (beta=%g), magnetization undefined", e.Params.Beta)
}

// NewDegenerateError creates a DegenerateError for the given parameters.
func NewDegenerateError(p Parameters) *DegenerateError {
	return &DegenerateError{Params: p}
}

// IsDegenerateError returns true if the error is a DegenerateError.
// Uses errors.As to handle wrapped errors.
func IsDegenerateError(err error) bool {
	var de *DegenerateError
	return errors.As(err, &de)
}
