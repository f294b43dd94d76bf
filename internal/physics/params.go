package physics

import "math"

// Parameters holds the physical constants one theoretical prediction is
// evaluated at: inverse temperature and the two field components.
// Immutable once extracted from a dataset.
type Parameters struct {
	Beta  float64 // inverse temperature
	H     float64 // longitudinal field
	Gamma float64 // transverse field
}

// Energy returns the level splitting E = sqrt(h² + Γ²).
func (p Parameters) Energy() float64 {
	return math.Sqrt(p.H*p.H + p.Gamma*p.Gamma)
}

// Validate rejects parameter sets the closed-form expressions are undefined
// for. h = Γ = 0 makes E = 0, and the direction cosines h/E and Γ/E divide
// by zero.
func (p Parameters) Validate() error {
	if p.H == 0 && p.Gamma == 0 {
		return NewDegenerateError(p)
	}
	return nil
}
