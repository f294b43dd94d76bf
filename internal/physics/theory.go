package physics

import "math"

// Magnetization holds the two predicted (or measured) expectation values.
// Both components lie in [-1, 1].
type Magnetization struct {
	Z float64 // projection along the longitudinal axis
	X float64 // projection along the transverse axis
}

// Evaluate computes the thermal-equilibrium magnetization for one parameter
// set:
//
//	m_z = -(h/E)·tanh(β·E)
//	m_x = -(Γ/E)·tanh(β·E)
//
// Returns a DegenerateError when h = Γ = 0.
func Evaluate(p Parameters) (Magnetization, error) {
	if err := p.Validate(); err != nil {
		return Magnetization{}, err
	}
	e := p.Energy()
	t := math.Tanh(p.Beta * e)
	return Magnetization{
		Z: -p.H / e * t,
		X: -p.Gamma / e * t,
	}, nil
}

// Curve evaluates the magnetization across an ordered grid of longitudinal
// field values at fixed β and Γ. Element i is computed by the same scalar
// kernel as Evaluate at hs[i], so shared points agree exactly, not merely
// within tolerance.
func Curve(beta, gamma float64, hs []float64) ([]Magnetization, error) {
	ms := make([]Magnetization, len(hs))
	for i, h := range hs {
		m, err := Evaluate(Parameters{Beta: beta, H: h, Gamma: gamma})
		if err != nil {
			return nil, err
		}
		ms[i] = m
	}
	return ms, nil
}

// Grid returns n evenly spaced values from min to max inclusive.
// The sweep pipeline draws theory on Grid(-1, 1, 100).
func Grid(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}
	step := (max - min) / float64(n-1)
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = min + float64(i)*step
	}
	// Close the interval exactly regardless of rounding in the last step.
	vs[n-1] = max
	return vs
}
