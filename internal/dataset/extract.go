package dataset

import "github.com/diagmc/magcheck/internal/physics"

// ConstantParameters returns the physical parameters of a convergence
// dataset. The sampler writes them identically on every row, so the first
// record is authoritative. No defaulting: an empty dataset is an error.
func ConstantParameters(recs []ConvergenceRecord) (physics.Parameters, error) {
	if len(recs) == 0 {
		return physics.Parameters{}, NewEmptyDatasetError("")
	}
	r := recs[0]
	return physics.Parameters{Beta: r.Beta, H: r.H, Gamma: r.Gamma}, nil
}

// SweepBeta returns the fixed inverse temperature of a sweep dataset, taken
// from the first record. h and Γ vary per row and are read per group, never
// extracted globally.
func SweepBeta(recs []SweepRecord) (float64, error) {
	if len(recs) == 0 {
		return 0, NewEmptyDatasetError("")
	}
	return recs[0].Beta, nil
}
