package dataset

// Column names written by the sampler.
const (
	ColBeta      = "beta"
	ColH         = "H"
	ColGamma     = "GAMMA"
	ColNMeasures = "N_measures"
	ColSigmaZ    = "measured_sigmaz"
	ColSigmaX    = "measured_sigmax"
)

// ConvergenceRecord is one row of a convergence-test dataset. β, h and Γ are
// constant across the file; N_measures varies.
type ConvergenceRecord struct {
	Beta      float64
	H         float64
	Gamma     float64
	NMeasures float64
	SigmaZ    float64
	SigmaX    float64
}

// SweepRecord is one row of an h/Γ sweep dataset. β is constant across the
// file; h and Γ vary per row.
type SweepRecord struct {
	Beta   float64
	H      float64
	Gamma  float64
	SigmaZ float64
	SigmaX float64
}

// ConvergenceRecords binds a loaded table to typed convergence records,
// validating every expected column up front. Returns a missing-column
// LoadError naming the first absent column.
func ConvergenceRecords(t *Table) ([]ConvergenceRecord, error) {
	cols, err := columns(t, ColBeta, ColH, ColGamma, ColNMeasures, ColSigmaZ, ColSigmaX)
	if err != nil {
		return nil, err
	}

	recs := make([]ConvergenceRecord, t.Len())
	for r := range recs {
		recs[r] = ConvergenceRecord{
			Beta:      cols[0][r],
			H:         cols[1][r],
			Gamma:     cols[2][r],
			NMeasures: cols[3][r],
			SigmaZ:    cols[4][r],
			SigmaX:    cols[5][r],
		}
	}
	return recs, nil
}

// SweepRecords binds a loaded table to typed sweep records. N_measures is
// not required here: sweep rows never carry it.
func SweepRecords(t *Table) ([]SweepRecord, error) {
	cols, err := columns(t, ColBeta, ColH, ColGamma, ColSigmaZ, ColSigmaX)
	if err != nil {
		return nil, err
	}

	recs := make([]SweepRecord, t.Len())
	for r := range recs {
		recs[r] = SweepRecord{
			Beta:   cols[0][r],
			H:      cols[1][r],
			Gamma:  cols[2][r],
			SigmaZ: cols[3][r],
			SigmaX: cols[4][r],
		}
	}
	return recs, nil
}

// columns fetches the named columns, failing on the first absent one.
func columns(t *Table, names ...string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return cols, nil
}
