package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/diagmc/magcheck/internal/dataset"
	"github.com/diagmc/magcheck/internal/physics"
)

// ConvergenceSuptitle is the overall title of the convergence figure.
const ConvergenceSuptitle = "Convergence test - Magnetization vs N_measures (fixed seed)"

// Convergence composes the convergence-test figure: measured magnetization
// against the number of measurements on a logarithmic axis, one panel per
// component, each overlaid with its constant theoretical value.
//
// The theoretical reference is computed once from the dataset's constant
// parameters and drawn as a dashed horizontal line under the empirical
// series. Records are plotted in dataset order; the sampler writes them in
// ascending N_measures and no re-sorting happens here.
func Convergence(recs []dataset.ConvergenceRecord, p physics.Parameters, st Style) (*Figure, error) {
	if len(recs) == 0 {
		return nil, dataset.NewEmptyDatasetError("")
	}

	theory, err := physics.Evaluate(p)
	if err != nil {
		return nil, err
	}

	ns := make([]float64, len(recs))
	zs := make([]float64, len(recs))
	xs := make([]float64, len(recs))
	for i, r := range recs {
		ns[i] = r.NMeasures
		zs[i] = r.SigmaZ
		xs[i] = r.SigmaX
	}

	fig := &Figure{
		Suptitle: ConvergenceSuptitle,
		style:    st,
		Plan:     Plan{Mode: "convergence", Suptitle: ConvergenceSuptitle},
	}

	components := []struct {
		title    string
		values   []float64
		refValue float64
		refLabel string
		dataName string
		color    drawing.Color
	}{
		{"m_z", zs, theory.Z, "m_z theor.", "m_z diagMC", tabBlue},
		{"m_x", xs, theory.X, "m_x theor.", "m_x diagMC", tabRed},
	}

	for _, c := range components {
		panel := newPanel(c.title, "N_measures", c.title, st)
		panel.XAxis.Range = &chart.LogarithmicRange{}

		// Reference line first, then the empirical series over it.
		panel.Series = []chart.Series{
			chart.ContinuousSeries{
				Name:    c.refLabel,
				XValues: []float64{ns[0], ns[len(ns)-1]},
				YValues: []float64{c.refValue, c.refValue},
				Style:   dashedStyle(dimGrey),
			},
			chart.ContinuousSeries{
				Name:    c.dataName,
				XValues: ns,
				YValues: c.values,
				Style:   lineMarkerStyle(c.color),
			},
		}
		attachLegend(&panel)
		fig.Panels = append(fig.Panels, panel)

		fig.Plan.Panels = append(fig.Plan.Panels, PanelPlan{
			Title:  c.title,
			XLabel: "N_measures",
			YLabel: c.title,
			XScale: "log",
			Reference: &ReferencePlan{
				Label: c.refLabel,
				Value: formatValue(c.refValue),
			},
			Series: []SeriesPlan{
				{Name: c.refLabel, Kind: "line", Color: colorHex(dimGrey), Points: 2},
				{Name: c.dataName, Kind: "line+markers", Color: colorHex(c.color), Points: len(ns)},
			},
		})
	}

	return fig, nil
}

// ConvergenceArtifact is the fixed output name of the convergence pipeline.
const ConvergenceArtifact = "convergence_test.png"

// SweepArtifact returns the sweep output name for a given β,
// e.g. "sweep_beta=0.5.png".
func SweepArtifact(beta float64) string {
	return fmt.Sprintf("sweep_beta=%.1f.png", beta)
}
