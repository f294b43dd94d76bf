package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/diagmc/magcheck/internal/grouping"
	"github.com/diagmc/magcheck/internal/physics"
)

// sweepFieldMin and sweepFieldMax bound the longitudinal-field axis; theory
// curves are drawn on a dense grid across this interval.
const (
	sweepFieldMin = -1.0
	sweepFieldMax = 1.0
)

// SweepSuptitle returns the overall title of the sweep figure for a given β.
func SweepSuptitle(beta float64) string {
	return fmt.Sprintf("z and x Magnetization (beta = %g)", beta)
}

// Sweep composes the h/Γ sweep figure. For each group, in discovery order:
// the continuous theoretical curve for the group's Γ, then the group's
// measured points as markers, both in the group color. One panel per
// magnetization component. Zero-reference guide lines are drawn before any
// data series.
func Sweep(groups []grouping.Group, beta float64, st Style) (*Figure, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups to draw")
	}

	hs := physics.Grid(sweepFieldMin, sweepFieldMax, st.CurveSamples)

	// One theory curve per group, evaluated up front so a degenerate
	// parameter point aborts before anything is composed.
	curves := make([][]physics.Magnetization, len(groups))
	for i, g := range groups {
		ms, err := physics.Curve(beta, g.Gamma, hs)
		if err != nil {
			return nil, err
		}
		curves[i] = ms
	}

	suptitle := SweepSuptitle(beta)
	fig := &Figure{
		Suptitle: suptitle,
		style:    st,
		Plan:     Plan{Mode: "sweep", Suptitle: suptitle},
	}

	components := []struct {
		title  string
		curveY func(m physics.Magnetization) float64
		dataY  func(g grouping.Group, i int) float64
	}{
		{"m_z", func(m physics.Magnetization) float64 { return m.Z },
			func(g grouping.Group, i int) float64 { return g.Records[i].SigmaZ }},
		{"m_x", func(m physics.Magnetization) float64 { return m.X },
			func(g grouping.Group, i int) float64 { return g.Records[i].SigmaX }},
	}

	for _, c := range components {
		panel := newPanel(c.title, "h", c.title, st)
		panel.XAxis.Range = &chart.ContinuousRange{Min: sweepFieldMin, Max: sweepFieldMax}

		yMin, yMax := valueBounds(groups, curves, c.curveY, c.dataY)
		panel.YAxis.Range = &chart.ContinuousRange{Min: yMin, Max: yMax}

		// Guide lines through zero, before any data series.
		panel.Series = []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{sweepFieldMin, sweepFieldMax},
				YValues: []float64{0, 0},
				Style:   lineStyle(dimGrey),
			},
			chart.ContinuousSeries{
				XValues: []float64{0, 0},
				YValues: []float64{yMin, yMax},
				Style:   lineStyle(dimGrey),
			},
		}

		plan := PanelPlan{Title: c.title, XLabel: "h", YLabel: c.title, XScale: "linear"}

		for i, g := range groups {
			col := grouping.Color(g.Index, len(groups))

			curveY := make([]float64, len(hs))
			for j, m := range curves[i] {
				curveY[j] = c.curveY(m)
			}
			dataX := make([]float64, len(g.Records))
			dataY := make([]float64, len(g.Records))
			for j := range g.Records {
				dataX[j] = g.Records[j].H
				dataY[j] = c.dataY(g, j)
			}

			// Theory curve is unnamed: the legend carries one entry per
			// group, on the measured series.
			panel.Series = append(panel.Series,
				chart.ContinuousSeries{
					XValues: hs,
					YValues: curveY,
					Style:   lineStyle(col),
				},
				chart.ContinuousSeries{
					Name:    g.Label(),
					XValues: dataX,
					YValues: dataY,
					Style:   markerStyle(col),
				},
			)

			plan.Series = append(plan.Series,
				SeriesPlan{Kind: "line", Color: colorHex(col), Points: len(hs)},
				SeriesPlan{Name: g.Label(), Kind: "markers", Color: colorHex(col), Points: len(g.Records)},
			)
		}

		attachLegend(&panel)
		fig.Panels = append(fig.Panels, panel)
		fig.Plan.Panels = append(fig.Plan.Panels, plan)
	}

	return fig, nil
}

// valueBounds returns the y-range covering every drawn value in one panel,
// padded 5% so markers at the extremes stay inside the frame. Zero is always
// included so the guide lines sit within range.
func valueBounds(
	groups []grouping.Group,
	curves [][]physics.Magnetization,
	curveY func(physics.Magnetization) float64,
	dataY func(grouping.Group, int) float64,
) (float64, float64) {
	min, max := 0.0, 0.0
	consider := func(v float64) {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	for i, g := range groups {
		for _, m := range curves[i] {
			consider(curveY(m))
		}
		for j := range g.Records {
			consider(dataY(g, j))
		}
	}

	pad := (max - min) * 0.05
	if pad == 0 {
		pad = 0.05
	}
	return min - pad, max + pad
}
