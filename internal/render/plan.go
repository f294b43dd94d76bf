package render

import "strconv"

// Plan is a renderer-independent description of a composed figure: which
// series were drawn, in which order, in which colors, under which labels.
// It is recorded by the same build step that produces the drawable panels,
// so a plan match pins the composed overlay.
type Plan struct {
	Mode     string
	Suptitle string
	Panels   []PanelPlan
}

// PanelPlan describes one panel of the figure.
type PanelPlan struct {
	Title  string
	XLabel string
	YLabel string
	XScale string // "linear" or "log"

	// Reference is the constant theoretical reference line, when the panel
	// carries one (convergence mode).
	Reference *ReferencePlan

	// Series lists the drawn series in draw order. Guide lines are not
	// series; they are implied by the mode.
	Series []SeriesPlan
}

// ReferencePlan describes a constant reference line.
type ReferencePlan struct {
	Label string
	Value string // formatted with formatValue
}

// SeriesPlan describes one drawn series.
type SeriesPlan struct {
	Name   string // legend label; empty for unlabeled series
	Kind   string // "line", "markers" or "line+markers"
	Color  string // #rrggbb
	Points int
}

// formatValue renders a numeric plan value with six significant digits,
// enough to pin a theory value while staying stable under float printing.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// MarshalCanonical serializes the plan as canonical JSON for golden
// comparison.
func (p *Plan) MarshalCanonical() ([]byte, error) {
	return marshalCanonical(p.toCanonicalMap())
}

// toCanonicalMap converts the plan to the map shape marshalCanonical
// accepts.
func (p *Plan) toCanonicalMap() map[string]any {
	panels := make([]any, len(p.Panels))
	for i, panel := range p.Panels {
		series := make([]any, len(panel.Series))
		for j, s := range panel.Series {
			series[j] = map[string]any{
				"name":   s.Name,
				"kind":   s.Kind,
				"color":  s.Color,
				"points": s.Points,
			}
		}

		panelMap := map[string]any{
			"title":   panel.Title,
			"x_label": panel.XLabel,
			"y_label": panel.YLabel,
			"x_scale": panel.XScale,
			"series":  series,
		}
		if panel.Reference != nil {
			panelMap["reference"] = map[string]any{
				"label": panel.Reference.Label,
				"value": panel.Reference.Value,
			}
		}
		panels[i] = panelMap
	}

	return map[string]any{
		"mode":     p.Mode,
		"suptitle": p.Suptitle,
		"panels":   panels,
	}
}
