package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Figure is a composed two-panel chart plus the plan describing it.
// Created once per pipeline invocation and not mutated after Save.
type Figure struct {
	Suptitle string
	Panels   []chart.Chart
	Plan     Plan

	style Style
}

// Fixed series colors, matching the palette the measurement suite has
// always used.
var (
	dimGrey = drawing.Color{R: 105, G: 105, B: 105, A: 255}
	tabBlue = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 255}
	tabRed  = drawing.Color{R: 0xd6, G: 0x27, B: 0x28, A: 255}

	gridGrey = drawing.Color{R: 200, G: 200, B: 200, A: 255}
)

// newPanel builds an empty panel with the shared axis, grid and legend
// conventions. Series are appended by the mode-specific builders; the
// legend element reads them at render time.
func newPanel(title, xLabel, yLabel string, st Style) chart.Chart {
	grid := chart.Style{
		StrokeColor:     gridGrey,
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{1.0, 3.0},
	}
	axisText := chart.Style{FontSize: st.LabelFontSize}

	return chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: st.TitleFontSize},
		Width:      st.PanelWidth,
		Height:     st.PanelHeight,
		XAxis: chart.XAxis{
			Name:           xLabel,
			NameStyle:      axisText,
			Style:          axisText,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           yLabel,
			NameStyle:      axisText,
			Style:          axisText,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
	}
}

// attachLegend adds the legend element to a finished panel. Must run after
// all series are appended; the legend closes over the chart value.
func attachLegend(panel *chart.Chart) {
	panel.Elements = []chart.Renderable{chart.Legend(panel)}
}

// lineStyle draws a plain connected line.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeColor: col, StrokeWidth: 1.5}
}

// markerStyle draws discrete points with no connecting line.
func markerStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeWidth: 0, DotWidth: 4, DotColor: col}
}

// lineMarkerStyle draws a connected line with point markers.
func lineMarkerStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeColor: col, StrokeWidth: 2.0, DotWidth: 4, DotColor: col}
}

// dashedStyle draws a dashed line, used for theoretical reference lines.
func dashedStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeColor: col, StrokeWidth: 1.5, StrokeDashArray: []float64{5.0, 5.0}}
}

// colorHex renders a color as #rrggbb for plan snapshots.
func colorHex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
