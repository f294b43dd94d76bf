package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style holds the fixed presentation tuning for composed figures. It is an
// explicit value handed to the builders; nothing reads ambient global state.
type Style struct {
	// LabelFontSize is the axis label size in points.
	LabelFontSize float64 `yaml:"label_font_size"`

	// TitleFontSize is the panel title size in points.
	TitleFontSize float64 `yaml:"title_font_size"`

	// PanelWidth and PanelHeight are the pixel dimensions of one panel.
	PanelWidth  int `yaml:"panel_width"`
	PanelHeight int `yaml:"panel_height"`

	// TitleBarHeight is the pixel height of the strip the overall figure
	// title is drawn into, above the panels.
	TitleBarHeight int `yaml:"title_bar_height"`

	// CurveSamples is the number of grid points a theoretical curve is
	// evaluated at.
	CurveSamples int `yaml:"curve_samples"`
}

// DefaultStyle mirrors the presentation the measurement suite has always
// rendered with: 14pt labels, 15pt titles, two 700×500 panels and
// 100-sample theory curves.
func DefaultStyle() Style {
	return Style{
		LabelFontSize:  14,
		TitleFontSize:  15,
		PanelWidth:     700,
		PanelHeight:    500,
		TitleBarHeight: 28,
		CurveSamples:   100,
	}
}

// LoadStyle reads style overrides from a YAML file. Unset fields keep their
// defaults.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style file: %w", err)
	}

	s := DefaultStyle()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("parse style file: %w", err)
	}
	if err := s.validate(); err != nil {
		return Style{}, fmt.Errorf("style file %s: %w", path, err)
	}
	return s, nil
}

func (s Style) validate() error {
	if s.PanelWidth <= 0 || s.PanelHeight <= 0 {
		return fmt.Errorf("panel dimensions must be positive (got %dx%d)", s.PanelWidth, s.PanelHeight)
	}
	if s.TitleBarHeight < 0 {
		return fmt.Errorf("title bar height must not be negative (got %d)", s.TitleBarHeight)
	}
	if s.CurveSamples < 2 {
		return fmt.Errorf("curve_samples must be at least 2 (got %d)", s.CurveSamples)
	}
	return nil
}
