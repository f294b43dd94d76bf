package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyle(t *testing.T) {
	st := DefaultStyle()

	assert.Equal(t, 14.0, st.LabelFontSize)
	assert.Equal(t, 15.0, st.TitleFontSize)
	assert.Equal(t, 700, st.PanelWidth)
	assert.Equal(t, 500, st.PanelHeight)
	assert.Equal(t, 100, st.CurveSamples)
	require.NoError(t, st.validate())
}

func TestLoadStyle_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("label_font_size: 10\ncurve_samples: 50\n"), 0644))

	st, err := LoadStyle(path)
	require.NoError(t, err)

	assert.Equal(t, 10.0, st.LabelFontSize)
	assert.Equal(t, 50, st.CurveSamples)
	// Unset fields keep their defaults.
	assert.Equal(t, 15.0, st.TitleFontSize)
	assert.Equal(t, 700, st.PanelWidth)
}

func TestLoadStyle_Missing(t *testing.T) {
	_, err := LoadStyle(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadStyle_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad yaml", ":\n -"},
		{"zero panel", "panel_width: 0\n"},
		{"one curve sample", "curve_samples: 1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "style.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))
			_, err := LoadStyle(path)
			assert.Error(t, err)
		})
	}
}
