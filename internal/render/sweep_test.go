package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagmc/magcheck/internal/dataset"
	"github.com/diagmc/magcheck/internal/grouping"
)

// sweepGroups builds two Γ groups in first-appearance order.
func sweepGroups(t *testing.T) []grouping.Group {
	t.Helper()
	groups, err := grouping.Discover([]dataset.SweepRecord{
		{Beta: 0.5, H: -0.5, Gamma: 0.5, SigmaZ: 0.11, SigmaX: -0.24},
		{Beta: 0.5, H: -0.5, Gamma: 1.0, SigmaZ: 0.09, SigmaX: -0.42},
		{Beta: 0.5, H: 0.5, Gamma: 0.5, SigmaZ: -0.11, SigmaX: -0.24},
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	return groups
}

// smallStyle keeps theory curves short so plans stay readable in golden files.
func smallStyle() Style {
	st := DefaultStyle()
	st.CurveSamples = 5
	return st
}

func TestSweep_Plan(t *testing.T) {
	fig, err := Sweep(sweepGroups(t), 0.5, smallStyle())
	require.NoError(t, err)

	require.Len(t, fig.Panels, 2)
	require.Len(t, fig.Plan.Panels, 2)
	assert.Equal(t, "sweep", fig.Plan.Mode)
	assert.Equal(t, "z and x Magnetization (beta = 0.5)", fig.Suptitle)

	for _, panel := range fig.Plan.Panels {
		assert.Equal(t, "linear", panel.XScale)
		assert.Equal(t, "h", panel.XLabel)
		assert.Nil(t, panel.Reference)
		// Per group: theory curve then measured markers, in discovery order.
		require.Len(t, panel.Series, 4)
		assert.Equal(t, "line", panel.Series[0].Kind)
		assert.Empty(t, panel.Series[0].Name)
		assert.Equal(t, "Γ=0.5", panel.Series[1].Name)
		assert.Equal(t, "markers", panel.Series[1].Kind)
		assert.Equal(t, 2, panel.Series[1].Points)
		assert.Equal(t, "Γ=1.0", panel.Series[3].Name)
		assert.Equal(t, 1, panel.Series[3].Points)

		// Curve and markers of one group share that group's color.
		assert.Equal(t, panel.Series[0].Color, panel.Series[1].Color)
		assert.Equal(t, panel.Series[2].Color, panel.Series[3].Color)
		assert.NotEqual(t, panel.Series[0].Color, panel.Series[2].Color)
	}
}

func TestSweep_Golden(t *testing.T) {
	fig, err := Sweep(sweepGroups(t), 0.5, smallStyle())
	require.NoError(t, err)

	planJSON, err := fig.Plan.MarshalCanonical()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sweep_plan", planJSON)
}

func TestSweep_ColorsFollowDiscoveryOrder(t *testing.T) {
	// Same Γ set in a different first-appearance order swaps the colors.
	forward := sweepGroups(t)
	reversed, err := grouping.Discover([]dataset.SweepRecord{
		{Beta: 0.5, H: -0.5, Gamma: 1.0, SigmaZ: 0.09, SigmaX: -0.42},
		{Beta: 0.5, H: -0.5, Gamma: 0.5, SigmaZ: 0.11, SigmaX: -0.24},
	})
	require.NoError(t, err)

	figA, err := Sweep(forward, 0.5, smallStyle())
	require.NoError(t, err)
	figB, err := Sweep(reversed, 0.5, smallStyle())
	require.NoError(t, err)

	a := figA.Plan.Panels[0]
	b := figB.Plan.Panels[0]
	assert.Equal(t, "Γ=0.5", a.Series[1].Name)
	assert.Equal(t, "Γ=1.0", b.Series[1].Name)
	// First-discovered group takes the first palette sample either way.
	assert.Equal(t, a.Series[1].Color, b.Series[1].Color)
}

func TestSweep_NoGroups(t *testing.T) {
	_, err := Sweep(nil, 0.5, DefaultStyle())
	require.Error(t, err)
}

func TestSweep_RenderPNG(t *testing.T) {
	groups, err := grouping.Discover([]dataset.SweepRecord{
		{Beta: 0.5, H: -0.5, Gamma: 0.5, SigmaZ: 0.11, SigmaX: -0.24},
		{Beta: 0.5, H: 0.5, Gamma: 0.5, SigmaZ: -0.11, SigmaX: -0.24},
	})
	require.NoError(t, err)

	fig, err := Sweep(groups, 0.5, DefaultStyle())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf))
	_, err = png.Decode(&buf)
	require.NoError(t, err)
}
