package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagmc/magcheck/internal/dataset"
)

const sweepCSV = `beta,H,GAMMA,N_measures,measured_sigmaz,measured_sigmax
0.5,-1.0,0.5,1000,0.22,-0.11
0.5,1.0,0.5,1000,-0.22,-0.11
0.5,0.0,1.0,1000,0.0,-0.23
`

func TestSweep_DefaultInput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, DefaultSweepInput, sweepCSV)

	out, err := execute(t, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote sweep_beta=0.5.png")

	info, err := os.Stat(filepath.Join(dir, "sweep_beta=0.5.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSweep_ArtifactNameFromBeta(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	data := `beta,H,GAMMA,N_measures,measured_sigmaz,measured_sigmax
2.0,0.5,1.0,1000,-0.4,-0.7
`
	writeFile(t, "run.csv", data)

	out, err := execute(t, "sweep", "run.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote sweep_beta=2.0.png")

	_, err = os.Stat(filepath.Join(dir, "sweep_beta=2.0.png"))
	require.NoError(t, err)
}

func TestSweep_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "sweep", "no_such_file.csv")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, dataset.IsNotFoundError(err))
}

func TestSweep_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	// No measured_sigmax column.
	writeFile(t, "bad.csv", "beta,H,GAMMA,N_measures,measured_sigmaz\n0.5,0.3,0.4,10,-0.1\n")

	_, err := execute(t, "sweep", "bad.csv")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, dataset.IsMissingColumnError(err))
}

func TestSweep_EmptyDataset(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, "empty.csv", "beta,H,GAMMA,N_measures,measured_sigmaz,measured_sigmax\n")

	_, err := execute(t, "sweep", "empty.csv")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, dataset.IsEmptyDatasetError(err))
}

func TestSweep_StyleOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, DefaultSweepInput, sweepCSV)
	writeFile(t, "style.yaml", "panel_width: 300\npanel_height: 200\ncurve_samples: 10\n")

	_, err := execute(t, "--style", "style.yaml", "sweep")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "sweep_beta=0.5.png"))
	require.NoError(t, err)
}
