package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	fig, err := Convergence(convRecords(), convParams(), DefaultStyle())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "convergence_test.png")
	require.NoError(t, Save(fig, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Saving again replaces the artifact; no versioning, no backup.
	require.NoError(t, Save(fig, path))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_BadPath(t *testing.T) {
	fig, err := Convergence(convRecords(), convParams(), DefaultStyle())
	require.NoError(t, err)

	err = Save(fig, filepath.Join(t.TempDir(), "no-such-dir", "x.png"))
	assert.Error(t, err)
}
