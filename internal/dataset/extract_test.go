package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagmc/magcheck/internal/physics"
)

func TestConstantParameters(t *testing.T) {
	recs := []ConvergenceRecord{
		{Beta: 0.5, H: 0.3, Gamma: 0.4, NMeasures: 10},
		{Beta: 0.5, H: 0.3, Gamma: 0.4, NMeasures: 100},
	}

	p, err := ConstantParameters(recs)
	require.NoError(t, err)
	assert.Equal(t, physics.Parameters{Beta: 0.5, H: 0.3, Gamma: 0.4}, p)
}

func TestConstantParameters_Empty(t *testing.T) {
	_, err := ConstantParameters(nil)
	require.Error(t, err)
	assert.True(t, IsEmptyDatasetError(err))
}

func TestSweepBeta(t *testing.T) {
	recs := []SweepRecord{
		{Beta: 2.0, H: -1, Gamma: 0.5},
		{Beta: 2.0, H: -0.5, Gamma: 0.5},
	}

	beta, err := SweepBeta(recs)
	require.NoError(t, err)
	assert.Equal(t, 2.0, beta)
}

func TestSweepBeta_Empty(t *testing.T) {
	_, err := SweepBeta(nil)
	require.Error(t, err)
	assert.True(t, IsEmptyDatasetError(err))
}
