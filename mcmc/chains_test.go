package mcmc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard/apostat/mcmc"
)

func TestRunChainsRecoversPosteriorMeanAcrossChains(t *testing.T) {
	m := gaussianModel()
	d := sampleData()
	cfg := mcmc.New(mcmc.WithPeriods(2000), mcmc.WithBurninFraction(0.2))

	outs, err := mcmc.RunChains(d, m, cfg, 3)
	require.NoError(t, err)
	require.Len(t, outs, 3)

	for _, out := range outs {
		require.NotNil(t, out)
		require.NotNil(t, out.Data.Matrix)
		rows := out.Data.Matrix.Rows()
		require.Greater(t, rows, 0)

		sum := 0.0
		for i := 0; i < rows; i++ {
			v, err := out.Data.Matrix.At(i, 0)
			require.NoError(t, err)
			sum += v
		}
		mean := sum / float64(rows)
		require.InDelta(t, 2.0, mean, 0.4)
	}
}

func TestRunChainsPanicsOnNonPositiveCount(t *testing.T) {
	m := gaussianModel()
	d := sampleData()
	require.Panics(t, func() { _, _ = mcmc.RunChains(d, m, nil, 0) })
}
