package optio_test

import (
	"testing"

	"github.com/halvard/apostat/optio"
	"github.com/stretchr/testify/require"
)

func TestTryInitDefaults(t *testing.T) {
	optio.TryInit(optio.WithVerbosity(optio.VerbosityInfo))
	o := optio.Get()
	require.Equal(t, optio.DefaultOutputDelimiter, o.OutputDelimiter())
	require.GreaterOrEqual(t, o.ThreadCount(), 1)
}

func TestTryInitIsIdempotent(t *testing.T) {
	optio.TryInit(optio.WithThreadCount(4))
	optio.TryInit(optio.WithThreadCount(99)) // no-op, first call wins
	o := optio.Get()
	require.NotEqual(t, 99, o.ThreadCount())
}

func TestWithThreadCountPanicsOnZero(t *testing.T) {
	require.Panics(t, func() { optio.WithThreadCount(0) })
}

func TestNextSeedIsMonotonic(t *testing.T) {
	a := optio.NextSeed()
	b := optio.NextSeed()
	require.NotEqual(t, a, b)
}
