package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/matrix"
)

func mustDense(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	k := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[k]))
			k++
		}
	}
	return m
}

func TestGetSetVectorAndMatrix(t *testing.T) {
	d := dataset.New("demo")
	d.Vector = []float64{1, 2, 3}
	d.Matrix = mustDense(t, 2, 2, 10, 20, 30, 40)

	require.Equal(t, 2.0, d.Get(1, -1))
	require.Equal(t, 30.0, d.Get(1, 0))

	require.NoError(t, d.Set(1, -1, 99))
	require.Equal(t, 99.0, d.Get(1, -1))
}

func TestGetOutOfBoundsReturnsNaN(t *testing.T) {
	d := dataset.New("demo")
	d.Vector = []float64{1, 2}

	require.True(t, math.IsNaN(d.Get(5, -1)))
	require.True(t, math.IsNaN(d.Get(0, 0))) // no matrix
}

func TestSetOutOfBounds(t *testing.T) {
	d := dataset.New("demo")
	d.Vector = []float64{1}
	require.ErrorIs(t, d.Set(5, -1, 1), dataset.ErrOutOfBounds)
	require.ErrorIs(t, d.Set(0, 0, 1), dataset.ErrMissingPart)
}

func TestCopyIndependence(t *testing.T) {
	d := dataset.New("demo")
	d.Vector = []float64{1, 2, 3}
	d.Matrix = mustDense(t, 1, 1, 7)

	cp, err := d.Copy()
	require.NoError(t, err)
	cp.Vector[0] = 999
	require.Equal(t, 1.0, d.Vector[0])
	require.NoError(t, cp.Set(0, 0, -1))
	v, _ := d.Matrix.At(0, 0)
	require.Equal(t, 7.0, v)
}

func TestCopyDetectsCycle(t *testing.T) {
	a := dataset.New("a")
	b := dataset.New("b")
	a.More = b
	b.More = a

	_, err := a.Copy()
	require.ErrorIs(t, err, dataset.ErrCycle)
}

func TestGetByName(t *testing.T) {
	d := dataset.New("demo")
	d.Matrix = mustDense(t, 2, 2, 1, 2, 3, 4)
	d.Names.AppendRow("first")
	d.Names.AppendRow("second")
	d.Names.AppendCol("x")
	d.Names.AppendCol("y")

	require.Equal(t, 4.0, d.GetByName("second", "y"))
}
