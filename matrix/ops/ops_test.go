package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard/apostat/matrix"
	"github.com/halvard/apostat/matrix/ops"
)

func denseFrom(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestLUReconstructsOriginal(t *testing.T) {
	a := denseFrom(t, [][]float64{{4, 3}, {6, 3}})

	l, u, err := ops.LU(a)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum float64
			for k := 0; k < 2; k++ {
				lv, _ := l.At(i, k)
				uv, _ := u.At(k, j)
				sum += lv * uv
			}
			want, _ := a.At(i, j)
			require.InDelta(t, want, sum, 1e-9)
		}
	}
}

func TestInverseOfIdentityIsIdentity(t *testing.T) {
	a := denseFrom(t, [][]float64{{1, 0}, {0, 1}})

	inv, err := ops.Inverse(a)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := inv.At(i, j)
			if i == j {
				require.InDelta(t, 1.0, v, 1e-9)
			} else {
				require.InDelta(t, 0.0, v, 1e-9)
			}
		}
	}
}

func TestInverseRejectsSingularMatrix(t *testing.T) {
	a := denseFrom(t, [][]float64{{1, 2}, {2, 4}})

	_, err := ops.Inverse(a)
	require.Error(t, err)
}

func TestQRProducesOrthogonalQ(t *testing.T) {
	a := denseFrom(t, [][]float64{{1, 1}, {0, 1}})

	q, _, err := ops.QR(a)
	require.NoError(t, err)

	// Qᵀ Q should be the identity.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum float64
			for k := 0; k < 2; k++ {
				qi, _ := q.At(k, i)
				qj, _ := q.At(k, j)
				sum += qi * qj
			}
			if i == j {
				require.InDelta(t, 1.0, sum, 1e-9)
			} else {
				require.InDelta(t, 0.0, sum, 1e-9)
			}
		}
	}
}

func TestEigenOfDiagonalMatrixReturnsDiagonal(t *testing.T) {
	a := denseFrom(t, [][]float64{{2, 0}, {0, 5}})

	eigs, _, err := ops.Eigen(a, 1e-9, 100)
	require.NoError(t, err)
	require.ElementsMatch(t, []float64{2, 5}, eigs)
}

func TestEigenRejectsNonSymmetric(t *testing.T) {
	a := denseFrom(t, [][]float64{{1, 2}, {3, 4}})

	_, _, err := ops.Eigen(a, 1e-9, 100)
	require.ErrorIs(t, err, ops.ErrNotSymmetric)
}
