// Package ops adapts the canonical linear-algebra kernels in package matrix
// to a narrower decomposition-focused API (LU, QR, Inverse, Eigen), with
// its own error sentinels for callers that don't want a dependency on
// matrix's sentinel set.
package ops

import (
	"fmt"

	"github.com/halvard/apostat/matrix"
)

// LU decomposes a square matrix m into unit-lower-triangular L and
// upper-triangular U such that m = L*U (no pivoting; Doolittle scheme).
// Delegates to matrix.LU.
func LU(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	l, u, err := matrix.LU(m)
	if err != nil {
		return nil, nil, fmt.Errorf("ops.LU: %w", translateErr(err))
	}
	return l, u, nil
}
