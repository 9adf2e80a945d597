package ops

import (
	"fmt"

	"github.com/halvard/apostat/matrix"
)

// QR returns orthogonal Q and upper-triangular R such that m = Qᵀ*R, via
// Householder reflections (Q is the product of the reflectors). Delegates
// to matrix.QR.
func QR(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	q, r, err := matrix.QR(m)
	if err != nil {
		return nil, nil, fmt.Errorf("ops.QR: %w", translateErr(err))
	}
	return q, r, nil
}
