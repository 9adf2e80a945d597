package ops

import (
	"fmt"

	"github.com/halvard/apostat/matrix"
)

// Inverse returns the inverse of the square matrix m. Delegates to
// matrix.Inverse (LU-based, no pivoting); a zero pivot reports ErrSingular.
func Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	inv, err := matrix.Inverse(m)
	if err != nil {
		return nil, fmt.Errorf("ops.Inverse: %w", translateErr(err))
	}
	return inv, nil
}
