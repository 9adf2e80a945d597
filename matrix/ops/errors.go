package ops

import (
	"errors"

	"github.com/halvard/apostat/matrix"
)

// ErrNotSymmetric is returned when Eigen's input matrix is not symmetric.
var ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

// ErrEigenFailed is returned when Eigen does not converge within maxIter.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// ErrSingular is returned when Inverse encounters a zero pivot.
var ErrSingular = errors.New("ops: matrix is singular")

// translateErr maps a matrix-package sentinel onto this package's own, so
// callers of ops never need to import matrix just to match an error. Shape
// errors (ErrMatrixDimensionMismatch, ErrNilMatrix, ...) pass through
// unchanged since ops has no narrower sentinel for them.
func translateErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNotSymmetric):
		return ErrNotSymmetric
	case errors.Is(err, matrix.ErrEigenFailed):
		return ErrEigenFailed
	case errors.Is(err, matrix.ErrSingular):
		return ErrSingular
	default:
		return err
	}
}
