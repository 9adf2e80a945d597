// Shape-checking helpers shared by the numeric kernels in this package:
// every Add/Sub/Mul/Covariance-style entry point runs its operands
// through these before touching a single element, so dimension errors
// surface before any allocation happens.
package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil reports ErrNilMatrix if m is nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return wrapErr("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape reports an error unless a and b are both non-nil and
// share identical row and column counts.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return wrapErr("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return wrapErr("ValidateSameShape", err)
	}

	ra, ca := a.Rows(), a.Cols()
	rb, cb := b.Rows(), b.Cols()
	switch {
	case ra != rb:
		return wrapErr("ValidateSameShape", fmt.Errorf("row count mismatch %d != %d: %w", ra, rb, ErrMatrixDimensionMismatch))
	case ca != cb:
		return wrapErr("ValidateSameShape", fmt.Errorf("column count mismatch %d != %d: %w", ca, cb, ErrMatrixDimensionMismatch))
	default:
		return nil
	}
}

// ValidateSquare reports an error unless m is non-nil and Rows() ==
// Cols(); most decomposition kernels (LU, QR, Eigen, Inverse) require
// this before they can proceed.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return wrapErr("ValidateSquare", err)
	}
	if r, c := m.Rows(), m.Cols(); r != c {
		return wrapErr("ValidateSquare", fmt.Errorf("%dx%d not square: %w", r, c, ErrMatrixDimensionMismatch))
	}
	return nil
}

// ValidateVecLen reports an error unless x has exactly want elements;
// used wherever a vector must align with a matrix's row or column count
// (MatVec's x, for instance).
func ValidateVecLen(x []float64, want int) error {
	if x == nil {
		return wrapErr("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != want {
		return wrapErr("ValidateVecLen", fmt.Errorf("vector length %d != %d: %w", len(x), want, ErrDimensionMismatch))
	}
	return nil
}

// ValidateSymmetric reports an error unless m is non-nil, square, and
// symmetric within tol (|m[i,j]-m[j,i]| <= tol for every off-diagonal
// pair); Eigen requires this before running Jacobi rotations.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return wrapErr("ValidateSymmetric", err)
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, err := m.At(i, j)
			if err != nil {
				return wrapErr("ValidateSymmetric", err)
			}
			aji, err := m.At(j, i)
			if err != nil {
				return wrapErr("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return wrapErr("ValidateSymmetric", fmt.Errorf("asymmetry at (%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}
	return nil
}
