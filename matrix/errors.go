// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// All algorithms in this package return these sentinels (never panic) on
// user-triggered error conditions; tests match them via errors.Is. Panics
// are reserved for programmer errors in option constructors.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows/cols <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrIndexOutOfBounds is the indexer-facing name for ErrOutOfRange.
	ErrIndexOutOfBounds = ErrOutOfRange

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g.
	// Add/Sub of differently-shaped operands, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMatrixDimensionMismatch is the validator-facing name for
	// ErrDimensionMismatch.
	ErrMatrixDimensionMismatch = ErrDimensionMismatch

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNotSymmetric is an alias of ErrAsymmetry used by the eigen routines.
	ErrNotSymmetric = ErrAsymmetry

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed indicates a Jacobi eigen routine failed to converge
	// under the given tolerance/iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrMatrixEigenFailed is an alias of ErrEigenFailed kept for the
	// generic linear-algebra facade, which predates the eigen package split.
	ErrMatrixEigenFailed = ErrEigenFailed

	// ErrSingular is returned when a zero pivot is encountered during LU
	// decomposition or inversion (no pivoting: deterministic, not robust).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
