// SPDX-License-Identifier: MIT

// Statistical transforms consumed by dataset's Covariance/Correlation
// wrappers: column/row centering, row normalization,
// and the Covariance/Correlation estimators. Each is a deterministic
// composition over the canonical kernels in impl_linear_algebra.go
// (Transpose/Mul/Scale) and the ew* micro-kernels in ops_elementwise.go.
package matrix

import "math"

const (
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
)

// rowReduce folds accumulate over every row of X (accumulate(acc, X[i,j])
// starting from 0), then applies finalize to each row's accumulator. It
// backs the per-row mean/L1-norm/L2-norm computations that CenterRows,
// NormalizeRowsL1, and NormalizeRowsL2 each need before they can call
// ewBroadcastSubRows/ewScaleRows.
func rowReduce(op string, X Matrix, accumulate func(acc, v float64) float64, finalize func(acc float64) float64) ([]float64, error) {
	r, c := X.Rows(), X.Cols()
	out := make([]float64, r)

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			acc := 0.0
			base := i * c
			for j := 0; j < c; j++ {
				acc = accumulate(acc, d.cells[base+j])
			}
			out[i] = finalize(acc)
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		acc := 0.0
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, wrapErr(op, err)
			}
			acc = accumulate(acc, v)
		}
		out[i] = finalize(acc)
	}
	return out, nil
}

// colSums returns Σ_i X[i,j] for each column j.
func colSums(op string, X Matrix) ([]float64, error) {
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				sums[j] += d.cells[base+j]
			}
		}
		return sums, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, wrapErr(op, err)
			}
			sums[j] += v
		}
	}
	return sums, nil
}

// invOrUnit inverts each positive entry of norms in place; a non-positive
// entry (a degenerate, all-zero row) maps to unit so the row is left
// unchanged by the subsequent scale rather than collapsed to zero.
func invOrUnit(norms []float64) []float64 {
	scale := make([]float64, len(norms))
	for i, n := range norms {
		if n > 0 {
			scale[i] = 1.0 / n
		} else {
			scale[i] = 1.0
		}
	}
	return scale
}

// CenterColumns subtracts the per-column mean from every element. Zero-size
// input (0 rows or 0 columns) is a no-op returning X itself.
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, wrapErr(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, make([]float64, c), nil
	}

	sums, err := colSums(opCenterColumns, X)
	if err != nil {
		return nil, nil, err
	}
	means := sums
	invR := 1.0 / float64(r)
	for j := range means {
		means[j] *= invR
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, wrapErr(opCenterColumns, err)
	}
	return Xc, means, nil
}

// CenterRows subtracts the per-row mean from every element. Zero-size input
// is a no-op returning X itself.
func CenterRows(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, wrapErr(opCenterRows, err)
	}

	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, make([]float64, r), nil
	}

	invC := 1.0 / float64(c)
	means, err := rowReduce(opCenterRows, X,
		func(acc, v float64) float64 { return acc + v },
		func(acc float64) float64 { return acc * invC },
	)
	if err != nil {
		return nil, nil, err
	}

	Xc, err := ewBroadcastSubRows(X, means)
	if err != nil {
		return nil, nil, wrapErr(opCenterRows, err)
	}
	return Xc, means, nil
}

// NormalizeRowsL1 scales each row to L1-norm 1 where possible; a degenerate
// (all-zero) row is left unchanged rather than divided by zero.
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, wrapErr(opNormalizeRowsL1, err)
	}

	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, make([]float64, r), nil
	}

	norms, err := rowReduce(opNormalizeRowsL1, X,
		func(acc, v float64) float64 { return acc + math.Abs(v) },
		func(acc float64) float64 { return acc },
	)
	if err != nil {
		return nil, nil, err
	}

	Y, err := ewScaleRows(X, invOrUnit(norms))
	if err != nil {
		return nil, nil, wrapErr(opNormalizeRowsL1, err)
	}
	return Y, norms, nil
}

// NormalizeRowsL2 scales each row to L2-norm 1 where possible; a degenerate
// (all-zero) row is left unchanged.
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, wrapErr(opNormalizeRowsL2, err)
	}

	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, make([]float64, r), nil
	}

	norms, err := rowReduce(opNormalizeRowsL2, X,
		func(acc, v float64) float64 { return acc + v*v },
		func(acc float64) float64 { return math.Sqrt(acc) },
	)
	if err != nil {
		return nil, nil, err
	}

	Y, err := ewScaleRows(X, invOrUnit(norms))
	if err != nil {
		return nil, nil, wrapErr(opNormalizeRowsL2, err)
	}
	return Y, norms, nil
}

// Covariance computes the sample covariance of X's columns: Cov = (Xcᵀ
// Xc)/(r-1), alongside the column means used to center X. Requires r>=2
// when c>0; a zero-column X produces a valid 0x0 result.
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, wrapErr(opCovariance, err)
	}

	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, err := NewDense(0, 0)
		if err != nil {
			return nil, nil, wrapErr(opCovariance, err)
		}
		return z, make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, wrapErr(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, wrapErr(opCovariance, err)
	}

	Cov, err := gramOverDF(Xc, r)
	if err != nil {
		return nil, nil, wrapErr(opCovariance, err)
	}
	return Cov, means, nil
}

// gramOverDF computes (Aᵀ A)/(df-1) via the canonical Transpose/Mul/Scale
// kernels; both Covariance and Correlation reduce to this once their input
// has been centered (and, for Correlation, z-scored).
func gramOverDF(A Matrix, df int) (Matrix, error) {
	At, err := Transpose(A)
	if err != nil {
		return nil, err
	}
	G, err := Mul(At, A)
	if err != nil {
		return nil, err
	}
	return Scale(G, 1.0/float64(df-1))
}

// Correlation computes the Pearson correlation of X's columns via
// z-scoring: Z = (X - mean) * diag(1/std), Corr = (Zᵀ Z)/(r-1). A
// degenerate column (std==0) is zeroed rather than divided by zero, so its
// row/column in Corr comes out all-zero. Requires r>=2 when c>0.
func Correlation(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, wrapErr(opCorrelation, err)
	}

	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, err := NewDense(0, 0)
		if err != nil {
			return nil, nil, nil, wrapErr(opCorrelation, err)
		}
		return z, make([]float64, 0), make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, nil, wrapErr(opCorrelation, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, nil, wrapErr(opCorrelation, err)
	}

	sumsq, err := colSums(opCorrelation, squareMatrix{Xc})
	if err != nil {
		return nil, nil, nil, wrapErr(opCorrelation, err)
	}
	inv := 1.0 / float64(r-1)
	stds := make([]float64, c)
	invStd := make([]float64, c)
	for j := range stds {
		stds[j] = math.Sqrt(sumsq[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, wrapErr(opCorrelation, err)
	}

	Corr, err := gramOverDF(Z, r)
	if err != nil {
		return nil, nil, nil, wrapErr(opCorrelation, err)
	}
	return Corr, means, stds, nil
}

// squareMatrix wraps a Matrix so At reads each element squared; it is not
// a *Dense, so colSums takes its At path for it, letting Correlation reuse colSums for Σ Xc[i,j]^2
// instead of hand-rolling a second accumulation loop.
type squareMatrix struct{ Matrix }

func (s squareMatrix) At(i, j int) (float64, error) {
	v, err := s.Matrix.At(i, j)
	if err != nil {
		return 0, err
	}
	return v * v, nil
}
