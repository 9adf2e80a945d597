// SPDX-License-Identifier: MIT

// Unexported element-wise micro-kernels shared by impl_statistics.go
// (column/row centering and normalization) and the exported sanitizer
// facades at the end of this file (Clip, ReplaceInfNaN, AllClose). Kept
// private so the statistics
// layer can compose them freely without growing the public surface for
// every intermediate broadcast or scale step.
package matrix

import "math"

const (
	opBroadcastSubCols = "broadcastSubCols"
	opBroadcastSubRows = "broadcastSubRows"
	opScaleCols        = "scaleCols"
	opScaleRows        = "scaleRows"
	opReplaceInfNaN    = "ReplaceInfNaN"
	opClip             = "Clip"
	opAllClose         = "AllClose"
)

// ewColBroadcast applies combine(X[i,j], vec[j]) for every cell, where vec
// has one entry per column; ewBroadcastSubCols and ewScaleCols are both
// one-line calls into this with a different combine function.
func ewColBroadcast(op string, X Matrix, vec []float64, combine func(x, v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, wrapErr(op, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(vec) != c {
		return nil, wrapErr(op, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.cells[base+j] = combine(d.cells[base+j], vec[j])
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, wrapErr(op, err)
			}
			_ = out.Set(i, j, combine(v, vec[j]))
		}
	}
	return out, nil
}

// ewRowBroadcast applies combine(X[i,j], vec[i]) for every cell, where vec
// has one entry per row.
func ewRowBroadcast(op string, X Matrix, vec []float64, combine func(x, v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, wrapErr(op, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(vec) != r {
		return nil, wrapErr(op, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			rv := vec[i]
			for j := 0; j < c; j++ {
				out.cells[base+j] = combine(d.cells[base+j], rv)
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		rv := vec[i]
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, wrapErr(op, err)
			}
			_ = out.Set(i, j, combine(v, rv))
		}
	}
	return out, nil
}

// ewElementwiseMap applies transform to every cell of X independently of
// its neighbors; ewReplaceInfNaN and ewClipRange are both thin calls into
// this with different per-element transforms.
func ewElementwiseMap(op string, X Matrix, transform func(v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, wrapErr(op, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	if d, ok := X.(*Dense); ok {
		n := r * c
		for idx := 0; idx < n; idx++ {
			out.cells[idx] = transform(d.cells[idx])
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, wrapErr(op, err)
			}
			_ = out.Set(i, j, transform(v))
		}
	}
	return out, nil
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j]; the column
// centering step behind CenterColumns.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	return ewColBroadcast(opBroadcastSubCols, X, colMeans, func(x, v float64) float64 { return x - v })
}

// ewBroadcastSubRows computes out[i,j] = X[i,j] - rowMeans[i]; the row
// centering step behind CenterRows.
func ewBroadcastSubRows(X Matrix, rowMeans []float64) (Matrix, error) {
	return ewRowBroadcast(opBroadcastSubRows, X, rowMeans, func(x, v float64) float64 { return x - v })
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j]; used by Correlation's
// z-scoring step (scale[j] = 1/std[j], or 0 for a degenerate column).
func ewScaleCols(X Matrix, scale []float64) (Matrix, error) {
	return ewColBroadcast(opScaleCols, X, scale, func(x, v float64) float64 { return x * v })
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i]; used by
// NormalizeRowsL1/NormalizeRowsL2 (scale[i] = 1/norm[i], or 1 for a
// degenerate row, via invOrUnit).
func ewScaleRows(X Matrix, scale []float64) (Matrix, error) {
	return ewRowBroadcast(opScaleRows, X, scale, func(x, v float64) float64 { return x * v })
}

// ewReplaceInfNaN copies X, replacing every NaN/±Inf cell with val. val
// itself must be finite.
func ewReplaceInfNaN(X Matrix, val float64) (Matrix, error) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, wrapErr(opReplaceInfNaN, ErrNaNInf)
	}
	return ewElementwiseMap(opReplaceInfNaN, X, func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return val
		}
		return v
	})
}

// ewClipRange copies X, clamping every cell into [lo, hi]. Both bounds must
// be finite; if lo > hi they are swapped rather than treated as an error.
func ewClipRange(X Matrix, lo, hi float64) (Matrix, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, wrapErr(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return ewElementwiseMap(opClip, X, func(v float64) float64 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		default:
			return v
		}
	})
}

// ewAllClose reports whether |a-b| <= atol + rtol*|b| holds for every cell
// of two identically-shaped matrices; the comparator behind AllClose and
// the package's test assertions.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, wrapErr(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, wrapErr(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, wrapErr(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, wrapErr(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	isClose := func(x, y float64) bool { return math.Abs(x-y) <= atol+rtol*math.Abs(y) }

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if !isClose(da.cells[idx], db.cells[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if !isClose(av, bv) {
				return false, nil
			}
		}
	}
	return true, nil
}

// Clip returns a copy of X with every cell clamped into [lo, hi]; see ewClipRange.
func Clip(X Matrix, lo, hi float64) (Matrix, error) { return ewClipRange(X, lo, hi) }

// ReplaceInfNaN returns a copy of X with every NaN/±Inf cell replaced by val.
func ReplaceInfNaN(X Matrix, val float64) (Matrix, error) { return ewReplaceInfNaN(X, val) }

// AllClose reports whether |a-b| <= atol + rtol*|b| holds for every cell.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
