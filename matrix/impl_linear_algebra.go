// Numeric kernels over matrix.Matrix: Add/Sub/Mul/Scale/Hadamard/Transpose
// and the LU/QR/Eigen/Inverse decompositions. Within this module, dataset
// uses Transpose (directly and through the statistics kernels) and mle
// inverts its Hessian through ops.Inverse. Every kernel
// validates its operands via validators.go before touching an element,
// and every *Dense-on-*Dense pair takes a flat-slice fast path; anything
// else falls back to the generic At/Set interface.
package matrix

import "math"

const (
	zeroSum   = 0.0 // substitution accumulator seed
	zeroPivot = 0.0 // threshold below which a pivot is treated as singular
	zeroNorm  = 0.0 // threshold below which a Householder column is skipped
)

// elementwiseBinary implements the shared shape of Add/Sub/Hadamard: both
// operands must be non-nil and share a shape, the result is a freshly
// allocated Dense, and combine is applied cell-by-cell. Dense pairs take
// a flat-slice loop; anything else falls back to At/Set.
func elementwiseBinary(op string, a, b Matrix, combine func(x, y float64) float64) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, wrapErr(op, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				res.cells[idx] = combine(da.cells[idx], db.cells[idx])
			}
			return res, nil
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = res.Set(i, j, combine(av, bv))
		}
	}
	return res, nil
}

// Add returns the element-wise sum a+b. a and b must share a shape.
func Add(a, b Matrix) (Matrix, error) {
	return elementwiseBinary("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference a-b. a and b must share a shape.
func Sub(a, b Matrix) (Matrix, error) {
	return elementwiseBinary("Sub", a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard returns the element-wise product a⊙b. a and b must share a shape.
func Hadamard(a, b Matrix) (Matrix, error) {
	return elementwiseBinary("Hadamard", a, b, func(x, y float64) float64 { return x * y })
}

// Scale returns a copy of m with every element multiplied by alpha.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, wrapErr("Scale", err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, wrapErr("Scale", err)
	}

	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.cells[idx] = dm.cells[idx] * alpha
		}
		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			_ = res.Set(i, j, v*alpha)
		}
	}
	return res, nil
}

// Mul computes the matrix product a×b; a.Cols() must equal b.Rows().
// The inner loop skips zero entries of a, which helps on the
// block-diagonal and sparsified inputs dataset's design matrices tend
// to produce after centering.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, wrapErr("Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, wrapErr("Mul", err)
	}
	if a.Cols() != b.Rows() {
		return nil, wrapErr("Mul", ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, wrapErr("Mul", err)
	}

	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for i := 0; i < aRows; i++ {
				rowA := i * aCols
				rowR := i * bCols
				for k := 0; k < aCols; k++ {
					av := da.cells[rowA+k]
					if av == 0 {
						continue
					}
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.cells[rowR+j] += av * db.cells[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			var acc float64
			for k := 0; k < aCols; k++ {
				av, _ := a.At(i, k)
				if av == 0 {
					continue
				}
				bv, _ := b.At(k, j)
				acc += av * bv
			}
			_ = res.Set(i, j, acc)
		}
	}
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, wrapErr("Transpose", err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, wrapErr("Transpose", err)
	}

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.cells[j*rows+i] = dm.cells[base+j]
			}
		}
		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			_ = res.Set(j, i, v)
		}
	}
	return res, nil
}

// MatVec computes y = m*x for a column vector x; len(x) must equal m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, wrapErr("MatVec", err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, wrapErr("MatVec", err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			var acc float64
			base := i * cols
			for j := 0; j < cols; j++ {
				if xv := x[j]; xv != 0 {
					acc += d.cells[base+j] * xv
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	for i := 0; i < rows; i++ {
		var acc float64
		for j := 0; j < cols; j++ {
			mv, _ := m.At(i, j)
			acc += mv * x[j]
		}
		y[i] = acc
	}
	return y, nil
}

// Eigen runs Jacobi rotation on symmetric m (within tol of its
// transpose) and returns its eigenvalues alongside the orthogonal
// matrix whose columns are the corresponding eigenvectors. It gives up
// after maxIter sweeps, surfacing ErrMatrixEigenFailed if the largest
// off-diagonal magnitude is still above tol.
//
// No other package in this module calls Eigen directly; matrix/ops.Eigen
// is a thin wrapper over it.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, wrapErr("Eigen", err)
	}

	n := m.Rows()
	work := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, wrapErr("Eigen", err)
	}
	for i := 0; i < n; i++ {
		_ = q.Set(i, i, 1.0)
	}

	dense, fast := work.(*Dense)

	var p, pivotCol int
	for iter := 0; iter < maxIter; iter++ {
		maxOff := 0.0
		if fast {
			for i := 0; i < n; i++ {
				base := i * n
				for j := i + 1; j < n; j++ {
					if off := math.Abs(dense.cells[base+j]); off > maxOff {
						maxOff, p, pivotCol = off, i, j
					}
				}
			}
		} else {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					off, _ := work.At(i, j)
					if off = math.Abs(off); off > maxOff {
						maxOff, p, pivotCol = off, i, j
					}
				}
			}
		}
		if maxOff < tol {
			break
		}

		var app, aqq, apq float64
		if fast {
			app, aqq, apq = dense.cells[p*n+p], dense.cells[pivotCol*n+pivotCol], dense.cells[p*n+pivotCol]
		} else {
			app, _ = work.At(p, p)
			aqq, _ = work.At(pivotCol, pivotCol)
			apq, _ = work.At(p, pivotCol)
		}
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		q0 := pivotCol
		if fast {
			for i := 0; i < n; i++ {
				if i == p || i == q0 {
					continue
				}
				aip := dense.cells[i*n+p]
				aiq := dense.cells[i*n+q0]
				newIP := c*aip - s*aiq
				newIQ := s*aip + c*aiq
				dense.cells[i*n+p], dense.cells[p*n+i] = newIP, newIP
				dense.cells[i*n+q0], dense.cells[q0*n+i] = newIQ, newIQ
			}
			dense.cells[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
			dense.cells[q0*n+q0] = s*s*app + 2*c*s*apq + c*c*aqq
			dense.cells[p*n+q0], dense.cells[q0*n+p] = 0, 0
		} else {
			for i := 0; i < n; i++ {
				if i == p || i == q0 {
					continue
				}
				aip, _ := work.At(i, p)
				aiq, _ := work.At(i, q0)
				newIP := c*aip - s*aiq
				newIQ := s*aip + c*aiq
				_ = work.Set(i, p, newIP)
				_ = work.Set(p, i, newIP)
				_ = work.Set(i, q0, newIQ)
				_ = work.Set(q0, i, newIQ)
			}
			_ = work.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
			_ = work.Set(q0, q0, s*s*app+2*c*s*apq+c*c*aqq)
			_ = work.Set(p, q0, 0.0)
			_ = work.Set(q0, p, 0.0)
		}

		// q is always a freshly-allocated *Dense, so its update never
		// needs the fast/fallback split the working copy does above.
		for i := 0; i < n; i++ {
			qip := q.cells[i*n+p]
			qiq := q.cells[i*n+q0]
			q.cells[i*n+p] = c*qip - s*qiq
			q.cells[i*n+q0] = s*qip + c*qiq
		}
	}

	maxOff := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			off, _ := work.At(i, j)
			if a := math.Abs(off); a > maxOff {
				maxOff = a
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, wrapErr("Eigen", ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		v, _ := work.At(i, i)
		eigs[i] = v
	}
	return eigs, q, nil
}

// LU factors square m as L*U via Doolittle's method, with unit diagonal
// on L and no pivoting: the decomposition is deterministic across runs
// at the cost of robustness on ill-conditioned input. Its one consumer
// outside this package is mle, which reaches it through ops.Inverse on
// the Hessian of its objective.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, wrapErr("LU", err)
	}

	n := m.Rows()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, wrapErr("LU", err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, wrapErr("LU", err)
	}
	for i := 0; i < n; i++ {
		l.cells[i*n+i] = 1.0
	}

	dense, fast := m.(*Dense)
	if fast {
		for i := 0; i < n; i++ {
			baseI := i * n
			for j := i; j < n; j++ {
				sum := zeroSum
				for k := 0; k < i; k++ {
					sum += l.cells[baseI+k] * u.cells[k*n+j]
				}
				u.cells[baseI+j] = dense.cells[baseI+j] - sum
			}
			for j := i + 1; j < n; j++ {
				baseJ := j * n
				sum := zeroSum
				for k := 0; k < i; k++ {
					sum += l.cells[baseJ+k] * u.cells[k*n+i]
				}
				pivot := u.cells[baseI+i]
				l.cells[baseJ+i] = (dense.cells[baseJ+i] - sum) / pivot
			}
		}
		return l, u, nil
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := zeroSum
			for k := 0; k < i; k++ {
				lv, _ := l.At(i, k)
				uv, _ := u.At(k, j)
				sum += lv * uv
			}
			a, _ := m.At(i, j)
			_ = u.Set(i, j, a-sum)
		}
		for j := i + 1; j < n; j++ {
			sum := zeroSum
			for k := 0; k < i; k++ {
				lv, _ := l.At(j, k)
				uv, _ := u.At(k, i)
				sum += lv * uv
			}
			a, _ := m.At(j, i)
			pivot, _ := u.At(i, i)
			_ = l.Set(j, i, (a-sum)/pivot)
		}
	}
	return l, u, nil
}

// Inverse computes m^{-1} by LU-factoring m and solving L*U*x=e_col for
// each standard basis column, returning ErrSingular the moment a pivot
// is exactly zero.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, wrapErr("Inverse", err)
	}

	l, u, err := LU(m)
	if err != nil {
		return nil, wrapErr("Inverse", err)
	}

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, wrapErr("Inverse", err)
	}

	y := make([]float64, n)
	x := make([]float64, n)

	ld, okL := l.(*Dense)
	ud, okU := u.(*Dense)
	if okL && okU {
		for col := 0; col < n; col++ {
			for i := 0; i < n; i++ {
				sum := zeroSum
				baseI := i * n
				for k := 0; k < i; k++ {
					sum += ld.cells[baseI+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			for i := n - 1; i >= 0; i-- {
				sum := zeroSum
				baseI := i * n
				for k := i + 1; k < n; k++ {
					sum += ud.cells[baseI+k] * x[k]
				}
				pivot := ud.cells[baseI+i]
				if pivot == zeroPivot {
					return nil, wrapErr("Inverse", ErrSingular)
				}
				x[i] = (y[i] - sum) / pivot
			}
			for i := 0; i < n; i++ {
				inv.cells[i*n+col] = x[i]
			}
		}
		return inv, nil
	}

	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			sum := zeroSum
			for k := 0; k < i; k++ {
				lv, _ := l.At(i, k)
				sum += lv * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		for i := n - 1; i >= 0; i-- {
			sum := zeroSum
			for k := i + 1; k < n; k++ {
				uv, _ := u.At(i, k)
				sum += uv * x[k]
			}
			pivot, _ := u.At(i, i)
			if pivot == zeroPivot {
				return nil, wrapErr("Inverse", ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i := 0; i < n; i++ {
			_ = inv.Set(i, col, x[i])
		}
	}
	return inv, nil
}

// QR factors square m via Householder reflections, column by column,
// into Q (the accumulated product of the reflectors) and upper-triangular
// R with m = Qᵀ*R; a zero-norm column (already upper-triangular in that
// position) is left untouched rather than treated as an error.
func QR(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, wrapErr("QR", err)
	}
	n := m.Rows()

	r := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, wrapErr("QR", err)
	}
	for i := 0; i < n; i++ {
		q.cells[i*n+i] = 1.0
	}

	dense, fast := r.(*Dense)
	v := make([]float64, n)

	for k := 0; k < n; k++ {
		norm := 0.0
		if fast {
			for i := k; i < n; i++ {
				aik := dense.cells[i*n+k]
				norm += aik * aik
			}
		} else {
			for i := k; i < n; i++ {
				aik, _ := r.At(i, k)
				norm += aik * aik
			}
		}
		norm = math.Sqrt(norm)
		if norm == zeroNorm {
			continue
		}

		var akk float64
		if fast {
			akk = dense.cells[k*n+k]
		} else {
			akk, _ = r.At(k, k)
		}
		alpha := -math.Copysign(norm, akk)

		for i := range v {
			v[i] = 0.0
		}
		if fast {
			for i := k; i < n; i++ {
				v[i] = dense.cells[i*n+k]
			}
		} else {
			for i := k; i < n; i++ {
				v[i], _ = r.At(i, k)
			}
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < n; i++ {
			beta += v[i] * v[i]
		}
		tau := 2.0 / beta

		if fast {
			for j := k; j < n; j++ {
				sum := 0.0
				for i := k; i < n; i++ {
					sum += v[i] * dense.cells[i*n+j]
				}
				for i := k; i < n; i++ {
					dense.cells[i*n+j] -= tau * v[i] * sum
				}
			}
		} else {
			for j := k; j < n; j++ {
				sum := 0.0
				for i := k; i < n; i++ {
					aij, _ := r.At(i, j)
					sum += v[i] * aij
				}
				for i := k; i < n; i++ {
					aij, _ := r.At(i, j)
					_ = r.Set(i, j, aij-tau*v[i]*sum)
				}
			}
		}

		// Q accumulates the same reflection over all n columns, unlike R
		// which only ever needs columns k..n-1 touched.
		for j := 0; j < n; j++ {
			sum := 0.0
			for i := k; i < n; i++ {
				sum += v[i] * q.cells[i*n+j]
			}
			for i := k; i < n; i++ {
				q.cells[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	return q, r, nil
}
