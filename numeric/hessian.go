package numeric

import "gonum.org/v1/gonum/mat"

// Hessian assembles the Hessian of f at x via repeated central
// differences:
//
//	H[i][j] = (f(x+h*e_i+h*e_j) - f(x+h*e_i-h*e_j)
//	         - f(x-h*e_i+h*e_j) + f(x-h*e_i-h*e_j)) / (4*h^2)
//
// into a *mat.Dense. The mle driver copies it into a matrix.Dense and
// inverts it with matrix/ops.Inverse for the parameter covariance page;
// the Newton method solves against it through gonum/mat.
// Diagonal entries reuse the cheaper three-point second-difference form.
func Hessian(f Func, x []float64, opts ...Option) *mat.Dense {
	o := gatherOptions(opts)
	h := o.delta
	n := len(x)
	H := mat.NewDense(n, n, nil)

	xi := append([]float64(nil), x...)
	f0 := f(x)
	for i := 0; i < n; i++ {
		xi[i] = x[i] + h
		fp := f(xi)
		xi[i] = x[i] - h
		fm := f(xi)
		xi[i] = x[i]
		H.Set(i, i, (fp-2*f0+fm)/(h*h))
	}

	work := append([]float64(nil), x...)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			work[i] = x[i] + h
			work[j] = x[j] + h
			fpp := f(work)

			work[j] = x[j] - h
			fpm := f(work)

			work[i] = x[i] - h
			fmm := f(work)

			work[j] = x[j] + h
			fmp := f(work)

			work[i], work[j] = x[i], x[j]

			v := (fpp - fpm - fmp + fmm) / (4 * h * h)
			H.Set(i, j, v)
			H.Set(j, i, v)
		}
	}
	return H
}
