package mle

import (
	"errors"

	gmat "gonum.org/v1/gonum/mat"

	"github.com/halvard/apostat/matrix"
	"github.com/halvard/apostat/matrix/ops"
)

// invertHessian inverts the negated-shell Hessian (which already equals
// the Fisher-information-like negative-log-likelihood Hessian, since the
// shell value is penalty - f) and copies the result into an
// apostat matrix.Dense for the <Covariance> page. The inversion itself
// goes through matrix/ops.Inverse (LU-based) rather than gonum's mat.Dense
// Inverse, so the apostat-native LU/inverse kernels see real use.
func invertHessian(h *gmat.Dense) (*matrix.Dense, error) {
	n, _ := h.Dims()
	src, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := src.Set(i, j, h.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	inv, err := ops.Inverse(src)
	if err != nil {
		return nil, errors.New("mle: hessian is singular; no covariance available")
	}
	return inv.(*matrix.Dense), nil
}
