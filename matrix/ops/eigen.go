package ops

import (
	"fmt"

	"github.com/halvard/apostat/matrix"
)

// Eigen performs Jacobi eigenvalue decomposition on the symmetric matrix m,
// returning eigenvalues and the matrix of eigenvectors Q (as columns). tol
// bounds the largest tolerated off-diagonal magnitude; maxIter caps the
// number of sweeps. Delegates to matrix.Eigen.
func Eigen(m matrix.Matrix, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	eigs, q, err := matrix.Eigen(m, tol, maxIter)
	if err != nil {
		return nil, nil, fmt.Errorf("ops.Eigen: %w", translateErr(err))
	}
	return eigs, q, nil
}
