package dataset

import "github.com/halvard/apostat/matrix"

// Covariance returns the sample covariance matrix of d's matrix columns
// and their means, delegating to matrix.Covariance. This is the
// matrix-valued counterpart to stats.Covariance's pairwise scalar form.
func Covariance(d *Dataset) (matrix.Matrix, []float64, error) {
	if d.Matrix == nil {
		return nil, nil, ErrMissingPart
	}
	return matrix.Covariance(d.Matrix)
}

// Correlation returns the Pearson correlation matrix of d's matrix
// columns along with their means and standard deviations, delegating to
// matrix.Correlation.
func Correlation(d *Dataset) (matrix.Matrix, []float64, []float64, error) {
	if d.Matrix == nil {
		return nil, nil, nil, ErrMissingPart
	}
	return matrix.Correlation(d.Matrix)
}
