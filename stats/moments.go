package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// checkWeights validates that weights, when given, has the same length
// as the sample it weights.
func checkWeights(n int, weights []float64) error {
	if weights != nil && len(weights) != n {
		return ErrWeightMismatch
	}
	return nil
}

// Mean returns the (optionally weighted) arithmetic mean of x.
func Mean(x, weights []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	return stat.Mean(x, weights), nil
}

// Variance returns the (optionally weighted) sample variance of x.
func Variance(x, weights []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	return stat.Variance(x, weights), nil
}

// StdDev returns the (optionally weighted) sample standard deviation of x.
func StdDev(x, weights []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	return stat.StdDev(x, weights), nil
}

// Skewness returns the (optionally weighted) sample skewness of x.
func Skewness(x, weights []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	return stat.Skew(x, weights), nil
}

// ExcessKurtosis returns the (optionally weighted) sample excess
// kurtosis of x (the Gaussian baseline of 3 already subtracted).
func ExcessKurtosis(x, weights []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	return stat.ExKurtosis(x, weights), nil
}

// Covariance returns the (optionally weighted) sample covariance between
// x and y.
func Covariance(x, y, weights []float64) (float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	return stat.Covariance(x, y, weights), nil
}

// Correlation returns the (optionally weighted) Pearson correlation
// between x and y.
func Correlation(x, y, weights []float64) (float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	return stat.Correlation(x, y, weights), nil
}

// Percentile returns the p-th (0<=p<=1) percentile of x. Unweighted, it
// interpolates linearly between the order statistics around position
// p*(n-1), so the median of an even-length sample is the mean of its two
// middle values. Weighted, it uses stat.Quantile with stat.LinInterp over
// the weight-sorted sample. x is copied and sorted internally; the
// caller's slice is left untouched.
func Percentile(x []float64, p float64, weights []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkWeights(len(x), weights); err != nil {
		return 0, err
	}
	sorted := append([]float64(nil), x...)
	if weights == nil {
		sort.Float64s(sorted)
		h := p * float64(len(sorted)-1)
		lo := int(math.Floor(h))
		if lo >= len(sorted)-1 {
			return sorted[len(sorted)-1], nil
		}
		return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo]), nil
	}
	sortedWeights := append([]float64(nil), weights...)
	stat.SortWeighted(sorted, sortedWeights)
	return stat.Quantile(p, stat.LinInterp, sorted, sortedWeights), nil
}

// Entropy returns the Shannon entropy of a discrete probability vector p.
func Entropy(p []float64) (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptySample
	}
	return stat.Entropy(p), nil
}

// KLDivergence returns the Kullback-Leibler divergence D(p || q) between
// two discrete probability vectors of equal length.
func KLDivergence(p, q []float64) (float64, error) {
	if len(p) == 0 || len(p) != len(q) {
		return 0, ErrEmptySample
	}
	return stat.KullbackLeibler(p, q), nil
}
