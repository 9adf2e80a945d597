package naming

import "github.com/halvard/apostat/stats"

// Percentile is a thin re-export of stats.Percentile, kept here because
// the L component (spec.md §3.2) groups "name manipulation, percentile,
// sort-in-place" as one surface even though the percentile computation
// itself belongs to the stats package.
func Percentile(x []float64, p float64, weights []float64) (float64, error) {
	return stats.Percentile(x, p, weights)
}
