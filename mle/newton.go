package mle

import (
	"math"

	gmat "gonum.org/v1/gonum/mat"

	"github.com/halvard/apostat/numeric"
)

// runNewton implements spec.md §4.3's root-finder method: Newton's method
// driving the (numerical, absent an analytic score) gradient of the shell
// to zero. No ecosystem root-finder appeared in the retrieval pack, so
// this stays hand-rolled — documented in DESIGN.md as the justified
// standard-library exception.
func runNewton(sh *shell, x0 []float64, cfg *Settings) ([]float64, byte, error) {
	n := len(x0)
	x := append([]float64(nil), x0...)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		g := numeric.Gradient(sh.objective, x, numeric.WithDelta(cfg.Delta))
		if norm(g) <= cfg.Tolerance {
			return x, StatusOK, nil
		}
		H := numeric.Hessian(sh.objective, x, numeric.WithDelta(cfg.Delta))

		var step gmat.VecDense
		rhs := gmat.NewVecDense(n, g)
		if err := step.SolveVec(H, rhs); err != nil {
			// Singular Hessian: fall back to a damped gradient step.
			for i := range x {
				x[i] -= cfg.Delta * g[i]
			}
			continue
		}
		for i := range x {
			x[i] -= step.AtVec(i)
		}
	}
	return x, StatusMaxIter, nil
}

func norm(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
