package mle

import (
	"math"

	"golang.org/x/exp/rand"
)

// runAnnealing implements spec.md §4.3's simulated-annealing method: a
// Gaussian step scaled by per-dimension initial magnitude and a
// temperature schedule (initial T, minimum T, damping,
// tries-per-T, iterations-per-fixed-T, step size, k). Grounded in
// original_source/apop_mle.m4.c's annealing schedule — gonum/optimize has
// no annealing method, so this stays a from-scratch implementation. The
// state is the packed parameter vector alone; no distance metric between
// states is computed.
func runAnnealing(sh *shell, x0 []float64, cfg *Settings) ([]float64, byte, error) {
	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	n := len(x0)
	scale := make([]float64, n)
	for i, v := range x0 {
		scale[i] = math.Max(math.Abs(v), 1.0) * cfg.AnnealStepSize
	}

	best := append([]float64(nil), x0...)
	bestE := sh.objective(best)
	cur := append([]float64(nil), x0...)
	curE := bestE

	temp := cfg.AnnealInitialT
	cand := make([]float64, n)
	for temp > cfg.AnnealMinT {
		for t := 0; t < cfg.AnnealItersT; t++ {
			for try := 0; try < cfg.AnnealTriesPerT; try++ {
				for i := range cand {
					cand[i] = cur[i] + scale[i]*rng.NormFloat64()
				}
				e := sh.objective(cand)
				delta := e - curE
				if delta < 0 || rng.Float64() < math.Exp(-delta/(cfg.AnnealK*temp)) {
					copy(cur, cand)
					curE = e
					if e < bestE {
						copy(best, cand)
						bestE = e
					}
				}
			}
		}
		temp *= cfg.AnnealDamping
	}
	return best, StatusOK, nil
}
