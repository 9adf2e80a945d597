package mle

import "math"

// runDimensionCycling implements spec.md §4.3's dimension-cycling method:
// optimize one free parameter at a time (a bounded golden-section search
// on that coordinate, all others held fixed at their current value),
// cycling through every coordinate, until a full sweep's log-likelihood
// change falls below cfg.DimCycleTol.
func runDimensionCycling(sh *shell, x0 []float64, cfg *Settings) ([]float64, byte, error) {
	n := len(x0)
	x := append([]float64(nil), x0...)
	prevE := sh.objective(x)

	for sweep := 0; sweep < cfg.MaxIterations; sweep++ {
		for i := 0; i < n; i++ {
			x[i] = golden1D(sh, x, i, cfg)
		}
		e := sh.objective(x)
		if math.Abs(prevE-e) <= cfg.DimCycleTol {
			return x, StatusOK, nil
		}
		prevE = e
	}
	return x, StatusMaxIter, nil
}

// golden1D performs a bounded golden-section search on coordinate i of x,
// holding every other coordinate fixed, and returns the minimizing value.
func golden1D(sh *shell, x []float64, i int, cfg *Settings) float64 {
	const phi = 0.6180339887498949
	orig := x[i]
	span := math.Max(math.Abs(orig), 1.0) * 10
	a, b := orig-span, orig+span

	eval := func(v float64) float64 {
		x[i] = v
		return sh.objective(x)
	}

	c := b - phi*(b-a)
	d := a + phi*(b-a)
	fc, fd := eval(c), eval(d)
	for iter := 0; iter < 100 && (b-a) > cfg.Tolerance; iter++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - phi*(b-a)
			fc = eval(c)
		} else {
			a, c, fc = c, d, fd
			d = a + phi*(b-a)
			fd = eval(d)
		}
	}
	x[i] = orig
	return (a + b) / 2
}
