package numeric

// Func is a scalar function of a packed parameter vector, the shape every
// mle/bayes objective and log-likelihood is expressed in.
type Func func(x []float64) float64

// Gradient computes the central-difference gradient of f at x, one scalar
// perturbation per coordinate: g[i] = (f(x+h*e_i) - f(x-h*e_i)) / (2h).
// With WithHighAccuracy, each component is instead computed at h and h/2
// and Richardson-extrapolated.
func Gradient(f Func, x []float64, opts ...Option) []float64 {
	o := gatherOptions(opts)
	if o.highAccuracy {
		return richardsonGradient(f, x, o.delta)
	}
	return centralGradient(f, x, o.delta)
}

func centralGradient(f Func, x []float64, h float64) []float64 {
	n := len(x)
	g := make([]float64, n)
	xp := append([]float64(nil), x...)
	xm := append([]float64(nil), x...)
	for i := 0; i < n; i++ {
		xp[i] = x[i] + h
		xm[i] = x[i] - h
		g[i] = (f(xp) - f(xm)) / (2 * h)
		xp[i] = x[i]
		xm[i] = x[i]
	}
	return g
}

func richardsonGradient(f Func, x []float64, h float64) []float64 {
	coarse := centralGradient(f, x, h)
	fine := centralGradient(f, x, h/2)
	g := make([]float64, len(x))
	for i := range g {
		g[i] = (4*fine[i] - coarse[i]) / 3
	}
	return g
}
