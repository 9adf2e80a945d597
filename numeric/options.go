package numeric

import "math"

// DefaultDelta is the default central-difference step, matching spec.md
// §4.3's gradient-contract default.
const DefaultDelta = 1e-3

// Options controls the differentiation step and accuracy mode.
type Options struct {
	delta        float64
	highAccuracy bool
}

// Option configures a Gradient/Hessian call.
type Option func(*Options)

// WithDelta overrides the central-difference step size. Panics if delta
// is non-positive or non-finite.
func WithDelta(delta float64) Option {
	if delta <= 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		panic("numeric: WithDelta requires a positive step")
	}
	return func(o *Options) { o.delta = delta }
}

// WithHighAccuracy enables Richardson-extrapolation step-doubling: the
// derivative is computed at delta and delta/2, then combined as
// (4*D(delta/2) - D(delta)) / 3 to cancel the leading error term. This is
// the ambient addition from SPEC_FULL.md §4, grounded in
// original_source/apop_mle.m4.c's numerical-derivative routine (which
// already halves the step and compares).
func WithHighAccuracy() Option {
	return func(o *Options) { o.highAccuracy = true }
}

func gatherOptions(opts []Option) Options {
	o := Options{delta: DefaultDelta}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
