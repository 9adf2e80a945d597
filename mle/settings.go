package mle

import (
	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/settings"
)

// Method selects which of the five method families Estimate uses.
type Method int

const (
	MethodConjugateGradient Method = iota
	MethodSimplex
	MethodAnnealing
	MethodNewton
	MethodDimensionCycling
)

// Default tuning constants, grounded on spec.md §4.3's gradient/method
// defaults.
const (
	DefaultTolerance       = 1e-5
	DefaultMaxIterations   = 1000
	DefaultDelta           = 1e-3
	DefaultDimCycleTol     = 1e-6
	DefaultAnnealInitialT  = 1.0
	DefaultAnnealMinT      = 1e-5
	DefaultAnnealDamping   = 0.9
	DefaultAnnealTriesPerT = 50
	DefaultAnnealItersT    = 20
	DefaultAnnealStepSize  = 1.0
	DefaultAnnealK         = 1.0
)

// Settings is the MLE settings group attached to a model via its
// settings.Registry (spec.md §3.4's "MLE parameters" group family).
type Settings struct {
	Method        Method
	Tolerance     float64
	MaxIterations int
	Delta         float64
	DimCycleTol   float64

	// TraceFile, when non-empty, receives one "(x, -shell)" line per
	// shell evaluation.
	TraceFile string

	// Annealing schedule, used only when Method == MethodAnnealing.
	AnnealInitialT  float64
	AnnealMinT      float64
	AnnealDamping   float64
	AnnealTriesPerT int
	AnnealItersT    int
	AnnealStepSize  float64
	AnnealK         float64

	RNG *rand.Rand
}

// Name implements settings.Group.
func (s *Settings) Name() string { return "mle" }

// Clone implements settings.Group; the RNG is shared (not reseeded) since
// spec.md's per-copy semantics for RNGs in settings groups is "copy the
// pointer, not the stream" — cloning a stream would make draws diverge
// from the original in ways no caller expects.
func (s *Settings) Clone() settings.Group {
	cp := *s
	return &cp
}

// New returns a Settings group with every field at its documented
// default, applying any overrides via functional options (spec.md §3.4's
// "variadic named defaults" pattern).
func New(opts ...Option) *Settings {
	s := &Settings{
		Method:          MethodConjugateGradient,
		Tolerance:       DefaultTolerance,
		MaxIterations:   DefaultMaxIterations,
		Delta:           DefaultDelta,
		DimCycleTol:     DefaultDimCycleTol,
		AnnealInitialT:  DefaultAnnealInitialT,
		AnnealMinT:      DefaultAnnealMinT,
		AnnealDamping:   DefaultAnnealDamping,
		AnnealTriesPerT: DefaultAnnealTriesPerT,
		AnnealItersT:    DefaultAnnealItersT,
		AnnealStepSize:  DefaultAnnealStepSize,
		AnnealK:         DefaultAnnealK,
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Option configures a Settings group.
type Option func(*Settings)

// WithMethod selects the method family.
func WithMethod(m Method) Option { return func(s *Settings) { s.Method = m } }

// WithTolerance overrides the convergence tolerance. Panics on a
// non-positive value.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("mle: WithTolerance requires a positive tolerance")
	}
	return func(s *Settings) { s.Tolerance = tol }
}

// WithMaxIterations overrides the iteration cap.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("mle: WithMaxIterations requires a positive count")
	}
	return func(s *Settings) { s.MaxIterations = n }
}

// WithDelta overrides the numerical-gradient step size.
func WithDelta(delta float64) Option {
	if delta <= 0 {
		panic("mle: WithDelta requires a positive step")
	}
	return func(s *Settings) { s.Delta = delta }
}

// WithTraceFile sets the trace output path.
func WithTraceFile(path string) Option {
	return func(s *Settings) { s.TraceFile = path }
}

// WithRNG overrides the random source (used by the annealing method).
func WithRNG(rng *rand.Rand) Option {
	return func(s *Settings) { s.RNG = rng }
}
