package arms

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/settings"
)

// Default tuning constants, grounded on original_source/apop_arms.c's
// Apop_settings_init defaults.
const (
	DefaultNPoint        = 100
	DefaultConvexity     = 0.0
	DefaultMaxRejections = 1000
)

// Settings is the ARMS settings group (spec.md §3.4's "ARMS parameters"
// group family: initial points, bounds, convexity, history buffer,
// do-metropolis flag).
type Settings struct {
	Xl, Xr        float64
	boundsSet     bool
	Initial       []float64
	NPoint        int
	Convexity     float64
	DoMetropolis  bool
	MaxRejections int
	RNG           *rand.Rand
}

// Name implements settings.Group.
func (s *Settings) Name() string { return "arms" }

// Clone implements settings.Group.
func (s *Settings) Clone() settings.Group {
	cp := *s
	cp.Initial = append([]float64(nil), s.Initial...)
	return &cp
}

// New returns a Settings group at its documented defaults, with any
// overrides applied via functional options. Bounds default to the
// same formula as the original's Apop_settings_init: scaled and padded
// around the outermost initial abscissae.
func New(opts ...Option) *Settings {
	s := &Settings{
		Initial:       []float64{-1, 0, 1},
		NPoint:        DefaultNPoint,
		Convexity:     DefaultConvexity,
		DoMetropolis:  true,
		MaxRejections: DefaultMaxRejections,
	}
	for _, apply := range opts {
		apply(s)
	}
	if !s.boundsSet {
		s.Xl, s.Xr = defaultBounds(s.Initial)
	}
	return s
}

func defaultBounds(initial []float64) (xl, xr float64) {
	x0 := initial[0]
	xl = math.Min(x0/10, x0*10) - 0.1
	xn := initial[len(initial)-1]
	xr = math.Max(xn/10, xn*10) + 0.1
	return xl, xr
}

// Option configures a Settings group.
type Option func(*Settings)

// WithBounds overrides the envelope's left and right boundary.
func WithBounds(xl, xr float64) Option {
	if xr <= xl {
		panic("arms: WithBounds requires xr > xl")
	}
	return func(s *Settings) { s.Xl, s.Xr = xl, xr; s.boundsSet = true }
}

// WithInitial overrides the initial density abscissae. Panics unless
// given at least 3 strictly increasing values.
func WithInitial(xs []float64) Option {
	if len(xs) < 3 {
		panic("arms: WithInitial requires at least 3 abscissae")
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			panic("arms: WithInitial requires strictly increasing abscissae")
		}
	}
	return func(s *Settings) { s.Initial = append([]float64(nil), xs...) }
}

// WithNPoint overrides the maximum envelope point count.
func WithNPoint(n int) Option {
	if n < 7 {
		panic("arms: WithNPoint requires room for at least 3 initial points")
	}
	return func(s *Settings) { s.NPoint = n }
}

// WithConvexity overrides the convexity adjustment applied when the
// Metropolis fallback corrects an envelope violation. Panics on a
// negative value, mirroring the original's own assertion.
func WithConvexity(c float64) Option {
	if c < 0 {
		panic("arms: WithConvexity requires a non-negative value")
	}
	return func(s *Settings) { s.Convexity = c }
}

// WithMetropolis toggles the Metropolis fallback for envelope
// violations. Disabling it turns a violation into ErrConvexity.
func WithMetropolis(enabled bool) Option {
	return func(s *Settings) { s.DoMetropolis = enabled }
}

// WithMaxRejections overrides the consecutive-rejection budget before
// Draw warns and returns its last candidate.
func WithMaxRejections(n int) Option {
	if n <= 0 {
		panic("arms: WithMaxRejections requires a positive count")
	}
	return func(s *Settings) { s.MaxRejections = n }
}

// WithRNG overrides the random source.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Settings) { s.RNG = rng }
}
