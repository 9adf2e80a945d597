package rake

import "github.com/halvard/apostat/settings"

// Default tuning constants. The convergence metric (max |obs - fit|
// over the last-seen margin, not a running average) comes from
// original_source/apop_rake.c's scaling() and the c_loglin() caller,
// since spec.md is silent on exact constants. DefaultNudge is 0, so zero
// cells are not nudged unless WithNudge sets a positive value.
const (
	DefaultMaxIterations = 1000
	DefaultTolerance      = 1e-5
	DefaultNudge          = 0.0
)

// Settings controls raking's termination and zero-cell handling.
type Settings struct {
	MaxIterations int
	Tolerance     float64
	Nudge         float64
}

// Name implements settings.Group.
func (s *Settings) Name() string { return "rake" }

// Clone implements settings.Group.
func (s *Settings) Clone() settings.Group {
	cp := *s
	return &cp
}

// New returns a Settings group at its documented defaults, with any
// overrides applied via functional options.
func New(opts ...Option) *Settings {
	s := &Settings{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Nudge:         DefaultNudge,
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Option configures a Settings group.
type Option func(*Settings)

// WithMaxIterations overrides the iteration budget.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("rake: WithMaxIterations requires a positive count")
	}
	return func(s *Settings) { s.MaxIterations = n }
}

// WithTolerance overrides the convergence tolerance.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("rake: WithTolerance requires a positive value")
	}
	return func(s *Settings) { s.Tolerance = tol }
}

// WithNudge overrides the additive nudge applied to zero-estimate cells
// after the preliminary scaling pass, so they are not permanently stuck
// at zero. Zero disables nudging.
func WithNudge(n float64) Option {
	if n < 0 {
		panic("rake: WithNudge requires a non-negative value")
	}
	return func(s *Settings) { s.Nudge = n }
}
