package mcmc

import (
	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/settings"
)

// ChunkMode selects how the packed parameter vector is split into
// independently-proposed blocks.
type ChunkMode int

const (
	// ChunkByPage proposes one block per (vector | matrix | weights)
	// part of the parameters dataset. This is spec.md §4.4's default.
	ChunkByPage ChunkMode = iota
	// ChunkAllAtOnce proposes the whole packed vector as one block.
	ChunkAllAtOnce
	// ChunkByItem proposes one block per scalar parameter.
	ChunkByItem
)

// Default tuning constants, grounded on spec.md §4.4.
const (
	DefaultPeriods           = 10000
	DefaultBurninFraction    = 0.1
	DefaultTargetAcceptRate  = 0.35
	DefaultAdaptDamping      = 0.5
	DefaultMaxConstraintFail = 1000
)

// Settings is the MCMC settings group (spec.md §3.4's "MCMC parameters"
// group family).
type Settings struct {
	Periods           int
	BurninFraction    float64
	TargetAcceptRate  float64
	ChunkMode         ChunkMode
	AdaptDamping      float64
	MaxConstraintFail int
	RNG               *rand.Rand
}

// Name implements settings.Group.
func (s *Settings) Name() string { return "mcmc" }

// Clone implements settings.Group; the RNG pointer is shared, not
// reseeded, matching mle.Settings.Clone's rationale.
func (s *Settings) Clone() settings.Group {
	cp := *s
	return &cp
}

// New returns a Settings group at its documented defaults, with any
// overrides applied via functional options.
func New(opts ...Option) *Settings {
	s := &Settings{
		Periods:           DefaultPeriods,
		BurninFraction:    DefaultBurninFraction,
		TargetAcceptRate:  DefaultTargetAcceptRate,
		ChunkMode:         ChunkByPage,
		AdaptDamping:      DefaultAdaptDamping,
		MaxConstraintFail: DefaultMaxConstraintFail,
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Option configures a Settings group.
type Option func(*Settings)

// WithPeriods overrides the number of MCMC iterations.
func WithPeriods(n int) Option {
	if n <= 0 {
		panic("mcmc: WithPeriods requires a positive count")
	}
	return func(s *Settings) { s.Periods = n }
}

// WithBurninFraction overrides the fraction of periods discarded as
// burn-in. Panics outside [0, 1).
func WithBurninFraction(f float64) Option {
	if f < 0 || f >= 1 {
		panic("mcmc: WithBurninFraction requires a value in [0, 1)")
	}
	return func(s *Settings) { s.BurninFraction = f }
}

// WithTargetAcceptRate overrides the adaptation target.
func WithTargetAcceptRate(r float64) Option {
	if r <= 0 || r >= 1 {
		panic("mcmc: WithTargetAcceptRate requires a value in (0, 1)")
	}
	return func(s *Settings) { s.TargetAcceptRate = r }
}

// WithChunkMode overrides the block-partitioning strategy.
func WithChunkMode(mode ChunkMode) Option {
	return func(s *Settings) { s.ChunkMode = mode }
}

// WithRNG overrides the random source.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Settings) { s.RNG = rng }
}
