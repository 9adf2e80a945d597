package model

import (
	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/settings"
)

// Model is the statistical model abstraction shared by mle, mcmc, arms,
// rake, bayes and transform. Every method hook is optional; drivers check
// for nil before calling and fall back to numerical substitutes (see
// numeric and mle) or fail with ErrNoLikelihood/ErrNoDraw.
type Model struct {
	Name string

	// Vsize, Msize1, Msize2 describe the expected parameter shape; -1
	// means "same as data width", resolved by Prep.
	Vsize, Msize1, Msize2 int

	// Dsize is the width of one observation produced by Draw; -1 means
	// "same as data width".
	Dsize int

	// Parameters holds the current parameter point. Additional pages
	// carry "<Covariance>" and "<Predicted>" tables once populated by a
	// driver.
	Parameters *dataset.Dataset

	// Info holds diagnostics; mle.Estimate writes its Vector as status,
	// log-likelihood, AIC, BIC by row, BIC by item, evaluation count.
	Info *dataset.Dataset

	// Data points at the data set last used for estimation; may be nil.
	Data *dataset.Dataset

	// More is an opaque extension block, copied byte-for-byte by Copy.
	More []byte

	Settings *settings.Registry

	Error byte

	Estimate      func(d *dataset.Dataset, m *Model) error
	P             func(d *dataset.Dataset, m *Model) float64
	LogLikelihood func(d *dataset.Dataset, m *Model) float64
	CDF           func(d *dataset.Dataset, m *Model) float64
	Draw          func(out []float64, rng *rand.Rand, m *Model) error
	Constraint    func(d *dataset.Dataset, m *Model) float64
	Score         func(d *dataset.Dataset, m *Model) []float64

	// PrepHook, when set, replaces the default Prep behavior entirely.
	PrepHook func(d *dataset.Dataset, m *Model) error
}

// New returns an empty model with Vsize/Msize1/Msize2/Dsize all set to the
// "same as data width" sentinel and an empty settings registry.
func New(name string) *Model {
	return &Model{
		Name:     name,
		Vsize:    -1,
		Msize1:   -1,
		Msize2:   -1,
		Dsize:    -1,
		Settings: settings.New(),
	}
}

// HasLikelihood reports whether either P or LogLikelihood is set, the
// minimum requirement most drivers need.
func (m *Model) HasLikelihood() bool {
	return m.P != nil || m.LogLikelihood != nil
}

// Copy deep-copies parameters, info, the more block, and every settings
// group (via each group's own Clone). Method hooks are shared (function
// values, not cloned state), matching the teacher's shallow-copy-of-
// behavior/deep-copy-of-data split for reusable components.
func (m *Model) Copy() (*Model, error) {
	cp := *m
	if m.Parameters != nil {
		p, err := m.Parameters.Copy()
		if err != nil {
			return nil, err
		}
		cp.Parameters = p
	}
	if m.Info != nil {
		info, err := m.Info.Copy()
		if err != nil {
			return nil, err
		}
		cp.Info = info
	}
	if m.More != nil {
		cp.More = append([]byte(nil), m.More...)
	}
	if m.Settings != nil {
		cp.Settings = m.Settings.Clone()
	}
	return &cp, nil
}

// Prep allocates Parameters and Info from data's width, resolving any -1
// shape sentinels, unless m.PrepHook is set, in which case that hook runs
// instead. Prep is idempotent: it leaves already-allocated Parameters/Info
// alone.
func (m *Model) Prep(d *dataset.Dataset) error {
	if m.PrepHook != nil {
		return m.PrepHook(d, m)
	}
	return m.defaultPrep(d)
}
