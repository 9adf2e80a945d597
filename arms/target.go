package arms

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
)

// FromModel returns a Func that embeds x as the sole element of a
// one-row dataset and evaluates target's log-likelihood (spec.md §4.5's
// "target" construction: "a univariate log-density h(x) = log p(x)
// implied by embedding a scalar x as the sole element of a one-row data
// set").
func FromModel(target *model.Model) (Func, error) {
	if !target.HasLikelihood() {
		return nil, ErrNoLikelihood
	}
	d := dataset.New(target.Name + " arms")
	return func(x float64) float64 {
		d.Vector = []float64{x}
		if target.LogLikelihood != nil {
			return target.LogLikelihood(d, target)
		}
		return math.Log(target.P(d, target))
	}, nil
}

// Sampler bundles an envelope with the RNG and rejection budget needed
// to draw repeated samples from a univariate target.
type Sampler struct {
	Env *Envelope

	rng *rand.Rand
	cfg *Settings
}

// NewSampler builds an envelope for target and wires up the Metropolis
// fallback's starting iterate at the midpoint of the initial abscissae,
// per apop_arms.c's Apop_settings_init default for xprev.
func NewSampler(target *model.Model, cfg *Settings) (*Sampler, error) {
	if cfg == nil {
		cfg = New()
	}
	h, err := FromModel(target)
	if err != nil {
		return nil, err
	}
	env, err := NewEnvelope(h, cfg.Xl, cfg.Xr, cfg.Initial, cfg.NPoint, cfg.Convexity, cfg.DoMetropolis)
	if err != nil {
		return nil, err
	}

	mid := (cfg.Initial[0] + cfg.Initial[len(cfg.Initial)-1]) / 2
	env.metroX = mid
	env.metroY = h(mid)
	env.evals++

	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Sampler{Env: env, rng: rng, cfg: cfg}, nil
}

// Draw samples one value from the target, per Envelope.Draw.
func (s *Sampler) Draw() (float64, error) {
	return s.Env.Draw(s.rng, s.cfg.MaxRejections)
}

// Evaluations returns the number of target log-density evaluations made
// so far.
func (s *Sampler) Evaluations() int { return s.Env.Evaluations() }
