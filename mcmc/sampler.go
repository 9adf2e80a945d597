package mcmc

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
)

// Sampler holds the running state of a Metropolis-Hastings chain: the
// target model, the current packed point, the last evaluated
// log-likelihood, the per-block proposals, the accepted-sample buffer,
// a period counter, and the RNG (spec.md §4.4's "State" list).
type Sampler struct {
	Target  *model.Model
	Data    *dataset.Dataset
	Current []float64
	LastLL  float64

	blocks []*block
	cfg    *Settings
	rng    *rand.Rand

	Buffer        [][]float64
	Period        int
	ConstraintFail int
}

// NewSampler builds a Sampler for target over data, starting at target's
// current parameter point.
func NewSampler(data *dataset.Dataset, target *model.Model, cfg *Settings) (*Sampler, error) {
	if !target.HasLikelihood() {
		return nil, ErrNoLikelihood
	}
	if err := target.Prep(data); err != nil {
		return nil, err
	}

	x0 := dataset.Pack(target.Parameters, false)
	matLen := 0
	if target.Parameters.Matrix != nil {
		matLen = target.Parameters.Matrix.Rows() * target.Parameters.Matrix.Cols()
	}
	blocks := partition(cfg.ChunkMode, len(target.Parameters.Vector), matLen, len(target.Parameters.Weights))

	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &Sampler{
		Target:  target,
		Data:    data,
		Current: x0,
		blocks:  blocks,
		cfg:     cfg,
		rng:     rng,
	}
	s.LastLL = s.evaluate(s.Current)
	return s, nil
}

func (s *Sampler) evaluate(x []float64) float64 {
	if err := dataset.Unpack(x, s.Target.Parameters, false); err != nil {
		return math.NaN()
	}
	if s.Target.LogLikelihood != nil {
		return s.Target.LogLikelihood(s.Data, s.Target)
	}
	return math.Log(s.Target.P(s.Data, s.Target))
}

// Step advances the chain by one pass over every block, per spec.md
// §4.4's "one step (per block)" procedure.
func (s *Sampler) Step() {
	for _, b := range s.blocks {
		s.stepBlock(b)
	}
}

func (s *Sampler) stepBlock(b *block) {
	for try := 0; try < s.cfg.MaxConstraintFail; try++ {
		cand := append([]float64(nil), s.Current...)
		for _, idx := range b.indices {
			cand[idx] += b.scale * s.rng.NormFloat64()
		}

		rejected := false
		if err := dataset.Unpack(cand, s.Target.Parameters, false); err != nil {
			rejected = true
		} else if s.Target.Constraint != nil {
			if penalty := s.Target.Constraint(s.Data, s.Target); penalty > 0 {
				rejected = true
			}
		}
		if rejected {
			s.ConstraintFail++
			continue
		}

		ll := s.evaluate(cand)
		if math.IsNaN(ll) || math.IsInf(ll, 0) {
			s.ConstraintFail++
			continue
		}
		s.ConstraintFail = 0

		b.attempts++
		ratio := ll - s.LastLL
		if ratio >= 0 || math.Log(s.rng.Float64()) < ratio {
			s.Current = cand
			s.LastLL = ll
			b.accepts++
		} else {
			_ = dataset.Unpack(s.Current, s.Target.Parameters, false)
		}
		b.adapt(s.cfg.TargetAcceptRate, s.cfg.AdaptDamping)
		return
	}
}
