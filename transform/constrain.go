package transform

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/settings"
)

// DefaultMonteCarloDraws is the draw count used to estimate S when no
// closed-form mass is supplied, per spec.md §4.8's "default draw_ct =
// 1e4".
const DefaultMonteCarloDraws = 10000

// RegionPredicate reports whether observation x lies inside the
// constrained support region.
type RegionPredicate func(x []float64) bool

// ConstrainSettings holds the base model, the region predicate, an
// optional precomputed mass S, and the RNG used for S's Monte Carlo
// estimate (spec.md's Open Question 3: the RNG is a required parameter,
// not a silently-defaulted fresh source, so the estimate is reproducible
// by construction).
type ConstrainSettings struct {
	Base     *model.Model
	Region   RegionPredicate
	Mass     float64 // 0 means "not yet estimated"
	DrawCt   int
	RNG      *rand.Rand
}

func (s *ConstrainSettings) Name() string { return "constrain" }

func (s *ConstrainSettings) Clone() settings.Group {
	cp := *s
	return &cp
}

// Constrain returns a transformer restricting base's support to region.
// If mass is positive it is used directly as S; otherwise S is estimated
// by rejection sampling from base using rng and drawCt draws (drawCt <= 0
// defaults to DefaultMonteCarloDraws). rng is required when mass <= 0,
// per Open Question 3 (spec.md §9).
func Constrain(base *model.Model, region RegionPredicate, mass float64, drawCt int, rng *rand.Rand) (*model.Model, error) {
	if base == nil {
		return nil, ErrNoBase
	}
	if drawCt <= 0 {
		drawCt = DefaultMonteCarloDraws
	}

	cfg := &ConstrainSettings{Base: base, Region: region, Mass: mass, DrawCt: drawCt, RNG: rng}

	m := model.New(base.Name + " constrained")
	m.Parameters = base.Parameters
	m.Settings.Set(cfg)

	m.LogLikelihood = func(d *dataset.Dataset, mm *model.Model) float64 {
		for i := 0; i < numRows(d); i++ {
			if !region(rowAt(d, i)) {
				return math.Inf(-1)
			}
		}
		s := cfg.Mass
		if s <= 0 {
			s = estimateMass(base, region, cfg.DrawCt, cfg.RNG)
			cfg.Mass = s
		}
		baseLL := 0.0
		if base.LogLikelihood != nil {
			baseLL = base.LogLikelihood(d, base)
		} else {
			baseLL = math.Log(base.P(d, base))
		}
		n := float64(numRows(d))
		return baseLL - n*math.Log(s)
	}

	if base.Draw != nil {
		m.Draw = func(out []float64, rng *rand.Rand, mm *model.Model) error {
			for {
				if err := base.Draw(out, rng, base); err != nil {
					return err
				}
				if region(append([]float64(nil), out...)) {
					return nil
				}
			}
		}
	}

	return m, nil
}

// estimateMass draws drawCt samples from base and returns the fraction
// landing inside region, base's probability mass over that region
// (spec.md §4.8's "S is ... estimated by Monte Carlo").
func estimateMass(base *model.Model, region RegionPredicate, drawCt int, rng *rand.Rand) float64 {
	if base.Draw == nil {
		return 1
	}
	inside := 0
	dsize := base.Dsize
	if dsize <= 0 {
		dsize = 1
	}
	out := make([]float64, dsize)
	for i := 0; i < drawCt; i++ {
		if err := base.Draw(out, rng, base); err != nil {
			continue
		}
		if region(append([]float64(nil), out...)) {
			inside++
		}
	}
	if drawCt == 0 {
		return 1
	}
	return float64(inside) / float64(drawCt)
}
