package transform

import (
	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/settings"
)

// CompositionSettings holds the prior and likelihood base models and the
// RNG used to draw from prior.
type CompositionSettings struct {
	Prior      *model.Model
	Likelihood *model.Model
	RNG        *rand.Rand
}

func (s *CompositionSettings) Name() string { return "composition" }

func (s *CompositionSettings) Clone() settings.Group {
	cp := *s
	return &cp
}

// Composition returns a transformer whose log-likelihood draws a
// parameter point from prior and evaluates likelihood's log-likelihood
// treating that draw as likelihood's observed data — "effectively
// evaluates log p_likelihood(draws_from_prior)" (spec.md §4.8's
// "Composition (data-composition)"), used for posterior-predictive-style
// constructions.
func Composition(prior, likelihood *model.Model, rng *rand.Rand) (*model.Model, error) {
	if prior == nil || likelihood == nil {
		return nil, ErrNoBase
	}

	m := model.New(prior.Name + "+" + likelihood.Name + " composition")
	m.Parameters = prior.Parameters
	m.Settings.Set(&CompositionSettings{Prior: prior, Likelihood: likelihood, RNG: rng})

	m.LogLikelihood = func(d *dataset.Dataset, mm *model.Model) float64 {
		prior.Parameters = mm.Parameters
		dsize := prior.Dsize
		if dsize <= 0 {
			dsize = 1
		}
		draw := make([]float64, dsize)
		if err := prior.Draw(draw, rng, prior); err != nil {
			return 0
		}
		return likelihood.LogLikelihood(oneRowDataset(draw), likelihood)
	}

	return m, nil
}
