package bayes

import (
	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/mcmc"
	"github.com/halvard/apostat/model"
)

// mcmcFallback runs mcmc.Run over a composed target whose log-likelihood
// is the sum of prior's and likelihood's, starting from prior's current
// parameter point, and returns the resulting PMF model of accepted
// samples (spec.md §4.7's fallback path).
func mcmcFallback(data *dataset.Dataset, prior, likelihood *model.Model, rng *rand.Rand, cfg *mcmc.Settings) (*model.Model, error) {
	if prior.Parameters == nil {
		return nil, ErrNoPriorParameters
	}

	target := model.New(prior.Name + "-" + likelihood.Name + " posterior")
	params, err := prior.Parameters.Copy()
	if err != nil {
		return nil, err
	}
	target.Parameters = params
	target.Vsize = len(params.Vector)

	target.LogLikelihood = func(d *dataset.Dataset, m *model.Model) float64 {
		return prior.LogLikelihood(nil, m) + likelihood.LogLikelihood(d, m)
	}
	if prior.Constraint != nil || likelihood.Constraint != nil {
		target.Constraint = func(d *dataset.Dataset, m *model.Model) float64 {
			var penalty float64
			if prior.Constraint != nil {
				penalty += prior.Constraint(nil, m)
			}
			if likelihood.Constraint != nil {
				penalty += likelihood.Constraint(d, m)
			}
			return penalty
		}
	}

	if cfg == nil {
		cfg = mcmc.New()
	}
	if cfg.RNG == nil && rng != nil {
		cloned := *cfg
		cloned.RNG = rng
		cfg = &cloned
	}

	return mcmc.Run(data, target, cfg)
}
