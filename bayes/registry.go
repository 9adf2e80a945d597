package bayes

import (
	"math"
	"strings"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/mcmc"
	"github.com/halvard/apostat/model"
)

// updater computes a closed-form posterior model from a prior, a
// likelihood (used only to identify the observation model; its own
// parameters are not otherwise consulted), and the observed data.
type updater func(data *dataset.Dataset, prior *model.Model) (*model.Model, error)

// registry is keyed by (prior family, likelihood family), both taken
// case-insensitively from model.Model.Name, per spec.md §4.7's "registry
// keyed by the (prior-family, likelihood-family) pair."
var registry = map[[2]string]updater{
	{"beta", "binomial"}:  betaBinomial,
	{"beta", "bernoulli"}: betaBernoulli,
	{"gamma", "exponential"}: gammaExponential,
	{"gamma", "poisson"}:     gammaPoisson,
	{"normal", "normal"}:     normalKnownVariance,
}

func family(name string) string {
	return strings.ToLower(name)
}

// Update returns the posterior of prior given data observed under
// likelihood. When the (prior, likelihood) family pair has a closed-form
// updater registered, it is used directly; otherwise Update runs MCMC
// (spec.md §4.7's fallback) using prior's parameters as the starting
// point and the likelihood evaluated on data, collecting accepted
// samples into a PMF model. rng seeds the MCMC fallback only; it is
// ignored for closed-form updates.
func Update(data *dataset.Dataset, prior, likelihood *model.Model, rng *rand.Rand, cfg *mcmc.Settings) (*model.Model, error) {
	if up, ok := registry[[2]string{family(prior.Name), family(likelihood.Name)}]; ok {
		return up(data, prior)
	}
	return mcmcFallback(data, prior, likelihood, rng, cfg)
}

// betaBinomial updates a Beta(alpha, beta) prior against a single
// observed (successes, trials) pair: posterior is
// Beta(alpha+successes, beta+trials-successes).
func betaBinomial(data *dataset.Dataset, prior *model.Model) (*model.Model, error) {
	alpha, beta, err := betaParams(prior)
	if err != nil {
		return nil, err
	}
	if len(data.Vector) < 2 {
		return nil, ErrEmptyData
	}
	k, n := data.Vector[0], data.Vector[1]
	return betaPosterior(alpha+k, beta+(n-k)), nil
}

// betaBernoulli updates a Beta(alpha, beta) prior against a vector of
// 0/1 Bernoulli outcomes: posterior is Beta(alpha+k, beta+n-k) where k
// is the number of successes and n the number of trials.
func betaBernoulli(data *dataset.Dataset, prior *model.Model) (*model.Model, error) {
	alpha, beta, err := betaParams(prior)
	if err != nil {
		return nil, err
	}
	if len(data.Vector) == 0 {
		return nil, ErrEmptyData
	}
	var k float64
	for _, v := range data.Vector {
		k += v
	}
	n := float64(len(data.Vector))
	return betaPosterior(alpha+k, beta+(n-k)), nil
}

// gammaExponential updates a Gamma(alpha, beta) prior (rate
// parameterization) against observations drawn from an Exponential
// likelihood: posterior is Gamma(alpha+n, beta+sum(x)).
func gammaExponential(data *dataset.Dataset, prior *model.Model) (*model.Model, error) {
	alpha, beta, err := gammaParams(prior)
	if err != nil {
		return nil, err
	}
	if len(data.Vector) == 0 {
		return nil, ErrEmptyData
	}
	var sum float64
	for _, v := range data.Vector {
		sum += v
	}
	n := float64(len(data.Vector))
	return gammaPosterior(alpha+n, beta+sum), nil
}

// gammaPoisson updates a Gamma(alpha, beta) prior against observed
// Poisson counts: posterior is Gamma(alpha+sum(x), beta+n).
func gammaPoisson(data *dataset.Dataset, prior *model.Model) (*model.Model, error) {
	alpha, beta, err := gammaParams(prior)
	if err != nil {
		return nil, err
	}
	if len(data.Vector) == 0 {
		return nil, ErrEmptyData
	}
	var sum float64
	for _, v := range data.Vector {
		sum += v
	}
	n := float64(len(data.Vector))
	return gammaPosterior(alpha+sum, beta+n), nil
}

// normalKnownVariance updates a Normal(mu0, sigma0) prior against
// observations with known observation variance sigma^2 (a third prior
// parameter, if present, overrides the default sigma of 1 via
// normalSigma). The posterior precision is 1/sigma0^2 + n/sigma^2.
func normalKnownVariance(data *dataset.Dataset, prior *model.Model) (*model.Model, error) {
	mu0, sigma0, err := normalParams(prior)
	if err != nil {
		return nil, err
	}
	if len(data.Vector) == 0 {
		return nil, ErrEmptyData
	}
	sigma := normalSigma(prior)

	var sum float64
	for _, v := range data.Vector {
		sum += v
	}
	n := float64(len(data.Vector))
	xbar := sum / n

	priorPrec := 1 / (sigma0 * sigma0)
	obsPrec := n / (sigma * sigma)
	postPrec := priorPrec + obsPrec
	postMean := (priorPrec*mu0 + obsPrec*xbar) / postPrec
	postSigma := math.Sqrt(1 / postPrec)

	return normalPosterior(postMean, postSigma), nil
}

func betaParams(prior *model.Model) (alpha, beta float64, err error) {
	if prior.Parameters == nil || len(prior.Parameters.Vector) < 2 {
		return 0, 0, ErrNoPriorParameters
	}
	return prior.Parameters.Vector[0], prior.Parameters.Vector[1], nil
}

func gammaParams(prior *model.Model) (alpha, beta float64, err error) {
	return betaParams(prior)
}

func normalParams(prior *model.Model) (mu, sigma float64, err error) {
	return betaParams(prior)
}

// normalSigma reads the known observation standard deviation from
// prior.Parameters.Vector[2] if present, defaulting to 1.
func normalSigma(prior *model.Model) float64 {
	if len(prior.Parameters.Vector) > 2 {
		return prior.Parameters.Vector[2]
	}
	return 1
}

func betaPosterior(alpha, beta float64) *model.Model {
	m := model.New("beta")
	m.Parameters = dataset.New("beta posterior")
	m.Parameters.Vector = []float64{alpha, beta}
	m.LogLikelihood = func(d *dataset.Dataset, m *model.Model) float64 {
		dist := distuv.Beta{Alpha: m.Parameters.Vector[0], Beta: m.Parameters.Vector[1]}
		return dist.LogProb(d.Vector[0])
	}
	return m
}

func gammaPosterior(alpha, beta float64) *model.Model {
	m := model.New("gamma")
	m.Parameters = dataset.New("gamma posterior")
	m.Parameters.Vector = []float64{alpha, beta}
	m.LogLikelihood = func(d *dataset.Dataset, m *model.Model) float64 {
		dist := distuv.Gamma{Alpha: m.Parameters.Vector[0], Beta: m.Parameters.Vector[1]}
		return dist.LogProb(d.Vector[0])
	}
	return m
}

func normalPosterior(mu, sigma float64) *model.Model {
	m := model.New("normal")
	m.Parameters = dataset.New("normal posterior")
	m.Parameters.Vector = []float64{mu, sigma}
	m.LogLikelihood = func(d *dataset.Dataset, m *model.Model) float64 {
		dist := distuv.Normal{Mu: m.Parameters.Vector[0], Sigma: m.Parameters.Vector[1]}
		return dist.LogProb(d.Vector[0])
	}
	return m
}
