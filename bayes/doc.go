// Package bayes dispatches a Bayesian update of a prior model against
// observed data: a closed-form posterior when the (prior, likelihood)
// family pair is registered, otherwise a Markov-chain Monte Carlo
// fallback built on the mcmc package.
package bayes
