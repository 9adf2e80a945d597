// Package model implements the statistical model abstraction: a
// parameter/info pair of datasets, a settings registry, and a set of
// optional method hooks (estimate, p, log-likelihood, cdf, draw,
// constraint, score, prep) that drivers in mle, mcmc, arms, rake and bayes
// dispatch through. A VTable lets a caller register specialized
// implementations of print/predict/score/entropy/Bayesian-update for a
// specific model identity, falling back to a package-wide default.
package model
