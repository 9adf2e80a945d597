// Package mcmc implements the Metropolis-Hastings sampler of spec.md
// §4.4: block-partitioned proposals (all-at-once, by-page, or by-item),
// isotropic adaptive-covariance scaling, burn-in discard, and a PMF
// output model whose Draw method continues the chain.
package mcmc
