// Package apostat is a statistical modeling toolkit: a tabular data
// container, a model abstraction with a settings registry and method
// dispatch, an MLE driver, a Metropolis-Hastings MCMC sampler, an adaptive
// rejection sampler, an iterative-proportional-fitting engine for
// contingency tables, a conjugate Bayesian update dispatcher, and composable
// model transformers.
//
// Everything is organized under subpackages:
//
//	matrix/    — dense numeric storage and linear-algebra kernels
//	dataset/   — tabular container (numeric/text/weights/names) plus pages
//	settings/  — per-model configuration group registry
//	model/     — model object, method-dispatch vtables, transformer wrapping
//	numeric/   — numerical gradient/Hessian via finite differences
//	mle/       — maximum-likelihood driver (CG, simplex, annealing, root-find)
//	mcmc/      — Metropolis-Hastings sampler with block-Gibbs partitioning
//	arms/      — adaptive rejection Metropolis sampling for univariate draws
//	rake/      — iterative proportional fitting over sparse contingency tables
//	bayes/     — closed-form conjugate updates with MCMC fallback
//	transform/ — fix-params, coordinate-transform, composition, mixture, etc.
//	stats/     — weighted moments, percentiles, entropy, KL divergence
//	naming/    — ordered name lists with case-insensitive lookup
//	optio/     — process-wide options (verbosity, delimiters, RNG seed)
//
// This is an in-memory, single-process library: no SQL/text ingest, no
// plotting, no distributed or GPU-backed estimation.
package apostat
