// Package mle implements the maximum-likelihood estimation driver:
// spec.md §4.3's negated-shell minimization contract, its numerical/
// analytic gradient contract, five method families (conjugate gradient,
// simplex, simulated annealing, Newton root-finder, dimension cycling),
// SIGINT abort, trace files, and restart semantics.
package mle
