package mcmc

import "errors"

// ErrNoLikelihood is returned when the target model has neither P nor
// LogLikelihood set.
var ErrNoLikelihood = errors.New("mcmc: target model has neither p nor log_likelihood")

// StatusConstraintCascade is the model.Error code written to the output
// PMF model when too many consecutive constraint failures force an early
// stop (spec.md §4.4's "cancellation" rule).
const StatusConstraintCascade = 'c'
