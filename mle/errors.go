package mle

import "errors"

// Status codes mirror spec.md §3.3's model error taxonomy, the values
// mle.Estimate writes into m.Info on failure or interrupt.
const (
	StatusOK           = 0
	StatusNonFinite    = 'n'
	StatusInterrupted  = 'x'
	StatusNoLikelihood = 'l'
	StatusMaxIter      = 'm'
)

var (
	// ErrNoLikelihood is returned when neither P nor LogLikelihood is set
	// on the model being estimated.
	ErrNoLikelihood = errors.New("mle: model has neither p nor log_likelihood")

	// ErrNonFinite is the non-local escape used when the shell objective
	// evaluates to NaN or +-Inf; the driver's top-level handler converts
	// it into a StatusNonFinite result instead of propagating a panic
	// across the optimizer.
	ErrNonFinite = errors.New("mle: objective evaluated to a non-finite value")

	// ErrInterrupted is returned when SIGINT aborts estimation.
	ErrInterrupted = errors.New("mle: estimation interrupted")

	// ErrUnknownMethod is returned for a Method value outside the known set.
	ErrUnknownMethod = errors.New("mle: unknown method")
)
