package arms

import "errors"

var (
	// ErrNoLikelihood is returned when the target model has neither P nor
	// LogLikelihood set.
	ErrNoLikelihood = errors.New("arms: target model has neither p nor log_likelihood")

	// ErrTooFewInitial is returned when fewer than 3 initial abscissae are
	// given; the envelope needs at least a left, middle, and right point.
	ErrTooFewInitial = errors.New("arms: need at least 3 initial abscissae")

	// ErrUnordered is returned when the initial abscissae are not
	// strictly increasing.
	ErrUnordered = errors.New("arms: initial abscissae must be strictly increasing")

	// ErrOutOfBounds is returned when an initial abscissa falls outside
	// [xl, xr].
	ErrOutOfBounds = errors.New("arms: initial abscissae must lie within [xl, xr]")

	// ErrNegativeConvexity is returned for a negative convexity
	// adjustment, which the envelope construction cannot use.
	ErrNegativeConvexity = errors.New("arms: convexity parameter must be non-negative")

	// ErrConvexity is returned when the envelope construction finds a
	// violation of log-concavity and Metropolis correction is disabled.
	ErrConvexity = errors.New("arms: envelope violates log-concavity and metropolis is disabled")
)

// StatusConvexity is the model.Error-style status byte a caller may use
// to record an ErrConvexity failure on an output model.
const StatusConvexity = 'x'
