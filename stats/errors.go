package stats

import "errors"

// ErrEmptySample is returned when a moment or percentile is requested
// over zero observations.
var ErrEmptySample = errors.New("stats: empty sample")

// ErrWeightMismatch is returned when a weight vector's length does not
// match the sample it weights.
var ErrWeightMismatch = errors.New("stats: weight vector length mismatch")
