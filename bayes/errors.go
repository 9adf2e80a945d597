package bayes

import "errors"

// ErrNoPriorParameters is returned when the prior model has no
// Parameters vector for a closed-form updater to read.
var ErrNoPriorParameters = errors.New("bayes: prior model has no parameters")

// ErrEmptyData is returned when the likelihood has no observations to
// update against.
var ErrEmptyData = errors.New("bayes: no observations in data")
