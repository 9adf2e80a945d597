package model

import "errors"

// Status codes mirror spec.md §3.3's single-character model error taxonomy.
const (
	StatusClean           = 0
	StatusAlloc           = 'a'
	StatusDimension       = 'd'
	StatusMissingPart     = 'p'
	StatusMissingSettings = 's'
	StatusBadInput        = 'i'
	StatusCycle           = 'c'
)

var (
	// ErrNoLikelihood is returned by drivers that need either P or
	// LogLikelihood and find neither set.
	ErrNoLikelihood = errors.New("model: neither p nor log_likelihood is set")

	// ErrNotPrepped is returned when an operation needs Parameters/Info
	// allocated and Prep was never called.
	ErrNotPrepped = errors.New("model: parameters not allocated; call Prep first")

	// ErrNoDraw is returned when Draw is requested but unset.
	ErrNoDraw = errors.New("model: draw method not set")

	// ErrMissingSettings is returned when a driver looks up a settings
	// group by name and finds none registered.
	ErrMissingSettings = errors.New("model: required settings group missing")
)
