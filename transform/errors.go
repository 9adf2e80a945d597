package transform

import "errors"

var (
	// ErrNoBase is returned when a transformer is built without the base
	// model(s) it wraps.
	ErrNoBase = errors.New("transform: no base model given")

	// ErrNoFreeParameters is returned when a fixed-parameter template
	// leaves no position free.
	ErrNoFreeParameters = errors.New("transform: fix-params template has no free positions")

	// ErrNoJacobian is returned when a coordinate transform is built
	// without a jacobian function; numerical jacobians are not
	// implemented.
	ErrNoJacobian = errors.New("transform: coordinate transform requires an explicit jacobian")

	// ErrNoComponents is returned when a mixture is built with no
	// components.
	ErrNoComponents = errors.New("transform: mixture requires at least one component")

	// ErrWeightMismatch is returned when a mixture's weight count does
	// not match its component count.
	ErrWeightMismatch = errors.New("transform: mixture weight count does not match component count")
)
