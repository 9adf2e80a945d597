package dataset

import "errors"

// Status codes mirror spec.md §7's single-character error taxonomy. A zero
// value (StatusClean) means no error has been recorded on the Dataset.
const (
	StatusClean           = 0
	StatusAlloc           = 'a'
	StatusDimension       = 'd'
	StatusMissingPart     = 'p'
	StatusMissingSettings = 's'
	StatusCycle           = 'c'
	StatusInput           = 'i'
)

var (
	// ErrDimension indicates shapes don't line up (copy, stack, pack, split).
	ErrDimension = errors.New("dataset: dimension mismatch")

	// ErrMissingPart indicates an operation wanted a part (matrix, vector,
	// weights, text) that is nil.
	ErrMissingPart = errors.New("dataset: required part is missing")

	// ErrCycle indicates the `more` page chain contains a cycle.
	ErrCycle = errors.New("dataset: cyclic page chain")

	// ErrInput indicates a nonsensical caller argument (bad axis, negative
	// index, mismatched mask length).
	ErrInput = errors.New("dataset: invalid input")

	// ErrOutOfBounds is returned by Set on an out-of-range (row, col); Get
	// instead returns NaN per spec.md §3.1, since it must never fail loudly.
	ErrOutOfBounds = errors.New("dataset: index out of bounds")
)
