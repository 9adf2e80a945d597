package naming

import "errors"

var (
	// ErrNotFound names a missing-name condition; the package's index
	// lookups report a miss as -1 and do not return this error.
	ErrNotFound = errors.New("naming: name not found")

	// ErrLengthMismatch is returned when a permutation does not match the
	// length of the list it is applied to.
	ErrLengthMismatch = errors.New("naming: permutation length mismatch")
)
