package matrix

import "fmt"

// wrapErr attaches an operation tag to err, e.g. wrapErr("Add", ErrNilMatrix)
// produces "Add: matrix: nil receiver". Every exported kernel in this
// package funnels its error returns through here (and through
// wrapIndexErr for element-indexed failures) so the tag-then-colon shape
// stays uniform regardless of which file the kernel lives in.
func wrapErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// wrapIndexErr attaches an operation tag and a (row, col) pair to err, for
// failures that name a specific offending element.
func wrapIndexErr(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}
