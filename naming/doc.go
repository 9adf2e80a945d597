// Package naming provides the name object attached to a dataset: an
// ordered title, an optional vector name, and ordered row/column/text-column
// name lists, all with case-insensitive lookup.
//
// Names are append-only in normal use; Clear resets a single list when a
// caller needs to rebuild it (e.g. after a column drop).
package naming
