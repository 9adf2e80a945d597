// Package optio holds the process-wide options record: verbosity, the
// input/output delimiter set, the NaN sentinel string, an RNG seed counter,
// the worker thread count, and the stop-on-warning flag.
//
// The record is read-mostly. It is meant to be set once at program start via
// Init and read everywhere else via Get; mutating it mid-run is not
// supported and Init enforces that by panicking on a second call.
package optio
