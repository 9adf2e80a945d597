// Package rake fits a sparse contingency table to a set of margins by
// iterative proportional fitting ("raking"): enumerate every
// potentially nonzero cell, then repeatedly rescale each margin's cells
// so their sum matches the observed margin total, until the largest
// margin deviation falls below tolerance.
package rake
