// Package dataset implements the tabular data container: a vector, a
// matrix, a text grid, row weights, a name object, and a chain of linked
// auxiliary pages, with subsetting, stacking, splitting, sorting, and
// pack/unpack to a flat parameter vector.
//
// Every part is optional; a Dataset may hold any subset of
// {Vector, Matrix, Text, Weights}. The matrix storage is the adapted
// matrix.Dense type from the sibling matrix package, so centering,
// covariance, and correlation reuse its kernels directly instead of
// re-deriving them over [][]float64.
package dataset
