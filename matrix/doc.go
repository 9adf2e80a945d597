// Package matrix provides the dense numeric storage and linear-algebra
// kernels shared by the rest of apostat: dataset pages, MLE Hessians, MCMC
// proposal covariances, and the raking engine's contingency tables all sit
// on top of the same Dense type.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     numeric policy (epsilon, NaN/Inf handling) resolved via Option.
//   - Element-wise kernels (Add, Sub, Hadamard, Scale, broadcast row/col ops)
//     and linear-algebra kernels (Mul, Transpose, Eigen, Inverse, LU, QR).
//   - Summary statistics over columns (CenterColumns, Covariance, Correlation)
//     used directly by the dataset and stats packages.
//
// Dense is appropriate for the in-memory, single-process scale this module
// targets; it is not a sparse or distributed representation.
package matrix
