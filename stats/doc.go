// Package stats implements spec.md §4.1's weighted moment and
// information-theoretic utilities: mean, variance, standard deviation,
// skewness, excess kurtosis, percentiles, entropy, Kullback-Leibler
// divergence, and scalar covariance/correlation between two samples.
// Every scalar function delegates to gonum.org/v1/gonum/stat and accepts
// an optional weight vector (nil means unweighted), the same convention
// dataset.Summarize already uses.
package stats
