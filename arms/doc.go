// Package arms implements adaptive rejection metropolis sampling for
// univariate log-concave-ish targets: a piecewise-exponential envelope
// refined by every evaluation, with a Metropolis fallback when the
// envelope's log-concavity assumption is violated.
package arms
