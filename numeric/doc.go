// Package numeric provides the numerical-differentiation primitives the
// mle and bayes drivers fall back to when a model has no analytic score:
// a central-difference gradient (with an optional Richardson-extrapolation
// high-accuracy mode) and a Hessian assembled into a *mat.Dense for
// inversion by gonum/mat.
package numeric
