// Package transform builds derived models ("transformers") that wrap one
// or more base models: fixed parameters, coordinate changes, support
// constraints, data composition, stacking, cross products, and finite
// mixtures. Each transformer is itself a *model.Model, so transformers
// compose.
package transform
