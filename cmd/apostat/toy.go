package main

import (
	"math"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
)

// toyNormalSample is a small fixed dataset standing in for the "read a
// dataset from disk" step grample's cmd/root.go performs with a UAI file
// reader; apostat's out-of-scope ingest layer (spec.md §1) means this CLI
// demonstrates the modeling packages against inline data instead.
func toyNormalSample() *dataset.Dataset {
	d := dataset.New("toy sample")
	d.Vector = []float64{4.8, 5.1, 5.0, 4.9, 5.3, 4.7, 5.2}
	return d
}

// toyNormalModel returns a model whose two parameters are the mean and
// standard deviation of a normal log-likelihood summed over one
// observation per vector entry, the same convention mcmc_test.go's
// gaussianModel and transform_test.go's normalModel use.
func toyNormalModel() *model.Model {
	m := model.New("normal")
	m.Vsize = 2
	m.LogLikelihood = func(d *dataset.Dataset, m *model.Model) float64 {
		mu, sigma := m.Parameters.Vector[0], m.Parameters.Vector[1]
		if sigma <= 0 {
			return math.Inf(-1)
		}
		var ll float64
		for _, x := range d.Vector {
			r := x - mu
			ll += -0.5*r*r/(sigma*sigma) - 0.5*math.Log(2*math.Pi*sigma*sigma)
		}
		return ll
	}
	m.Constraint = func(d *dataset.Dataset, m *model.Model) float64 {
		if sigma := m.Parameters.Vector[1]; sigma <= 0 {
			return -sigma + 1
		}
		return 0
	}
	return m
}
