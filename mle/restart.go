package mle

import (
	"math"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
)

// DefaultDivergenceBound is the default per-coordinate magnitude beyond
// which a restart candidate is treated as diverged (spec.md §4.3's
// "boundedness test... default 1e8 on any coordinate").
const DefaultDivergenceBound = 1e8

// RestartFrom selects which point a Restart run begins from.
type RestartFrom int

const (
	// RestartFromCurrent begins at the prior run's current parameters.
	RestartFromCurrent RestartFrom = iota
	// RestartFromOriginalStart begins at the prior run's original
	// starting point.
	RestartFromOriginalStart
	// RestartFromExplicit begins at a caller-supplied vector.
	RestartFromExplicit
)

// Restart re-runs estimation from one of the points RestartFrom selects,
// keeping the better (by log-likelihood) of the prior and new results.
// Open Question 1 is decided in favor of always re-evaluating the prior
// result's log-likelihood at its parameters rather than trusting a cached
// m.Info value, so staleness never leaks through.
func Restart(d *dataset.Dataset, m *model.Model, from RestartFrom, explicitStart []float64, divergenceBound float64) error {
	if divergenceBound <= 0 {
		divergenceBound = DefaultDivergenceBound
	}

	priorParams, err := m.Parameters.Copy()
	if err != nil {
		return err
	}
	priorInfo, err := m.Info.Copy()
	if err != nil {
		return err
	}
	priorLL := math.NaN()
	switch {
	case m.LogLikelihood != nil:
		priorLL = m.LogLikelihood(d, m)
	case m.P != nil:
		priorLL = math.Log(m.P(d, m))
	}

	var start []float64
	switch from {
	case RestartFromCurrent:
		start = dataset.Pack(priorParams, false)
	case RestartFromOriginalStart:
		if page, ok := m.Parameters.GetPage("<OriginalStart>", dataset.MatchExact); ok {
			start = dataset.Pack(page, false)
		} else {
			start = dataset.Pack(priorParams, false)
		}
	case RestartFromExplicit:
		start = explicitStart
	}

	if err := dataset.Unpack(start, m.Parameters, false); err != nil {
		return err
	}

	runErr := Estimate(d, m)

	diverged := false
	for _, v := range dataset.Pack(m.Parameters, false) {
		if math.Abs(v) > divergenceBound || math.IsNaN(v) {
			diverged = true
			break
		}
	}

	newLL := math.NaN()
	if len(m.Info.Vector) > 1 {
		newLL = m.Info.Vector[1]
	}

	if diverged || runErr != nil || math.IsNaN(newLL) || newLL < priorLL {
		m.Parameters = priorParams
		m.Info = priorInfo
		return runErr
	}
	return nil
}
