package transform

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/mle"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/settings"
)

// DefaultMixtureRounds bounds the estimate alternation between joint MLE
// and per-row component reassignment (spec.md §4.8's "iterate a
// bounded number of rounds").
const DefaultMixtureRounds = 20

// MixtureSettings holds the component models and the round budget for
// estimate's alternation.
type MixtureSettings struct {
	Components []*model.Model
	MaxRounds  int
	RNG        *rand.Rand
}

func (s *MixtureSettings) Name() string { return "mixture" }

func (s *MixtureSettings) Clone() settings.Group {
	cp := *s
	cp.Components = append([]*model.Model(nil), s.Components...)
	return &cp
}

// Mixture returns a linear combination of components with weights
// weights (normalized internally: Σw need not equal 1). The parent
// parameter vector holds the raw weights in its first k slots followed
// by each component's own packed parameters in order (spec.md §4.8's
// "Mixture").
func Mixture(components []*model.Model, weights []float64, rng *rand.Rand) (*model.Model, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	if len(weights) != len(components) {
		return nil, ErrWeightMismatch
	}

	k := len(components)
	m := model.New("mixture")
	m.Settings.Set(&MixtureSettings{Components: components, MaxRounds: DefaultMixtureRounds, RNG: rng})

	full := append([]float64(nil), weights...)
	for _, c := range components {
		full = append(full, dataset.Pack(c.Parameters, false)...)
	}
	m.Vsize = len(full)
	m.Parameters = dataset.New("mixture parameters")
	m.Parameters.Vector = full

	unpackAll := func(full []float64) []float64 {
		w := append([]float64(nil), full[:k]...)
		offset := k
		for _, c := range components {
			size := len(dataset.Pack(c.Parameters, false))
			_ = dataset.Unpack(full[offset:offset+size], c.Parameters, false)
			offset += size
		}
		return w
	}

	densityAt := func(row []float64, w []float64) float64 {
		var wsum float64
		for _, wi := range w {
			wsum += wi
		}
		if wsum <= 0 {
			return 0
		}
		d := oneRowDataset(row)
		var total float64
		for i, c := range components {
			var p float64
			switch {
			case c.P != nil:
				p = c.P(d, c)
			case c.LogLikelihood != nil:
				p = math.Exp(c.LogLikelihood(d, c))
			}
			total += (w[i] / wsum) * p
		}
		return total
	}

	m.LogLikelihood = func(d *dataset.Dataset, mm *model.Model) float64 {
		w := unpackAll(mm.Parameters.Vector)
		var total float64
		for i := 0; i < numRows(d); i++ {
			total += math.Log(densityAt(rowAt(d, i), w))
		}
		return total
	}
	m.P = func(d *dataset.Dataset, mm *model.Model) float64 {
		return math.Exp(m.LogLikelihood(d, mm))
	}

	m.Constraint = func(d *dataset.Dataset, mm *model.Model) float64 {
		w := unpackAll(mm.Parameters.Vector)
		var penalty float64
		for _, wi := range w {
			if wi < 0 {
				penalty += -wi
			}
		}
		for _, c := range components {
			if c.Constraint != nil {
				if p := c.Constraint(d, c); p > 0 {
					penalty += p
				}
			}
		}
		return penalty
	}

	m.Draw = func(out []float64, rng *rand.Rand, mm *model.Model) error {
		w := unpackAll(mm.Parameters.Vector)
		idx := sampleComponent(w, rng)
		return components[idx].Draw(out, rng, components[idx])
	}

	m.Estimate = func(d *dataset.Dataset, mm *model.Model) error {
		return estimateMixture(d, mm, components, rng)
	}

	return m, nil
}

// sampleComponent draws a component index from the weights' CDF.
func sampleComponent(w []float64, rng *rand.Rand) int {
	var wsum float64
	for _, wi := range w {
		if wi > 0 {
			wsum += wi
		}
	}
	if wsum <= 0 {
		return 0
	}
	u := rng.Float64() * wsum
	var cum float64
	for i, wi := range w {
		if wi > 0 {
			cum += wi
		}
		if u <= cum {
			return i
		}
	}
	return len(w) - 1
}

// estimateMixture alternates (i) joint MLE of the full mixture, (ii)
// assignment of each observation to the component under which it is
// most probable (a deterministic argmax; rng is not drawn from), and (iii) re-estimating each component
// from its assigned subset, for at most MaxRounds iterations (spec.md
// §4.8's "estimate").
func estimateMixture(d *dataset.Dataset, mm *model.Model, components []*model.Model, rng *rand.Rand) error {
	if err := mle.Estimate(d, mm); err != nil {
		return err
	}

	rounds := DefaultMixtureRounds
	if cfg, ok := mm.Settings.Get("mixture"); ok {
		if ms, ok := cfg.(*MixtureSettings); ok {
			rounds = ms.MaxRounds
		}
	}

	for round := 0; round < rounds; round++ {
		assignments := assignObservations(d, mm, components, rng)
		for i, c := range components {
			subset := subsetFor(d, assignments, i)
			if subset == nil {
				continue
			}
			if err := estimateModel(subset, c); err != nil {
				return err
			}
		}
		if err := mle.Estimate(d, mm); err != nil {
			return err
		}
	}
	return nil
}

// assignObservations assigns each row of d to the component with the
// highest density at that row.
func assignObservations(d *dataset.Dataset, mm *model.Model, components []*model.Model, rng *rand.Rand) []int {
	assignments := make([]int, numRows(d))
	for i := 0; i < numRows(d); i++ {
		row := rowAt(d, i)
		best, bestP := 0, math.Inf(-1)
		for ci, c := range components {
			var p float64
			switch {
			case c.LogLikelihood != nil:
				p = c.LogLikelihood(oneRowDataset(row), c)
			case c.P != nil:
				p = math.Log(c.P(oneRowDataset(row), c))
			}
			if p > bestP {
				bestP, best = p, ci
			}
		}
		assignments[i] = best
	}
	return assignments
}

// subsetFor builds a dataset of the rows assigned to component idx, or
// nil if none were assigned.
func subsetFor(d *dataset.Dataset, assignments []int, idx int) *dataset.Dataset {
	var rows [][]float64
	for i, a := range assignments {
		if a == idx {
			rows = append(rows, rowAt(d, i))
		}
	}
	if len(rows) == 0 {
		return nil
	}
	out := dataset.New("component subset")
	if len(rows[0]) == 1 {
		vec := make([]float64, len(rows))
		for i, r := range rows {
			vec[i] = r[0]
		}
		out.Vector = vec
		return out
	}
	mat, err := matrixFromRows(rows)
	if err != nil {
		return nil
	}
	out.Matrix = mat
	return out
}
