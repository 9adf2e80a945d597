package mcmc

import (
	"sync"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/matrix"
	"github.com/halvard/apostat/model"
)

// Run executes cfg.Periods steps of the chain against target, discarding
// the first cfg.BurninFraction of them, and returns a PMF model whose
// Data holds the accepted samples with unit weights and whose Draw
// method continues the chain by one additional full cycle per
// invocation (spec.md §4.4's "full run" and "draw continuation"
// contracts). If cfg is nil, package defaults are used.
func Run(data *dataset.Dataset, target *model.Model, cfg *Settings) (*model.Model, error) {
	if cfg == nil {
		cfg = New()
	}
	s, err := NewSampler(data, target, cfg)
	if err != nil {
		return nil, err
	}

	burnin := int(float64(cfg.Periods) * cfg.BurninFraction)
	cascade := runSteps(s, burnin, false)
	if !cascade {
		cascade = runSteps(s, cfg.Periods-burnin, true)
	}

	out := model.New(target.Name + " pmf")
	out.Dsize = len(s.Current)
	if cascade {
		out.Error = StatusConstraintCascade
	}
	rebuildSamples(out, s.Buffer)

	var mu sync.Mutex
	out.Draw = func(outVec []float64, _ *rand.Rand, m *model.Model) error {
		mu.Lock()
		defer mu.Unlock()
		s.Step()
		s.Buffer = append(s.Buffer, append([]float64(nil), s.Current...))
		rebuildSamples(m, s.Buffer)
		copy(outVec, s.Current)
		return nil
	}

	return out, nil
}

// runSteps advances s by n steps, appending the current point to s.Buffer
// on each step when keep is true. It returns true if a constraint-failure
// cascade forced an early stop.
func runSteps(s *Sampler, n int, keep bool) bool {
	for i := 0; i < n; i++ {
		s.Step()
		if s.ConstraintFail >= s.cfg.MaxConstraintFail {
			return true
		}
		if keep {
			s.Buffer = append(s.Buffer, append([]float64(nil), s.Current...))
		}
	}
	return false
}

// rebuildSamples writes the accepted-sample buffer into m.Data as a
// matrix with one row per sample and unit weights.
func rebuildSamples(m *model.Model, buffer [][]float64) {
	if len(buffer) == 0 {
		m.Data = dataset.New(m.Name)
		return
	}
	rows, cols := len(buffer), len(buffer[0])
	mat, err := matrix.NewDense(rows, cols)
	if err != nil {
		return
	}
	for i, row := range buffer {
		for j, v := range row {
			_ = mat.Set(i, j, v)
		}
	}
	d := dataset.New(m.Name)
	d.Matrix = mat
	d.Weights = make([]float64, rows)
	for i := range d.Weights {
		d.Weights[i] = 1
	}
	m.Data = d
}
