package transform

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/mle"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/settings"
)

// FixParamsSettings holds the base model and the fixed-position template
// (spec.md §4.8's "Each exposes a settings group to hold base-model
// pointers and extra config").
type FixParamsSettings struct {
	Base     *model.Model
	Template []float64 // NaN marks a free position; any other value fixes it
}

// Name implements settings.Group.
func (s *FixParamsSettings) Name() string { return "fixparams" }

// Clone implements settings.Group.
func (s *FixParamsSettings) Clone() settings.Group {
	cp := *s
	cp.Template = append([]float64(nil), s.Template...)
	return &cp
}

// FixParams returns a transformer exposing only template's NaN ("free")
// positions as its own parameter vector; every other position is held
// fixed at template's value. Pack/unpack round-trips scalars between the
// transformer's free-subset vector and base's packed parameter dataset
// (spec.md §4.8's "Fix-params").
func FixParams(base *model.Model, template []float64) (*model.Model, error) {
	if base == nil {
		return nil, ErrNoBase
	}
	free := freeIndices(template)
	if len(free) == 0 {
		return nil, ErrNoFreeParameters
	}

	m := model.New(base.Name + " fixed")
	m.Vsize = len(free)
	m.Parameters = dataset.New(m.Name + " parameters")
	m.Parameters.Vector = make([]float64, len(free))
	if base.Parameters != nil {
		full := dataset.Pack(base.Parameters, false)
		for i, idx := range free {
			if idx < len(full) {
				m.Parameters.Vector[i] = full[idx]
			}
		}
	}

	m.Settings.Set(&FixParamsSettings{Base: base, Template: append([]float64(nil), template...)})

	expand := func(freeVals []float64) []float64 {
		full := append([]float64(nil), template...)
		for i, idx := range free {
			full[idx] = freeVals[i]
		}
		return full
	}
	syncBase := func(mm *model.Model) {
		_ = dataset.Unpack(expand(mm.Parameters.Vector), base.Parameters, false)
	}

	m.LogLikelihood = func(d *dataset.Dataset, mm *model.Model) float64 {
		syncBase(mm)
		if base.LogLikelihood != nil {
			return base.LogLikelihood(d, base)
		}
		return math.Log(base.P(d, base))
	}
	if base.P != nil {
		m.P = func(d *dataset.Dataset, mm *model.Model) float64 {
			syncBase(mm)
			return base.P(d, base)
		}
	}
	if base.Constraint != nil {
		m.Constraint = func(d *dataset.Dataset, mm *model.Model) float64 {
			syncBase(mm)
			return base.Constraint(d, base)
		}
	}
	if base.Draw != nil {
		m.Draw = func(out []float64, rng *rand.Rand, mm *model.Model) error {
			syncBase(mm)
			return base.Draw(out, rng, base)
		}
	}
	m.Estimate = func(d *dataset.Dataset, mm *model.Model) error {
		return mle.Estimate(d, mm)
	}

	return m, nil
}

func freeIndices(template []float64) []int {
	var free []int
	for i, v := range template {
		if math.IsNaN(v) {
			free = append(free, i)
		}
	}
	return free
}
