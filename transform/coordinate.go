package transform

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/settings"
)

// CoordinateFuncs is the user-supplied change of variables: Forward maps
// a base-space point to transformed space, Inverse is its left inverse,
// and Jacobian(y) is |det(d inverse / dy)|. A numerical jacobian is not
// implemented (spec.md §4.8 documents this as future work).
type CoordinateFuncs struct {
	Forward  func(x []float64) []float64
	Inverse  func(y []float64) []float64
	Jacobian func(y []float64) float64
}

// CoordinateSettings holds the base model and the transform functions.
type CoordinateSettings struct {
	Base  *model.Model
	Funcs CoordinateFuncs
}

func (s *CoordinateSettings) Name() string { return "coordinate" }

func (s *CoordinateSettings) Clone() settings.Group {
	cp := *s
	return &cp
}

// CoordinateTransform returns a transformer whose log-likelihood at a
// transformed point y is log p_base(inverse(y)) + log jacobian(y), and
// whose Draw samples from base and applies Forward (spec.md §4.8's
// "Coordinate transform").
func CoordinateTransform(base *model.Model, funcs CoordinateFuncs) (*model.Model, error) {
	if base == nil {
		return nil, ErrNoBase
	}
	if funcs.Jacobian == nil {
		return nil, ErrNoJacobian
	}

	m := model.New(base.Name + " transformed")
	m.Parameters = base.Parameters
	m.Settings.Set(&CoordinateSettings{Base: base, Funcs: funcs})

	m.LogLikelihood = func(d *dataset.Dataset, mm *model.Model) float64 {
		base.Parameters = mm.Parameters
		var total float64
		for i := 0; i < numRows(d); i++ {
			y := rowAt(d, i)
			x := funcs.Inverse(y)
			j := funcs.Jacobian(y)
			if j <= 0 {
				return math.Inf(-1)
			}
			total += baseLogDensity(base, x) + math.Log(j)
		}
		return total
	}

	if base.Draw != nil {
		m.Draw = func(out []float64, rng *rand.Rand, mm *model.Model) error {
			base.Parameters = mm.Parameters
			baseOut := make([]float64, len(out))
			if err := base.Draw(baseOut, rng, base); err != nil {
				return err
			}
			copy(out, funcs.Forward(baseOut))
			return nil
		}
	}

	return m, nil
}

// baseLogDensity evaluates base's log-density at a single observation x,
// building a throwaway one-row dataset the way arms.FromModel does for
// univariate targets.
func baseLogDensity(base *model.Model, x []float64) float64 {
	d := oneRowDataset(x)
	if base.LogLikelihood != nil {
		return base.LogLikelihood(d, base)
	}
	return math.Log(base.P(d, base))
}
