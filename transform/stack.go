package transform

import (
	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/settings"
)

// StackSettings holds the two wrapped models and the optional page name
// that routes input data between them.
type StackSettings struct {
	First, Second *model.Model
	SplitPage     string
}

func (s *StackSettings) Name() string { return "stack" }

func (s *StackSettings) Clone() settings.Group {
	cp := *s
	return &cp
}

// Stack binds two uncorrelated models into one. If splitPage is
// non-empty and the input data carries a page of that name, first sees
// the page chain up to (but excluding) that page and second sees the
// split page itself; otherwise both see the same data. Log-likelihood,
// p, and draw are the coordinate-wise combinations, and draw
// concatenates the two output vectors (spec.md §4.8's "Stack"): dsize =
// dsize1 + dsize2.
func Stack(first, second *model.Model, splitPage string) (*model.Model, error) {
	if first == nil || second == nil {
		return nil, ErrNoBase
	}

	m := model.New(first.Name + "+" + second.Name + " stack")
	m.Settings.Set(&StackSettings{First: first, Second: second, SplitPage: splitPage})
	m.Dsize = first.Dsize + second.Dsize

	route := func(d *dataset.Dataset) (*dataset.Dataset, *dataset.Dataset) {
		if splitPage == "" {
			return d, d
		}
		split, ok := d.GetPage(splitPage, dataset.MatchCaseInsensitive)
		if !ok {
			return d, d
		}
		return truncateBefore(d, split), split
	}

	m.LogLikelihood = func(d *dataset.Dataset, mm *model.Model) float64 {
		d1, d2 := route(d)
		ll := 0.0
		if first.LogLikelihood != nil {
			ll += first.LogLikelihood(d1, first)
		}
		if second.LogLikelihood != nil {
			ll += second.LogLikelihood(d2, second)
		}
		return ll
	}

	if first.P != nil && second.P != nil {
		m.P = func(d *dataset.Dataset, mm *model.Model) float64 {
			d1, d2 := route(d)
			return first.P(d1, first) * second.P(d2, second)
		}
	}

	if first.Draw != nil && second.Draw != nil {
		m.Draw = func(out []float64, rng *rand.Rand, mm *model.Model) error {
			out1 := make([]float64, first.Dsize)
			if err := first.Draw(out1, rng, first); err != nil {
				return err
			}
			out2 := make([]float64, second.Dsize)
			if err := second.Draw(out2, rng, second); err != nil {
				return err
			}
			copy(out, out1)
			copy(out[len(out1):], out2)
			return nil
		}
	}

	m.Estimate = func(d *dataset.Dataset, mm *model.Model) error {
		d1, d2 := route(d)
		if err := estimateModel(d1, first); err != nil {
			return err
		}
		return estimateModel(d2, second)
	}

	return m, nil
}

// truncateBefore returns a shallow copy of d's page chain stopping just
// before split, leaving split and whatever follows it out.
func truncateBefore(d, split *dataset.Dataset) *dataset.Dataset {
	if d == split {
		return nil
	}
	head := *d
	head.More = truncateBefore(d.More, split)
	return &head
}
