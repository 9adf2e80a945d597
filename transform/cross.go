package transform

import "github.com/halvard/apostat/model"

// Cross reduces an n-ary list of independent models into one via
// right-folded pairwise Stack calls with no split page, matching
// spec.md §4.8's "Cross": "same semantics as stack but explicitly for
// independent product distributions; takes an n-ary list and reduces by
// right-folding pairs."
func Cross(models ...*model.Model) (*model.Model, error) {
	if len(models) == 0 {
		return nil, ErrNoBase
	}
	if len(models) == 1 {
		return models[0], nil
	}
	acc := models[len(models)-1]
	for i := len(models) - 2; i >= 0; i-- {
		next, err := Stack(models[i], acc, "")
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}
