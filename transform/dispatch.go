package transform

import (
	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/mle"
	"github.com/halvard/apostat/model"
)

// estimateModel runs m's own Estimate hook if it has one, else falls
// back to mle.Estimate, matching spec.md §3's "if the model has a
// native estimator it runs, else MLE driver is invoked."
func estimateModel(d *dataset.Dataset, m *model.Model) error {
	if m.Estimate != nil {
		return m.Estimate(d, m)
	}
	return mle.Estimate(d, m)
}
