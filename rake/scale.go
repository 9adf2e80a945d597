package rake

import (
	"math"

	"github.com/halvard/apostat/internal/xlog"
)

// margin caches one contrast's margin combination: which cells belong
// to it, and its observed total (cached after the first pass, per
// apop_rake.c's one_set_of_values comment: "On the first pass, this
// function takes notes on each margin's element list and total in the
// original data. Later passes just read the notes").
type margin struct {
	members []int
	obsSum  float64
}

// Run performs iterative proportional fitting over t's cells against
// every margin t was built from, returning the iteration count actually
// used and the final maximum margin deviation. It warns rather than
// erroring if cfg.MaxIterations is reached before cfg.Tolerance
// (spec.md §4.6's "Termination").
func Run(t *Table, cfg *Settings) (iterations int, maxDev float64, err error) {
	if cfg == nil {
		cfg = New()
	}

	// The preliminary pass scales every cell to a uniform fit whose
	// total matches the first margin's observed total; any margin's
	// total works here since a consistent set of margins shares one
	// grand total (apop_rake.c's c_loglin() preliminary adjustment).
	var obsTotal float64
	for _, v := range t.obsIndex[0] {
		obsTotal += v
	}
	for _, c := range t.Cells {
		c.Estimate = 1
	}
	if estTotal := float64(len(t.Cells)); estTotal > 0 && obsTotal > 0 {
		scale := obsTotal / estTotal
		for _, c := range t.Cells {
			c.Estimate *= scale
		}
	}
	if cfg.Nudge > 0 {
		for _, c := range t.Cells {
			if c.Estimate == 0 {
				c.Estimate = cfg.Nudge
			}
		}
	}

	cache := make([][]margin, len(t.margins))

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		maxDev = 0
		for mi, m := range t.margins {
			if cache[mi] == nil {
				cache[mi] = t.buildMargins(m.Contrast, t.obsIndex[mi])
			}
			for _, cm := range cache[mi] {
				dev := t.scaleMargin(cm)
				if dev > maxDev {
					maxDev = dev
				}
			}
		}
		iterations = iter
		if maxDev < cfg.Tolerance {
			return iterations, maxDev, nil
		}
	}

	xlog.Logger().Warn().
		Float64("max_deviation", maxDev).
		Int("max_iterations", cfg.MaxIterations).
		Msg("rake: maximum iterations reached before convergence")
	return iterations, maxDev, nil
}

func (t *Table) buildMargins(c Contrast, obs map[string]float64) []margin {
	var out []margin
	for _, combo := range cartesian(t.valuesFor(c)) {
		members := t.membersFor(c, combo)
		if len(members) == 0 {
			continue
		}
		out = append(out, margin{members: members, obsSum: obs[cellKey(combo)]})
	}
	return out
}

// scaleMargin multiplies every cell in m's subset by obsSum/fitSum and
// returns |obsSum - fitSum| (spec.md §4.6's "scaling step").
func (t *Table) scaleMargin(m margin) float64 {
	var fitSum float64
	for _, i := range m.members {
		fitSum += t.Cells[i].Estimate
	}
	if fitSum > 0 && m.obsSum > 0 {
		ratio := m.obsSum / fitSum
		for _, i := range m.members {
			t.Cells[i].Estimate *= ratio
		}
	}
	return math.Abs(m.obsSum - fitSum)
}
