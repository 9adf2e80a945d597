package mle

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
)

// shell wraps a model/data pair into the negated objective function
// spec.md §4.3 describes: unpack candidate x into m.Parameters, apply the
// constraint penalty, evaluate -log_likelihood, optionally trace.
type shell struct {
	data      *dataset.Dataset
	m         *model.Model
	traceFile *os.File

	interrupted atomic.Bool
	evals       int
}

func newShell(d *dataset.Dataset, m *model.Model, tracePath string) (*shell, error) {
	sh := &shell{data: d, m: m}
	if tracePath != "" {
		f, err := os.OpenFile(tracePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		sh.traceFile = f
	}
	return sh, nil
}

func (sh *shell) close() {
	if sh.traceFile != nil {
		sh.traceFile.Close()
	}
}

// objective evaluates the negated shell function at x. On a non-finite
// result, an interrupt, or a packing failure it panics with a sentinel
// error; callers recover at the driver's top-level handler, per spec.md
// §4.3's "non-local escape" contract.
func (sh *shell) objective(x []float64) float64 {
	sh.evals++
	if sh.interrupted.Load() {
		panic(ErrInterrupted)
	}
	if err := dataset.Unpack(x, sh.m.Parameters, false); err != nil {
		panic(ErrNonFinite)
	}

	penalty := 0.0
	if sh.m.Constraint != nil {
		penalty = sh.m.Constraint(sh.data, sh.m)
		if penalty < 0 {
			penalty = 0
		}
		copy(x, dataset.Pack(sh.m.Parameters, false))
	}

	var f float64
	switch {
	case sh.m.LogLikelihood != nil:
		f = sh.m.LogLikelihood(sh.data, sh.m)
	case sh.m.P != nil:
		f = math.Log(sh.m.P(sh.data, sh.m))
	default:
		panic(ErrNoLikelihood)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(ErrNonFinite)
	}

	shellValue := penalty - f
	if sh.traceFile != nil {
		fmt.Fprintf(sh.traceFile, "%v\t%v\n", x, -shellValue)
	}
	return shellValue
}
