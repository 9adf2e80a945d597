package mle

import (
	"math"
	"os"
	"os/signal"

	"gonum.org/v1/gonum/optimize"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/numeric"
)

// Estimate runs maximum-likelihood estimation of m against d, dispatching
// on m's "mle" settings group (or package defaults if none registered),
// per spec.md §4.3. On return m.Parameters holds the optimum — or the
// last accepted point, on interrupt or failure — m.Info carries status/
// log-likelihood/AIC/BIC, and a "<Covariance>" page is attached unless
// estimation failed outright.
func Estimate(d *dataset.Dataset, m *model.Model) error {
	if !m.HasLikelihood() {
		m.Error = model.StatusMissingSettings
		return ErrNoLikelihood
	}
	if err := m.Prep(d); err != nil {
		return err
	}

	cfg := settingsOf(m)

	sh, err := newShell(d, m, cfg.TraceFile)
	if err != nil {
		return err
	}
	defer sh.close()

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt)
	defer func() {
		signal.Stop(sigCh)
		close(done)
	}()
	go func() {
		select {
		case <-sigCh:
			sh.interrupted.Store(true)
		case <-done:
		}
	}()

	x0 := dataset.Pack(m.Parameters, false)
	result, status, runErr := runMethod(sh, x0, cfg)

	finalize(m, d, sh, result, status, runErr, cfg)
	return runErr
}

// runMethod dispatches to the method family cfg selects, recovering from
// the shell's non-local-escape panics and converting them into a status
// byte plus the last-evaluated point.
func runMethod(sh *shell, x0 []float64, cfg *Settings) (x []float64, status byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			x = x0
			switch r {
			case ErrInterrupted:
				status = StatusInterrupted
				err = ErrInterrupted
			case ErrNonFinite:
				status = StatusNonFinite
				err = ErrNonFinite
			case ErrNoLikelihood:
				status = StatusNoLikelihood
				err = ErrNoLikelihood
			default:
				panic(r)
			}
		}
	}()

	switch cfg.Method {
	case MethodConjugateGradient:
		return runGonum(sh, x0, cfg, &optimize.CG{})
	case MethodSimplex:
		return runGonum(sh, x0, cfg, &optimize.NelderMead{})
	case MethodAnnealing:
		return runAnnealing(sh, x0, cfg)
	case MethodNewton:
		return runNewton(sh, x0, cfg)
	case MethodDimensionCycling:
		return runDimensionCycling(sh, x0, cfg)
	default:
		return x0, StatusOK, ErrUnknownMethod
	}
}

func runGonum(sh *shell, x0 []float64, cfg *Settings, method optimize.Method) ([]float64, byte, error) {
	problem := optimize.Problem{
		Func: sh.objective,
		Grad: func(grad, x []float64) {
			g := numeric.Gradient(sh.objective, x, numeric.WithDelta(cfg.Delta))
			copy(grad, g)
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: cfg.Tolerance,
		MajorIterations:   cfg.MaxIterations,
	}
	result, err := optimize.Minimize(problem, x0, settings, method)
	if err != nil {
		if result != nil {
			return result.X, StatusMaxIter, nil
		}
		return x0, StatusNonFinite, err
	}
	return result.X, StatusOK, nil
}

// finalize writes m.Parameters/m.Info/<Covariance> from the run outcome.
func finalize(m *model.Model, d *dataset.Dataset, sh *shell, x []float64, status byte, runErr error, cfg *Settings) {
	if x != nil {
		_ = dataset.Unpack(x, m.Parameters, false)
	}

	ll := math.NaN()
	if status == StatusOK || status == StatusMaxIter {
		if m.LogLikelihood != nil {
			ll = m.LogLikelihood(d, m)
		} else if m.P != nil {
			ll = math.Log(m.P(d, m))
		}
	}

	k := len(x)
	n := d.Rows()
	aic := 2*float64(k) - 2*ll
	bicRow := -2*ll + float64(k)*math.Log(float64(maxInt(n, 1)))
	bicItem := -2*ll + float64(k)*math.Log(float64(maxInt(n*maxInt(k, 1), 1)))

	// info.Vector holds, in fixed order: status, log_likelihood, aic,
	// bic_row, bic_item, evaluations.
	info := m.Info
	info.Vector = []float64{float64(status), ll, aic, bicRow, bicItem, float64(sh.evals)}
	m.Error = status

	if status == StatusOK && k > 0 {
		H := numeric.Hessian(sh.objective, x, numeric.WithDelta(cfg.Delta))
		cov, err := invertHessian(H)
		if err == nil {
			page := dataset.New("<Covariance>")
			page.Matrix = cov
			m.Parameters.AddPage(page, "<Covariance>")
		}
	}
	_ = runErr
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
