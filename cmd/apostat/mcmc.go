package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/internal/xlog"
	"github.com/halvard/apostat/mcmc"
	"github.com/halvard/apostat/stats"
)

func newMCMCCmd(sp *startupParams) *cobra.Command {
	var periods int
	var burninFraction float64

	cmd := &cobra.Command{
		Use:   "mcmc",
		Short: "sample the toy normal model's posterior via Metropolis-Hastings",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp.Setup()
			return runMCMC(periods, burninFraction, sp.seed)
		},
	}

	cmd.Flags().IntVar(&periods, "periods", 4000, "sampler period count")
	cmd.Flags().Float64Var(&burninFraction, "burnin-fraction", 0.2, "fraction of periods discarded as burn-in")
	return cmd
}

func runMCMC(periods int, burninFraction float64, seed uint64) error {
	m := toyNormalModel()
	d := toyNormalSample()

	if err := m.Prep(d); err != nil {
		return errors.Wrap(err, "preparing model")
	}
	m.Parameters.Vector[0], m.Parameters.Vector[1] = 0, 1

	cfg := mcmc.New(
		mcmc.WithPeriods(periods),
		mcmc.WithBurninFraction(burninFraction),
		mcmc.WithRNG(rand.New(rand.NewSource(seed))),
	)

	out, err := mcmc.Run(d, m, cfg)
	if err != nil {
		return errors.Wrap(err, "sampling")
	}

	col0 := make([]float64, out.Data.Matrix.Rows())
	for i := range col0 {
		col0[i] = out.Data.Get(i, 0)
	}
	mean, err := stats.Mean(col0, nil)
	if err != nil {
		return errors.Wrap(err, "summarizing draws")
	}

	xlog.Logger().Info().
		Int("draws", len(col0)).
		Float64("posterior_mean_mu", mean).
		Msg("mcmc complete")
	fmt.Printf("draws=%d posterior_mean_mu=%.4f\n", len(col0), mean)
	return nil
}
