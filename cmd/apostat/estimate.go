package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/halvard/apostat/internal/xlog"
	"github.com/halvard/apostat/mle"
)

func newEstimateCmd(sp *startupParams) *cobra.Command {
	var maxIterations int

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "fit a toy normal model by maximum likelihood",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp.Setup()
			return runEstimate(maxIterations)
		},
	}

	cmd.Flags().IntVar(&maxIterations, "max-iterations", 200, "optimizer iteration budget")
	return cmd
}

func runEstimate(maxIterations int) error {
	m := toyNormalModel()
	d := toyNormalSample()

	if err := m.Prep(d); err != nil {
		return errors.Wrap(err, "preparing model")
	}
	m.Parameters.Vector[0], m.Parameters.Vector[1] = 0, 1
	m.Settings.Set(mle.New(mle.WithMaxIterations(maxIterations)))

	if err := mle.Estimate(d, m); err != nil {
		return errors.Wrap(err, "estimating")
	}

	xlog.Logger().Info().
		Float64("mu", m.Parameters.Vector[0]).
		Float64("sigma", m.Parameters.Vector[1]).
		Uint8("status", m.Error).
		Msg("estimate complete")
	fmt.Printf("mu=%.4f sigma=%.4f status=%c\n", m.Parameters.Vector[0], m.Parameters.Vector[1], m.Error)
	return nil
}
