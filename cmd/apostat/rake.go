package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/internal/xlog"
	"github.com/halvard/apostat/rake"
)

func newRakeCmd(sp *startupParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rake",
		Short: "raking iterative proportional fitting over a toy 2x2 age/sex margin table",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp.Setup()
			return runRake()
		},
	}
	return cmd
}

func runRake() error {
	ageMargin := rake.Margin{
		Contrast: rake.Contrast{"age"},
		Data: &dataset.Dataset{
			Text:    [][]string{{"young"}, {"old"}},
			Weights: []float64{50, 50},
		},
	}
	sexMargin := rake.Margin{
		Contrast: rake.Contrast{"sex"},
		Data: &dataset.Dataset{
			Text:    [][]string{{"m"}, {"f"}},
			Weights: []float64{40, 60},
		},
	}

	table, err := rake.NewTable([]string{"age", "sex"}, []rake.Margin{ageMargin, sexMargin}, nil)
	if err != nil {
		return errors.Wrap(err, "building margin table")
	}

	iterations, maxDev, err := rake.Run(table, rake.New())
	if err != nil {
		return errors.Wrap(err, "raking")
	}

	xlog.Logger().Info().
		Int("iterations", iterations).
		Float64("max_deviation", maxDev).
		Msg("rake complete")

	for _, c := range table.Cells {
		fmt.Printf("%v -> %.4f\n", c.Categories, c.Estimate)
	}
	return nil
}
