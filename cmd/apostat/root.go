package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halvard/apostat/optio"
)

// startupParams holds the global flags every subcommand reads, following
// grample's cmd/root.go shape: one struct carrying parsed flags plus a
// Setup step that turns them into process-wide state before a subcommand
// runs.
type startupParams struct {
	verbose bool
	seed    uint64
}

// Setup turns parsed flags into the process-wide optio record every
// package's logging and RNG seeding reads from.
func (s *startupParams) Setup() {
	verbosity := optio.VerbosityWarn
	if s.verbose {
		verbosity = optio.VerbosityTrace
	}
	optio.TryInit(optio.WithVerbosity(verbosity), optio.WithSeed(s.seed))
}

// Execute builds the root command, registers the estimate/mcmc/rake
// subcommands, and runs it. Called once from main.
func Execute() {
	sp := &startupParams{}

	root := &cobra.Command{
		Use:   "apostat",
		Short: "a small statistical modeling toolkit",
		Long: `apostat fits and samples statistical models over in-memory
datasets: maximum-likelihood estimation, Metropolis-Hastings sampling,
and iterative proportional fitting (raking) of contingency tables.`,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&sp.verbose, "verbose", "v", false, "trace-level logging")
	pf.Uint64VarP(&sp.seed, "seed", "e", 1, "RNG seed for stochastic subcommands")

	root.AddCommand(newEstimateCmd(sp))
	root.AddCommand(newMCMCCmd(sp))
	root.AddCommand(newRakeCmd(sp))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
