package mcmc

import (
	"context"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/model"
	"github.com/halvard/apostat/optio"
)

// RunChains runs n independent Metropolis-Hastings chains against the
// same target and data, each seeded from optio.NextSeed so repeated runs
// under a fixed process-wide seed are reproducible chain-by-chain. Chains
// execute concurrently, bounded by optio.Get().ThreadCount() in-flight at
// once, mirroring how the rest of the package already treats ThreadCount
// as the knob for "how much of this can overlap" rather than a literal
// goroutine-per-unit count.
//
// Each chain runs against its own Copy of target, since Sampler mutates
// Parameters.Vector in place on every likelihood evaluation and would
// otherwise race across goroutines. The returned slice is in chain
// order, not completion order.
func RunChains(data *dataset.Dataset, target *model.Model, cfg *Settings, n int) ([]*model.Model, error) {
	if n <= 0 {
		panic("mcmc: RunChains requires a positive chain count")
	}
	if cfg == nil {
		cfg = New()
	}

	results := make([]*model.Model, n)
	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(optio.Get().ThreadCount())

	for i := 0; i < n; i++ {
		i := i
		chainTarget, err := target.Copy()
		if err != nil {
			return nil, err
		}
		chainCfg := cfg.Clone().(*Settings)
		chainCfg.RNG = rand.New(rand.NewSource(optio.NextSeed()))

		group.Go(func() error {
			out, err := Run(data, chainTarget, chainCfg)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
