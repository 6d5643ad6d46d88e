package evaluate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"prolom/internal/scenarios"
)

// RunAll evaluates the named scenarios with up to workers running at once.
// Each case is an independent search with its own engine and state; nothing
// is shared between workers. Results come back in the order of names. The
// first failure cancels the remaining cases.
func RunAll(ctx context.Context, names []string, workers int, opts Options) ([]*Outcome, error) {
	if len(names) == 0 {
		names = scenarios.ListScenarios()
	}
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]*Outcome, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			out, err := RunByName(ctx, name, opts)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
