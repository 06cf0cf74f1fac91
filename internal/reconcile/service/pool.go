package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEachKey runs fn for every index in [0, n) on at most workers goroutines.
// fn must only write to state owned by its index.
func forEachKey(ctx context.Context, workers, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	return g.Wait()
}
