package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one request evaluated by Batch.
type Outcome[T any] struct {
	Index int
	Value T
	Err   error
}

// Batch evaluates fn for indices [0, n) on at most workers goroutines.
// Per-request errors are returned in the matching Outcome and do not stop the
// batch. Cancelling ctx stops dispatching new requests; requests already
// running finish, and Batch returns ctx.Err().
func Batch[T any](ctx context.Context, workers, n int, fn func(i int) (T, error)) ([]Outcome[T], error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]Outcome[T], n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		idx := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(idx)
			out[idx] = Outcome[T]{Index: idx, Value: v, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, ctx.Err()
}
