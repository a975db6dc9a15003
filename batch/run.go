package batch

import (
	"context"

	"github.com/signadot/xmlfmt/debug"

	"golang.org/x/sync/errgroup"
)

// Run calls fn for each item with at most jobs calls in flight. The error
// fn returns for items[i] is stored at index i of the result; it does not
// cancel the other calls. Items not started before ctx is done get
// ctx.Err().
func Run[T any](ctx context.Context, items []T, jobs int, fn func(context.Context, T) error) []error {
	res := make([]error, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, item := range items {
		if err := gctx.Err(); err != nil {
			res[i] = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				res[i] = err
				return nil
			}
			if debug.Batch() {
				debug.Logf("batch: start %d/%d\n", i+1, len(items))
			}
			res[i] = fn(gctx, item)
			if debug.Batch() {
				debug.Logf("batch: done %d/%d err=%v\n", i+1, len(items), res[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return res
}
