package concurrency

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// NewPool returns a new pool where each task respects context cancellation.
// Wait() will only return the first error seen.
func NewPool(ctx context.Context, maxGoroutines int) *pool.ContextPool {
	return pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxGoroutines)
}

// ForEach runs fn for every index in [0, n) on at most maxGoroutines
// goroutines. The first error cancels the context handed to the remaining
// calls and is returned once every started call has finished.
func ForEach(ctx context.Context, n, maxGoroutines int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if maxGoroutines <= 0 || maxGoroutines > n {
		maxGoroutines = n
	}

	p := NewPool(ctx, maxGoroutines)
	for i := 0; i < n; i++ {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i)
		})
	}
	return p.Wait()
}
