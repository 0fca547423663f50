// Package stress exercises SyncCactus stacks shared between many goroutines and
// checks that every invariant holds and every node is reclaimed at the end.
package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/openfga/cactus/internal/concurrency"
	"github.com/openfga/cactus/internal/config"
	"github.com/openfga/cactus/pkg/cactus"
	"github.com/openfga/cactus/pkg/logger"
)

var (
	// ErrInvariant is returned when a stack behaved differently from its model.
	ErrInvariant = errors.New("stack invariant violated")

	// ErrLeak is returned when nodes are still live after every handle was released.
	ErrLeak = errors.New("stack nodes leaked")
)

// Report summarizes a stress run.
type Report struct {
	cactus.Counts

	Rounds int64
	Seed   int64
}

// Run executes the workload described by cfg. The returned report is filled in
// even when an error is returned.
func Run(ctx context.Context, cfg config.StressConfig, l logger.Logger) (Report, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	counts := &cactus.CountingObserver{}
	base := cactus.NewSync[int](cactus.WithObserver(cactus.MultiObserver{counts, cactus.MetricsObserver{}}))
	for i := 0; i < cfg.BaseDepth; i++ {
		base = base.Push(i)
	}

	l.Info("starting stress run",
		zap.Int("workers", cfg.Workers),
		zap.Int("iterations", cfg.Iterations),
		zap.Int("base_depth", cfg.BaseDepth),
		zap.Int("max_depth", cfg.MaxDepth),
		zap.Int64("seed", seed),
	)

	var rounds atomic.Int64
	err := concurrency.ForEach(ctx, cfg.Workers, cfg.Workers, func(ctx context.Context, w int) error {
		rng := rand.New(rand.NewSource(seed + int64(w)))
		for r := 0; r < cfg.Iterations; r++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := round(base, rng, cfg.MaxDepth); err != nil {
				return fmt.Errorf("worker %d round %d: %w", w, r, err)
			}
			rounds.Add(1)
		}
		return nil
	})
	base.Release()

	report := Report{Counts: counts.Counts(), Rounds: rounds.Load(), Seed: seed}
	return report, finish(report, err, l)
}

// finish turns the outcome of a run into its error, logging failures at error
// level and the report at info level.
func finish(report Report, err error, l logger.Logger) error {
	if err == nil {
		if live := report.Live(); live != 0 {
			err = fmt.Errorf("%w: %d of %d nodes still live", ErrLeak, live, report.Allocated)
		}
	}
	if err != nil {
		l.Error("stress run failed", zap.Error(err), zap.Int64("rounds", report.Rounds))
		return err
	}

	l.Info("stress run finished",
		zap.Int64("rounds", report.Rounds),
		zap.Int64("allocated", report.Allocated),
		zap.Int64("reclaimed", report.Reclaimed),
		zap.Int64("moved", report.Moved),
		zap.Int64("shared", report.Shared),
	)
	return nil
}

// round pushes a random branch on top of base, checks it against an
// independently allocated copy and pops it back value by value.
func round(base cactus.SyncCactus[int], rng *rand.Rand, maxDepth int) error {
	depth := 1 + rng.Intn(maxDepth)
	vals := make([]int, depth)

	s := base.Clone()
	for i := range vals {
		vals[i] = rng.Intn(1000)
		s = s.Push(vals[i])
	}

	if got, want := s.Len(), base.Len()+depth; got != want {
		s.Release()
		return fmt.Errorf("%w: len %d, want %d", ErrInvariant, got, want)
	}

	ancestry := base.Slice()
	slices.Reverse(ancestry)
	twin := cactus.FromSync(append(ancestry, vals...)...)
	equal, sameHash := cactus.Equal(s, twin), cactus.Hash(s) == cactus.Hash(twin)
	twin.Release()
	if !equal || !sameHash {
		s.Release()
		return fmt.Errorf("%w: independent copy not equal (equal=%t, same hash=%t)", ErrInvariant, equal, sameHash)
	}

	if !base.IsEmpty() {
		alias := base.Clone()
		_, err := alias.TryTake()
		alias.Release()
		if !errors.Is(err, cactus.ErrShared) {
			s.Release()
			return fmt.Errorf("%w: took the shared base (err=%v)", ErrInvariant, err)
		}
	}

	for i := depth - 1; i >= 0; i-- {
		parent, _ := s.Parent()
		val, err := s.TryTake()
		if err != nil {
			s.Release()
			parent.Release()
			return fmt.Errorf("%w: take at depth %d: %w", ErrInvariant, i, err)
		}
		if val != vals[i] {
			parent.Release()
			return fmt.Errorf("%w: took %d, want %d", ErrInvariant, val, vals[i])
		}
		s = parent
	}

	defer s.Release()
	if !s.Same(base) {
		return fmt.Errorf("%w: popping every pushed value did not return to the base", ErrInvariant)
	}
	return nil
}
