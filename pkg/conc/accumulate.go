package conc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Counter is an integer shared by many units.
type Counter = Shared[*Mutex[int]]

func NewCounter(onRelease func(*Mutex[int])) *Counter {
	return NewShared(NewMutex(0), onRelease)
}

// Increment adds one to the counter under its lock.
func Increment(counter *Counter) error {
	return counter.Get().With(func(n *int) { *n++ })
}

// Accumulate spawns Options.Units units that each take their own handle of
// counter and increment it once. The value is read only after every unit
// has been joined. The first unit failure (a poisoned lock or a panic) is
// returned. A counter handle that was already released fails with
// ErrReleased before any unit starts.
func Accumulate(ctx context.Context, counter *Counter) (int, error) {
	opts := OptionsFrom(ctx)

	var sem *semaphore.Weighted
	if opts.Parallelism > 0 {
		sem = semaphore.NewWeighted(int64(opts.Parallelism))
	}

	var g errgroup.Group
	var spawnErr error

	for i := range opts.Units {
		own, err := counter.Clone()
		if err != nil {
			spawnErr = fmt.Errorf("accumulate: spawned %d of %d units: %w", i, opts.Units, err)
			break
		}
		if sem != nil {
			if err := sem.Acquire(ctx, 1); err != nil {
				_ = own.Release()
				spawnErr = fmt.Errorf("accumulate: spawned %d of %d units: %w", i, opts.Units, err)
				break
			}
		}

		unit := uuid.New()
		g.Go(func() (err error) {
			if sem != nil {
				defer sem.Release(1)
			}
			defer func() {
				err = errors.Join(err, own.Release())
			}()

			err = capture(unit, func() error { return Increment(own) })
			if err != nil {
				opts.Logger.DebugContext(ctx, "unit failed", "unit", unit, "index", i, "err", err)
				return fmt.Errorf("accumulate unit %d: %w", i, err)
			}
			return nil
		})
	}

	if err := errors.Join(spawnErr, g.Wait()); err != nil {
		return 0, err
	}

	return counter.Get().Value()
}
