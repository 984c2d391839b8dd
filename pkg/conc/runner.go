package conc

import (
	"context"
	"time"
)

// Report counts the loop iterations Interleave completed on each side.
type Report struct {
	Spawned int
	Main    int
}

// Interleave spawns a unit calling spawned(i) for i in 1..SpawnedIterations
// while the caller calls caller(i) for i in 1..MainIterations, pausing after
// each call. After its own loop the caller joins the unit, so both loops
// have finished when Interleave returns. A panic in the spawned loop is
// returned as a *PanicError.
func Interleave(ctx context.Context, spawned, caller func(i int)) (Report, error) {
	opts := OptionsFrom(ctx)

	h := Spawn(ctx, func(ctx context.Context) (int, error) {
		return loop(opts.SpawnedIterations, opts.Pause, spawned), nil
	})

	report := Report{Main: loop(opts.MainIterations, opts.Pause, caller)}

	n, err := h.Join()
	opts.Logger.DebugContext(ctx, "unit joined", "unit", h.ID(), "iterations", n, "err", err)
	report.Spawned = n
	return report, err
}

func loop(iterations int, pause time.Duration, fn func(i int)) int {
	done := 0
	for i := 1; i <= iterations; i++ {
		fn(i)
		done++
		if pause > 0 {
			time.Sleep(pause)
		}
	}
	return done
}
