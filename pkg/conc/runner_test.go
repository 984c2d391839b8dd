package conc

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave_BothLoopsComplete(t *testing.T) {
	t.Parallel()

	var spawnedCalls, callerCalls atomic.Int32
	var lastSpawned int

	report, err := Interleave(context.Background(),
		func(i int) {
			spawnedCalls.Add(1)
			lastSpawned = i
		},
		func(int) { callerCalls.Add(1) })

	require.NoError(t, err)
	assert.Equal(t, Report{Spawned: 9, Main: 4}, report)
	assert.Equal(t, int32(9), spawnedCalls.Load())
	assert.Equal(t, int32(4), callerCalls.Load())
	assert.Equal(t, 9, lastSpawned)
}

func TestInterleave_CustomIterations(t *testing.T) {
	t.Parallel()

	ctx := WithOptions(context.Background(), Options{SpawnedIterations: 2, MainIterations: 6})
	report, err := Interleave(ctx, func(int) {}, func(int) {})
	require.NoError(t, err)
	assert.Equal(t, Report{Spawned: 2, Main: 6}, report)
}

func TestInterleave_SpawnedPanicSurfaces(t *testing.T) {
	t.Parallel()

	var callerCalls int
	report, err := Interleave(context.Background(),
		func(i int) {
			if i == 3 {
				panic("spawned loop failed")
			}
		},
		func(int) { callerCalls++ })

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "spawned loop failed", pe.Value)
	assert.Equal(t, 4, callerCalls)
	assert.Equal(t, 4, report.Main)
}

func TestInterleave_NegativePauseSkipsSleep(t *testing.T) {
	t.Parallel()

	ctx := WithOptions(context.Background(), Options{
		SpawnedIterations: 50,
		MainIterations:    50,
		Pause:             -1,
	})
	assert.Equal(t, time.Duration(-1), OptionsFrom(ctx).Pause)

	start := time.Now()
	report, err := Interleave(ctx, func(int) {}, func(int) {})
	require.NoError(t, err)
	assert.Equal(t, Report{Spawned: 50, Main: 50}, report)
	// 50 default pauses would take at least 50ms.
	assert.Less(t, time.Since(start), 40*time.Millisecond)
}
