package conc

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawn_JoinReturnsValue(t *testing.T) {
	t.Parallel()

	h := Spawn(context.Background(), func(context.Context) (string, error) {
		return "done", nil
	})

	v, err := h.Join()
	require.NoError(t, err)
	assert.Equal(t, "done", v)
	assert.NotEqual(t, uuid.Nil, h.ID())

	select {
	case <-h.Done():
	default:
		t.Fatal("Done should be closed after Join")
	}
}

func TestGo_JoinReturnsError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Go(context.Background(), func(context.Context) error { return boom }).Join()
	assert.ErrorIs(t, err, boom)
}

func TestSpawn_PanicSurfacesOnJoin(t *testing.T) {
	t.Parallel()

	h := Go(context.Background(), func(context.Context) error {
		panic("unit exploded")
	})

	_, err := h.Join()

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "unit exploded", pe.Value)
	assert.Equal(t, h.ID(), pe.ID)
	assert.NotEmpty(t, pe.Stack)
	assert.Contains(t, pe.Error(), "unit exploded")
}

func TestPanicError_UnwrapsErrorValue(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	_, err := Go(context.Background(), func(context.Context) error { panic(cause) }).Join()
	assert.ErrorIs(t, err, cause)
}

func TestOptionsFrom_Defaults(t *testing.T) {
	t.Parallel()

	opts := OptionsFrom(context.Background())
	assert.Equal(t, DefaultSpawnedIterations, opts.SpawnedIterations)
	assert.Equal(t, DefaultMainIterations, opts.MainIterations)
	assert.Equal(t, DefaultPause, opts.Pause)
	assert.Equal(t, DefaultUnits, opts.Units)
	assert.NotNil(t, opts.Logger)

	ctx := WithUnits(WithOptions(context.Background(), Options{MainIterations: 2}), 3)
	opts = OptionsFrom(ctx)
	assert.Equal(t, 3, opts.Units)
	assert.Equal(t, 2, opts.MainIterations)
}
