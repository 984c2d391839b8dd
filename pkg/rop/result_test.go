package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(5)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.False(t, r.IsEmpty())
	assert.NoError(t, r.Err())
	assert.Equal(t, 5, r.Result())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.Equal(t, "UTC", r.CreatedAt().Location().String())
}

func TestFail(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[string](boom)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), boom)
	assert.Empty(t, r.Result())
	assert.Panics(t, func() { r.Unwrap() })
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Fail[int](errors.New("bad"))
	out := FailFrom[int, string](in)

	assert.True(t, out.IsFailure())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
	assert.EqualError(t, out.Err(), "bad")
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Of(3, nil).Unwrap())
	assert.True(t, Of(0, errors.New("x")).IsFailure())
}

func TestZeroResultIsEmpty(t *testing.T) {
	t.Parallel()

	var r Result[int]
	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsFailure())
}

func TestOption(t *testing.T) {
	t.Parallel()

	some := Some(2.5)
	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, 2.5, v)
	assert.True(t, some.IsSome())
	assert.Equal(t, 2.5, some.OrElse(1))

	none := None[float64]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.True(t, none.IsNone())
	assert.Equal(t, 1.0, none.OrElse(1))
}

func TestOption_OkOr(t *testing.T) {
	t.Parallel()

	missing := errors.New("missing")
	assert.Equal(t, "x", Some("x").OkOr(missing).Unwrap())
	assert.ErrorIs(t, None[string]().OkOr(missing).Err(), missing)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")

	assert.Nil(t, Flatten(nil))
	assert.Equal(t, []error{a}, Flatten(a))
	assert.Equal(t, []error{a, b}, Flatten(errors.Join(a, nil, b)))
	assert.Equal(t, []error{a, b, c}, Flatten(errors.Join(a, errors.Join(b, c))))
}

func TestIsCancelled(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancelled(fmt.Errorf("receive: %w", context.Canceled)))
	assert.True(t, IsCancelled(errors.Join(errors.New("x"), context.DeadlineExceeded)))
	assert.False(t, IsCancelled(errors.New("boom")))
}
