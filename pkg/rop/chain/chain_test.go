package chain

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/lessons/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThenTry_Map_Finally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Map(ThenTry(FromValue(ctx, " 41 "), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), func(_ context.Context, n int) int { return n + 1 })

	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	out := Finally(c,
		func(_ context.Context, n int) string { return "ok " + strconv.Itoa(n) },
		func(_ context.Context, err error) string { return err.Error() })
	assert.Equal(t, "ok 42", out)
}

func TestChain_StopsAfterFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	steps := 0
	c := ThenTry(FromValue(ctx, 1), func(context.Context, int) (int, error) {
		steps++
		return 0, boom
	})
	c = Then(c, func(_ context.Context, n int) rop.Result[int] {
		steps++
		return rop.Success(n)
	})

	var failed error
	c.Ensure(func(context.Context, int) { steps++ }).
		OnFailure(func(_ context.Context, err error) { failed = err })

	assert.Equal(t, 1, steps)
	assert.ErrorIs(t, failed, boom)
	assert.ErrorIs(t, c.Result().Err(), boom)
}

func TestStart_FromFailure(t *testing.T) {
	t.Parallel()

	c := Start(context.Background(), rop.Fail[int](errors.New("early")))
	_, err := c.Get()
	assert.EqualError(t, err, "early")
}
