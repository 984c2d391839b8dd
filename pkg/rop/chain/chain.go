package chain

import (
	"context"

	"github.com/ib-77/lessons/pkg/rop"
	"github.com/ib-77/lessons/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Get leaves the chain as a (value, error) pair.
func (c *Chain[T]) Get() (T, error) {
	return c.result.Result(), c.result.Err()
}

func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry runs a step returning (U, error); the error moves the chain to failure.
func ThenTry[T, U any](c *Chain[T], step func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, step))
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	solo.Tee(c.ctx, c.result, func(ctx context.Context, r rop.Result[T]) {
		onSuccess(ctx, r.Result())
	})
	return c
}

func (c *Chain[T]) OnFailure(onError func(context.Context, error)) *Chain[T] {
	if c.result.IsFailure() {
		onError(c.ctx, c.result.Err())
	}
	return c
}

func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
