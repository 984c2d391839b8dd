package conc

import (
	"context"
	"runtime/debug"

	"github.com/google/uuid"
)

// Handle is a running unit of work. The spawner owns it until Join.
type Handle[T any] struct {
	id    uuid.UUID
	done  chan struct{}
	value T
	err   error
}

// Spawn starts fn on a new goroutine.
func Spawn[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Handle[T] {
	h := &Handle[T]{id: uuid.New(), done: make(chan struct{})}
	log := OptionsFrom(ctx).Logger

	log.DebugContext(ctx, "unit spawned", "unit", h.id)
	go func() {
		defer close(h.done)
		h.err = capture(h.id, func() (err error) {
			h.value, err = fn(ctx)
			return err
		})
	}()

	return h
}

// Go is Spawn for units that only report an error.
func Go(ctx context.Context, fn func(ctx context.Context) error) *Handle[struct{}] {
	return Spawn(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

func (h *Handle[T]) ID() uuid.UUID {
	return h.id
}

// Done is closed once the unit has returned or panicked.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Join blocks until the unit finishes and returns its value and error.
func (h *Handle[T]) Join() (T, error) {
	<-h.done
	return h.value, h.err
}

// capture runs fn and turns a panic into a *PanicError.
func capture(id uuid.UUID, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{ID: id, Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
