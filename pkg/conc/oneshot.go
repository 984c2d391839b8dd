package conc

import (
	"context"
	"sync"
)

type oneShot[T any] struct {
	ch chan T

	mu           sync.Mutex
	sent         bool
	closed       bool
	receiverGone bool
}

// Sender is the producing side of a one-shot channel.
type Sender[T any] struct{ s *oneShot[T] }

// Receiver is the consuming side of a one-shot channel.
type Receiver[T any] struct{ s *oneShot[T] }

// NewOneShot creates a channel that carries exactly one value from one
// producer to one consumer.
func NewOneShot[T any]() (*Sender[T], *Receiver[T]) {
	s := &oneShot[T]{ch: make(chan T, 1)}
	return &Sender[T]{s: s}, &Receiver[T]{s: s}
}

// Send hands v to the receiver and closes the channel. It never blocks.
func (tx *Sender[T]) Send(v T) error {
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.sent:
		return ErrAlreadySent
	case s.closed, s.receiverGone:
		return ErrDisconnected
	}

	s.ch <- v
	s.sent = true
	s.closed = true
	close(s.ch)
	return nil
}

// Close drops the sender. A receiver still waiting gets ErrDisconnected.
func (tx *Sender[T]) Close() {
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Recv blocks until the value arrives, the sender is closed without
// sending, or ctx is done.
func (rx *Receiver[T]) Recv(ctx context.Context) (T, error) {
	select {
	case v, ok := <-rx.s.ch:
		if !ok {
			var zero T
			return zero, ErrDisconnected
		}
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Close drops the receiver; later sends fail with ErrDisconnected.
func (rx *Receiver[T]) Close() {
	rx.s.mu.Lock()
	rx.s.receiverGone = true
	rx.s.mu.Unlock()
}
