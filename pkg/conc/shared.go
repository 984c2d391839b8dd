package conc

import "sync/atomic"

type sharedCell[T any] struct {
	value     T
	refs      atomic.Int64
	onRelease func(T)
}

// Shared is one owner's handle to a reference-counted value.
type Shared[T any] struct {
	cell     *sharedCell[T]
	released atomic.Bool
}

// NewShared returns the first handle. onRelease, if set, runs once when the
// last handle is released.
func NewShared[T any](v T, onRelease func(T)) *Shared[T] {
	c := &sharedCell[T]{value: v, onRelease: onRelease}
	c.refs.Store(1)
	return &Shared[T]{cell: c}
}

// Clone returns a new handle to the same value. A released handle, or one
// whose value is already gone, cannot be cloned.
func (s *Shared[T]) Clone() (*Shared[T], error) {
	if s.released.Load() {
		return nil, ErrReleased
	}
	for {
		n := s.cell.refs.Load()
		if n == 0 {
			return nil, ErrReleased
		}
		if s.cell.refs.CompareAndSwap(n, n+1) {
			return &Shared[T]{cell: s.cell}, nil
		}
	}
}

// Get returns the value. It must not be called after Release.
func (s *Shared[T]) Get() T {
	return s.cell.value
}

// Refs is the number of live handles.
func (s *Shared[T]) Refs() int64 {
	return s.cell.refs.Load()
}

// Release drops this handle. Each handle may be released once.
func (s *Shared[T]) Release() error {
	if !s.released.CompareAndSwap(false, true) {
		return ErrOverRelease
	}
	if s.cell.refs.Add(-1) == 0 && s.cell.onRelease != nil {
		s.cell.onRelease(s.cell.value)
	}
	return nil
}
