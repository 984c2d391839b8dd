package conc

import "sync"

// Mutex guards a value of type T. The value is only reachable inside With.
type Mutex[T any] struct {
	mu       sync.Mutex
	value    T
	poisoned bool
}

func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{value: v}
}

// With runs fn while holding the lock. If fn panics the lock is released,
// the mutex is poisoned and the panic continues. Acquiring a poisoned mutex
// returns ErrPoisoned without calling fn.
func (m *Mutex[T]) With(fn func(v *T)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.poisoned {
		return ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			m.poisoned = true
		}
	}()

	fn(&m.value)
	completed = true
	return nil
}

// Value returns a copy of the guarded value.
func (m *Mutex[T]) Value() (T, error) {
	var out T
	err := m.With(func(v *T) { out = *v })
	return out, err
}

func (m *Mutex[T]) Poisoned() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.poisoned
}
