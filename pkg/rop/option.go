package rop

// Option holds either some value or nothing.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// OrElse returns the value or def when there is none.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// OkOr turns the option into a Result, failing with err on None.
func (o Option[T]) OkOr(err error) Result[T] {
	if o.some {
		return Success(o.value)
	}
	return Fail[T](err)
}
