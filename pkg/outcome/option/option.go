package option

import (
	"fmt"
	"iter"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Option holds either a present value of type T or nothing. The zero
// Option is None.
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

// FromPtr lifts a nullable pointer: nil becomes None, anything else
// becomes Some of the pointed-to value. Zero values (0, "", false) are
// present; only the nil pointer is treated as absence.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromNillable lifts any value whose kind can be nil (pointer,
// interface, map, slice, func, chan). Non-nilable kinds are always
// present.
func FromNillable[T any](v T) Option[T] {
	if outcome.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// MustSome is the guarded constructor: it rejects the absence sentinel
// with an *outcome.InvariantViolation instead of producing Some(nil).
func MustSome[T any](p *T) Option[T] {
	if p == nil {
		panic(&outcome.InvariantViolation{Msg: "cannot create Some from nil"})
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the present value. On None it panics with an
// *outcome.UnwrapFailure (fixed message, no payload).
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&outcome.UnwrapFailure{Msg: "called Unwrap on None"})
	}
	return o.value
}

func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&outcome.UnwrapFailure{Msg: msg})
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

// Filter keeps the value only when pred holds; None stays None without
// invoking pred.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// OrElse returns o when present, otherwise the alternative produced by f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Or returns o when present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// Inspect invokes f with the present value and returns o unchanged. On
// None, f is not invoked.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// Iter yields the present value once, or nothing for None.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
