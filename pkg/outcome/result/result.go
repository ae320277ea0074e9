package result

import (
	"fmt"
	"iter"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Result holds either a success value of type T or a failure payload of
// type E. Exactly one variant is live, fixed at construction. The zero
// Result is an Err carrying E's zero value.
//
// E is an arbitrary payload type; it does not have to implement error.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// Try lifts the idiomatic Go (value, error) pair into a Result.
func Try[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. On Err it panics with an
// *outcome.UnwrapFailure carrying the original error payload.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&outcome.UnwrapFailure{Msg: "called Unwrap on Err", Payload: r.err})
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied message. The original payload
// still travels with the panic value.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&outcome.UnwrapFailure{Msg: msg, Payload: r.err})
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

// UnwrapErr returns the error payload. Calling it on Ok is a caller
// bug and panics with an *outcome.InvariantViolation.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&outcome.InvariantViolation{Msg: fmt.Sprintf("called UnwrapErr on Ok value: %v", r.value)})
	}
	return r.err
}

func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(&outcome.InvariantViolation{Msg: fmt.Sprintf("%s: called ExpectErr on Ok value: %v", msg, r.value)})
	}
	return r.err
}

// Inspect invokes f with the success value and returns the result
// unchanged. On Err, f is not invoked.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr invokes f with the error payload and returns the result
// unchanged. On Ok, f is not invoked.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Iter yields the success value once, or nothing for Err.
func (r Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
