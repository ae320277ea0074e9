package chain

import (
	"github.com/ib-77/outcome/pkg/outcome/result"
)

// Chain wraps a result.Result to enable fluent composition. Once the
// carried result is an Err, every step is skipped and the original
// error flows through unchanged.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(result.Ok[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result.Result.
func (c Chain[T, E]) Then(onOk func(T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Unwrap())}
}

// Map transforms the success value to a new value of the same type.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: result.Ok[T, E](onOk(c.res.Unwrap()))}
}

// Ensure triggers side effects for the live variant without changing
// the result. Either handler may be nil.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.UnwrapErr())
		}
		return c
	}
	if onOk != nil {
		onOk(c.res.Unwrap())
	}
	return c
}

func (c Chain[T, E]) RepeatUntil(onOk func(T) result.Result[T, E], until func(T) bool) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsErr() || until(c.res.Unwrap()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onOk func(T) result.Result[T, E], while func(T) bool) Chain[T, E] {
	for c.res.IsOk() && while(c.res.Unwrap()) {
		c = c.Then(onOk)
	}
	return c
}

// Or returns c when it is Ok, otherwise alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And returns c's error when it is Err, otherwise required.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value.
func (c Chain[T, E]) Finally(onOk func(T) T, onErr func(E) T) T {
	return result.Match(c.res, onOk, onErr)
}
