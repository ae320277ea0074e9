package chain

import (
	"github.com/ib-77/outcome/pkg/outcome/result"
)

// Then composes a function that switches the chain to a new value type.
func Then[T, E, U any](c Chain[T, E], onOk func(T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.AndThen(c.res, onOk)}
}

// Map transforms the success value to a new value type.
func Map[T, E, U any](c Chain[T, E], onOk func(T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, onOk)}
}

// Finally collapses the chain to a final value of a new type.
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return result.Match(c.res, onOk, onErr)
}
