package result

// Type-changing combinators live at package level: Go methods cannot
// introduce new type parameters.

// Map applies f to the success value; an Err flows through unchanged.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr applies f to the error payload; an Ok flows through unchanged.
// This is the only mechanism for changing the failure-channel type.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// AndThen composes f over the success value. The error type E is
// preserved across the step; use MapErr to convert it explicitly.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return f(r.value)
}

// OrElse composes f over the error payload; f declares the new error
// type F. An Ok is rewrapped with the new error type.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}

func MapOr[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	if !r.ok {
		return def
	}
	return f(r.value)
}

func MapOrElse[T, E, U any](r Result[T, E], errF func(E) U, okF func(T) U) U {
	if !r.ok {
		return errF(r.err)
	}
	return okF(r.value)
}

// And returns other if r is Ok, else propagates r's error.
func And[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return other
}

// Or returns r if it is Ok, else other.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return other
}

// Match collapses the result by calling exactly one of the handlers.
func Match[T, E, U any](r Result[T, E], ok func(T) U, err func(E) U) U {
	if r.ok {
		return ok(r.value)
	}
	return err(r.err)
}
