package option

// Type-changing combinators live at package level: Go methods cannot
// introduce new type parameters.

// Map applies f to the present value; None stays None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if !o.some {
		return def
	}
	return f(o.value)
}

func MapOrElse[T, U any](o Option[T], noneF func() U, someF func(T) U) U {
	if !o.some {
		return noneF()
	}
	return someF(o.value)
}

// AndThen composes f over the present value; None stays None without
// invoking f.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// And returns other if o is present, else None.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return other
}

// Match collapses the option by calling exactly one of the handlers.
func Match[T, U any](o Option[T], some func(T) U, none func() U) U {
	if !o.some {
		return none()
	}
	return some(o.value)
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}
