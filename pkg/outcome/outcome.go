package outcome

import (
	"fmt"
	"reflect"
)

// UnwrapFailure is the panic value raised when an extraction operation
// (Unwrap, Expect) is called on a variant that holds no extractable value.
// For Result the original error payload travels in Payload untouched, so a
// recovering caller can get it back without parsing strings. For Option
// there is nothing to carry and Payload is nil.
type UnwrapFailure struct {
	Msg     string
	Payload any
}

func (f *UnwrapFailure) Error() string {
	if f.Payload == nil {
		return f.Msg
	}
	return fmt.Sprintf("%s: %v", f.Msg, f.Payload)
}

// InvariantViolation is the panic value raised when a wrong-variant
// accessor is called (UnwrapErr on Ok) or when the guarded Some
// constructor is given the absence sentinel. It signals a logic bug in
// the caller and is not meant to be recovered in normal control flow.
type InvariantViolation struct {
	Msg string
}

func (v *InvariantViolation) Error() string {
	return v.Msg
}

// IsNil reports whether i is untyped nil or a nil value of a nil-able
// kind. Plain zero values (0, "", false) are never nil.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
