// Package lispy provides the value model shared by the reader, the
// evaluator and the printer of the Lispy language: a small tagged sum of
// numbers, errors, symbols, strings, s-expressions, q-expressions and
// functions, plus the lexically-scoped environment that binds symbols to
// values.
package lispy

import "fmt"

// Value is the generic value every Lispy datum must satisfy.
type Value interface {
	fmt.Stringer

	// IsAtom reports whether the value is not further decomposable.
	IsAtom() bool

	// Equal compares two values for structural equality.
	Equal(Value) bool
}

// Errorf builds an Error value from a format string, the way every
// built-in signals a language-level failure.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether v is an Error value.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}
