package pkg

// Sentinel errors shared by the fanlog packages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrAlreadyInstalled is returned when installing a global log sink while
// another one is already installed.
var ErrAlreadyInstalled = MakeErrorf("a log sink is already installed")

// ErrInstalled is returned when mutating a logger that has been installed as
// the global log sink.
var ErrInstalled = MakeErrorf("logger is installed")

// ErrRebased is returned when rebasing a logger's start point more than once.
var ErrRebased = MakeErrorf("logger start point already rebased")

// ErrInvalidLevel is returned when parsing an unrecognized severity level.
//
// This error should be wrapped with the offending input.
var ErrInvalidLevel = MakeErrorf("invalid level")

// ErrReadConfig is returned when reading or decoding a configuration file
// fails.
//
// This error should be wrapped with the underlying I/O or decode error
// to preserve the error chain.
var ErrReadConfig = MakeErrorf("failed to read configuration")

// ErrYAMLMarshal is returned when YAML marshaling fails.
//
// This error should be wrapped with the underlying marshaling error
// to preserve the error chain.
var ErrYAMLMarshal = MakeErrorf("YAML marshal error")

// ErrUnknownKind is returned when a configured target kind is not supported.
//
// This error should be wrapped with the offending kind and, when one
// exists, the closest supported kind.
var ErrUnknownKind = MakeErrorf("unknown target kind")

// ErrMissingPath is returned when a target kind that writes to a path is
// configured without one.
var ErrMissingPath = MakeErrorf("target requires a path")

// ErrIgnoreExpr is returned when a target's ignore_if expression does not
// compile to a boolean.
//
// This error should be wrapped with the compiler error.
var ErrIgnoreExpr = MakeErrorf("invalid ignore_if expression")

// ErrNoTargets is returned when a configuration defines no targets.
var ErrNoTargets = MakeErrorf("no targets configured")

// ErrClosed is returned by a target whose sink has been closed.
var ErrClosed = MakeErrorf("target closed")

// ErrPoisoned is returned by a target whose sink panicked while locked.
// A poisoned target fails every later call.
//
// This error should be wrapped with the recovered panic value.
var ErrPoisoned = MakeErrorf("target poisoned")

// ErrIncomplete is returned when a non-blocking transmitter did not accept
// a whole line within its retry budget.
var ErrIncomplete = MakeErrorf("incomplete transmission")

// ErrSerialMode is returned when a serial target sets both a retry budget
// and a write timeout.
var ErrSerialMode = MakeErrorf("serial target sets both retries and timeout_ms")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Is reports whether target is an Error whose chain begins the chain of the
// receiver. Errors derived from a sentinel with [Error.Wrap] or
// [Error.Wrapf] therefore match that sentinel.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if !sameError(e[i], t[i]) {
			return false
		}
	}

	return true
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(slices.Clip(e), fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	// Flatten nested chains without keeping the chain itself as an element.
	if e, ok := err.(Error); ok {
		chain := Error{}
		for _, wrapped := range e {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

		return chain
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}

// sameError compares two chain elements without panicking on dynamic types
// that are not comparable.
func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}
