// Package serrors defines the semantic error kinds shared by the puzzle
// solvers and the driver. A kind tells the caller what went wrong (bad input,
// no answer, missing file) while the wrapped cause keeps the detail.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and match through errors.Is on an *Error.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrUnreadable indicates the puzzle input could not be read.
	ErrUnreadable = NewKind("UNREADABLE")
	// ErrMalformedInput indicates a line or block does not match the day's grammar.
	ErrMalformedInput = NewKind("MALFORMED_INPUT")
	// ErrNoSolution indicates a search finished without finding an answer.
	ErrNoSolution = NewKind("NO_SOLUTION")
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = NewKind("UNKNOWN_DAY")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// Error string formatting:
//   - msg and cause: "<msg>: <cause>"
//   - msg only: "<msg>"
//   - cause only: "<cause>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind that wraps err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or anything in the wrapped chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As extracts either the kind sentinel or a type from the wrapped chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind of the error.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the kind of the outermost *Error in err's chain, or nil when
// err carries no semantic kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	return nil
}
