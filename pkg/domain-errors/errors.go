// Package domainerrors carries the error taxonomy shared by every giftmatch
// package. Errors are tagged with a Code so callers can branch on the kind of
// failure without string matching, while the wrapped cause stays reachable
// through errors.Is / errors.As.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code string

const (
	// CodeInvalidInput marks values rejected at a trust boundary (constructors,
	// config parsing).
	CodeInvalidInput Code = "invalid_input"
	// CodeInvariantViolation marks an attempt to build an entity that would
	// break one of its invariants.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeConfiguration marks wiring mistakes discovered when an operation runs:
	// a person without a criterion or identity, an observer without its sender.
	CodeConfiguration Code = "configuration"
	// CodeDependencyFailure marks an injected collaborator (mail, freight)
	// returning an error. The core never retries these.
	CodeDependencyFailure Code = "dependency_failure"
	// CodeInternal is the catch-all for unexpected failures.
	CodeInternal Code = "internal"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error without a cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to err. A nil err yields nil so call sites
// can wrap unconditionally.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any coded error in err's tree carries code. Joined
// errors are searched branch by branch.
func HasCode(err error, code Code) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *Error:
		if e.Code == code {
			return true
		}
		return HasCode(e.Err, code)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if HasCode(inner, code) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return HasCode(e.Unwrap(), code)
	}
	return false
}

// CodeOf returns the outermost code in err's chain, or CodeInternal when err
// carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
