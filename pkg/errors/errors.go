// Package errors defines the coded errors returned by shapeshift.
//
// Every failure the library reports carries a [Code]. Callers branch on the
// code with [Is] or [GetCode], show [UserMessage] to people, and map codes
// to process exit status with [ExitCode]:
//
//	if errors.Is(err, errors.ErrCodeNotDraggable) {
//	    return nil // the host ignores presses on pinned cards
//	}
//
// Codes are grouped by prefix. INVALID_* means the caller passed something
// unusable (a bad board file, config or pointer state), NOT_* means a
// lookup or a gesture was refused, and INTERNAL_ERROR and UNSUPPORTED cover
// failures of the environment.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidBoard  Code = "INVALID_BOARD"
	ErrCodeInvalidState  Code = "INVALID_STATE"

	ErrCodeNotDraggable Code = "NOT_DRAGGABLE"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// outermost returns the first *Error in err's chain.
func outermost(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := outermost(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// for uncoded errors.
func GetCode(err error) Code {
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix. Uncoded errors
// are returned as is.
func UserMessage(err error) string {
	if e, ok := outermost(err); ok && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for input the
// user can fix (INVALID_*, NOT_FOUND, FILE_NOT_FOUND) and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch code := GetCode(err); {
	case strings.HasPrefix(string(code), "INVALID_"),
		code == ErrCodeNotFound,
		code == ErrCodeFileNotFound:
		return 2
	default:
		return 1
	}
}
