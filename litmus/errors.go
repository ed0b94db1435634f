package litmus

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a litmus failure.
type Code string

const (
	CodeViolation     Code = "ordering violation"
	CodeTimeout       Code = "timeout"
	CodeCanceled      Code = "canceled"
	CodeInvalidConfig Code = "invalid config"
)

// Error is returned by Run.
type Error struct {
	Op    string // litmus test name, e.g. "mp"
	Code  Code
	Round int // first failing round, -1 if not applicable
	Msg   string
	Inner error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	var parts []string
	if e.Op != "" {
		parts = append(parts, "test="+e.Op)
	}
	if e.Round >= 0 {
		parts = append(parts, fmt.Sprintf("round=%d", e.Round))
	}
	if len(parts) > 0 {
		return fmt.Sprintf("litmus: %s (%s)", msg, strings.Join(parts, " "))
	}
	return "litmus: " + msg
}

// Unwrap returns the wrapped error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is matches another *Error by code.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	return ok && e.Code == te.Code
}

func newError(code Code, round int, msg string) *Error {
	return &Error{Op: testName, Code: code, Round: round, Msg: msg}
}

func wrapError(code Code, inner error) *Error {
	return &Error{Op: testName, Code: code, Round: -1, Msg: inner.Error(), Inner: inner}
}

// IsCode checks if an error matches a specific error code
func IsCode(err error, code Code) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}
