package main

import (
	"errors"
	"fmt"

	"github.com/llxisdsh/mbarrier/litmus"
)

const (
	exitOK        = 0
	exitError     = 1
	exitViolation = 2
	exitUsage     = 3
)

// usageError is a bad flag or argument.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case litmus.IsCode(err, litmus.CodeViolation):
		return exitViolation
	case isUsageError(err), litmus.IsCode(err, litmus.CodeInvalidConfig):
		return exitUsage
	default:
		return exitError
	}
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}
