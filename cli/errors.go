package cli

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/softly/soft"
)

// UsageError is a special purpose error used to signal that usage information should be shown to the user.
// This is intended to be used as an error response for [Command] validation.
type UsageError struct {
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError is used to create a [UsageError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

const (
	ExitOK     = 0 // ExitOK is returned by ExitCode for a nil error.
	ExitError  = 1 // ExitError is returned by ExitCode for any error that isn't otherwise classified.
	ExitUsage  = 2 // ExitUsage is returned by ExitCode for a UsageError.
	ExitFailed = 3 // ExitFailed is returned by ExitCode when the error is only a soft.AggregateError, meaning checks ran and some failed.
)

// ExitCode maps an error returned from [CommandSet.Exec] to a process exit code.
//
// An error that joins some other failure with a [*soft.AggregateError] is reported as [ExitError], since the other failure takes priority.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, &UsageError{}) {
		return ExitUsage
	}
	if _, ok := err.(*soft.AggregateError); ok {
		return ExitFailed
	}
	return ExitError
}
