package assert

import (
	"errors"
	"fmt"
	"runtime"
)

// Failure is raised when a validation does not hold.
// It's comparable with [errors.Is] against any other *Failure, and unwraps to its cause if one was given.
type Failure struct {
	msg    string
	text   string
	caller string
	cause  error
}

// NewFailure creates a [Failure] with the given message and optional cause.
// The caller of NewFailure is recorded as the failure site.
func NewFailure(msg string, cause error) *Failure {
	text := msg
	if cause != nil && cause.Error() != "" {
		text = msg + ": " + cause.Error()
	}
	return newFailure(3, msg, text, cause)
}

// Failf creates a [Failure] from a format string.
// The "%w" verb may be used to attach a cause.
func Failf(format string, args ...any) *Failure {
	err := fmt.Errorf(format, args...)
	return newFailure(3, err.Error(), err.Error(), errors.Unwrap(err))
}

func newFailure(skip int, msg, text string, cause error) *Failure {
	return &Failure{
		msg:    msg,
		text:   text,
		caller: callerDetails(skip),
		cause:  cause,
	}
}

func callerDetails(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

func (f *Failure) Error() string {
	return f.text
}

// Message returns the failure message.
// For a failure created with [NewFailure] this excludes the cause.
func (f *Failure) Message() string {
	return f.msg
}

// Caller returns the 'file#line' where the failure was raised, or "unknown".
func (f *Failure) Caller() string {
	return f.caller
}

func (f *Failure) Unwrap() error {
	return f.cause
}

func (f *Failure) Is(err error) bool {
	_, ok := err.(*Failure)
	return ok
}

// AsFailure extracts a [*Failure] from a recovered panic value or an error chain.
func AsFailure(signal any) (*Failure, bool) {
	switch v := signal.(type) {
	case *Failure:
		return v, v != nil
	case error:
		var f *Failure
		if errors.As(v, &f) {
			return f, true
		}
	}
	return nil, false
}
