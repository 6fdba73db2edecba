//go:build !noassert

package assert

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will disable assertion evaluation globally.
// This is concurrency safe, but can have side effects in other goroutines that use assertions.
func Disable() {
	disabled.Store(true)
}

// Enable can be used to re-enable assertion evaluation if Disable was called previously.
// Note that this is a global setting, and calling Disable or Enable can have unintended side effects in other goroutines that use assertions.
func Enable() {
	disabled.Store(false)
}

// violated builds the failure for an exported assertion, attributing it to that assertion's caller.
func violated(label string, detail string, cause error) *Failure {
	msg := fmt.Sprintf("assertion '%s' failed", label)
	if len(detail) > 0 {
		msg += ": " + detail
	}
	text := msg
	if cause != nil {
		text += ": " + cause.Error()
	}
	return newFailure(4, msg, text, cause)
}

// True will panic with a [*Failure] if result is not true.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		panic(violated(label, "", nil))
	}
}

// TrueFunc will panic with a [*Failure] if assertion returns false.
func TrueFunc(label string, assertion func() bool) {
	if disabled.Load() {
		return
	}
	if !assertion() {
		panic(violated(label, "", nil))
	}
}

// NotEmpty will panic with a [*Failure] if the length of the given value is 0.
// Note that types that can't return a length using [reflect.Value.Len] will cause a runtime panic, which is not a [*Failure].
func NotEmpty(label string, val any) {
	if disabled.Load() {
		return
	}
	if reflect.ValueOf(val).Len() == 0 {
		panic(violated(label, "value is empty", nil))
	}
}

// Equal will panic with a [*Failure] if actual is not equal to expected.
func Equal[T comparable](label string, expected, actual T) {
	if disabled.Load() {
		return
	}
	if expected != actual {
		panic(violated(label, fmt.Sprintf("expected %v but was %v", expected, actual), nil))
	}
}

// NoError will panic with a [*Failure] wrapping err if err is not nil.
func NoError(label string, err error) {
	if disabled.Load() {
		return
	}
	if err != nil {
		panic(violated(label, "unexpected error", err))
	}
}

// Fail will unconditionally panic with a [*Failure] built from the format string.
// The "%w" verb may be used to attach a cause.
func Fail(format string, args ...any) {
	if disabled.Load() {
		return
	}
	err := fmt.Errorf(format, args...)
	panic(newFailure(3, err.Error(), err.Error(), errors.Unwrap(err)))
}
