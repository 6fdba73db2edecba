package assert

import (
	"fmt"
	"slices"
)

// Reporter receives a [*Failure] when a [Subject] or [SliceSubject] check does not hold.
type Reporter interface {
	Report(f *Failure)
}

// ReporterFunc adapts a function to the [Reporter] interface.
type ReporterFunc func(f *Failure)

func (fn ReporterFunc) Report(f *Failure) {
	fn(f)
}

// Panicking is the [Reporter] used by [That] and [ThatSlice].
// It raises every failure as a panic, aborting the chain at the first violation.
var Panicking Reporter = ReporterFunc(func(f *Failure) {
	panic(f)
})

// Subject is a fluent chain of checks against a single comparable value.
// Every method returns the receiver, whether the check held or not, so calls can continue to be chained when the [Reporter] doesn't panic.
type Subject[T comparable] struct {
	actual   T
	desc     string
	reporter Reporter
}

// That creates a [Subject] that panics at the first failed check.
func That[T comparable](actual T) *Subject[T] {
	return ThatWith(Panicking, actual)
}

// ThatWith creates a [Subject] that reports failed checks to the given [Reporter].
// A nil reporter is the same as [Panicking].
func ThatWith[T comparable](reporter Reporter, actual T) *Subject[T] {
	if reporter == nil {
		reporter = Panicking
	}
	return &Subject[T]{actual: actual, reporter: reporter}
}

// As sets a description that prefixes the message of every subsequent failure.
func (s *Subject[T]) As(desc string, args ...any) *Subject[T] {
	s.desc = fmt.Sprintf(desc, args...)
	return s
}

// Actual returns the value under test.
func (s *Subject[T]) Actual() T {
	return s.actual
}

func (s *Subject[T]) fail(format string, args ...any) {
	msg := describe(s.desc, fmt.Sprintf(format, args...))
	s.reporter.Report(newFailure(4, msg, msg, nil))
}

func (s *Subject[T]) IsEqualTo(expected T) *Subject[T] {
	if s.actual != expected {
		s.fail("expected %v but was %v", expected, s.actual)
	}
	return s
}

func (s *Subject[T]) IsNotEqualTo(other T) *Subject[T] {
	if s.actual == other {
		s.fail("expected value not to be %v", other)
	}
	return s
}

func (s *Subject[T]) IsZero() *Subject[T] {
	var zero T
	if s.actual != zero {
		s.fail("expected zero value but was %v", s.actual)
	}
	return s
}

func (s *Subject[T]) IsNotZero() *Subject[T] {
	var zero T
	if s.actual == zero {
		s.fail("expected non-zero value")
	}
	return s
}

// IsIn checks that the actual value is one of vals.
func (s *Subject[T]) IsIn(vals ...T) *Subject[T] {
	if !slices.Contains(vals, s.actual) {
		s.fail("expected %v to be one of %v", s.actual, vals)
	}
	return s
}

// IsNotIn checks that the actual value is none of vals.
func (s *Subject[T]) IsNotIn(vals ...T) *Subject[T] {
	if slices.Contains(vals, s.actual) {
		s.fail("expected %v not to be one of %v", s.actual, vals)
	}
	return s
}

// Satisfies checks the actual value against an arbitrary predicate, using label to describe it.
func (s *Subject[T]) Satisfies(label string, predicate func(T) bool) *Subject[T] {
	if !predicate(s.actual) {
		s.fail("expected %v to satisfy '%s'", s.actual, label)
	}
	return s
}

// SliceSubject is a fluent chain of checks against a slice.
type SliceSubject[T comparable] struct {
	actual   []T
	desc     string
	reporter Reporter
}

// ThatSlice creates a [SliceSubject] that panics at the first failed check.
func ThatSlice[T comparable](actual []T) *SliceSubject[T] {
	return ThatSliceWith(Panicking, actual)
}

// ThatSliceWith creates a [SliceSubject] that reports failed checks to the given [Reporter].
// A nil reporter is the same as [Panicking].
func ThatSliceWith[T comparable](reporter Reporter, actual []T) *SliceSubject[T] {
	if reporter == nil {
		reporter = Panicking
	}
	return &SliceSubject[T]{actual: actual, reporter: reporter}
}

func (s *SliceSubject[T]) As(desc string, args ...any) *SliceSubject[T] {
	s.desc = fmt.Sprintf(desc, args...)
	return s
}

func (s *SliceSubject[T]) Actual() []T {
	return s.actual
}

func (s *SliceSubject[T]) fail(format string, args ...any) {
	msg := describe(s.desc, fmt.Sprintf(format, args...))
	s.reporter.Report(newFailure(4, msg, msg, nil))
}

// Contains checks that every one of vals is present, reporting one failure per missing value.
func (s *SliceSubject[T]) Contains(vals ...T) *SliceSubject[T] {
	for _, val := range vals {
		if !slices.Contains(s.actual, val) {
			s.fail("expected list to contain %v", val)
		}
	}
	return s
}

func (s *SliceSubject[T]) DoesNotContain(vals ...T) *SliceSubject[T] {
	for _, val := range vals {
		if slices.Contains(s.actual, val) {
			s.fail("expected list not to contain %v", val)
		}
	}
	return s
}

func (s *SliceSubject[T]) HasLen(n int) *SliceSubject[T] {
	if len(s.actual) != n {
		s.fail("expected length %d but was %d", n, len(s.actual))
	}
	return s
}

func (s *SliceSubject[T]) IsEmpty() *SliceSubject[T] {
	if len(s.actual) > 0 {
		s.fail("expected empty list but was %v", s.actual)
	}
	return s
}

func (s *SliceSubject[T]) IsNotEmpty() *SliceSubject[T] {
	if len(s.actual) == 0 {
		s.fail("expected non-empty list")
	}
	return s
}

func describe(desc, msg string) string {
	if len(desc) == 0 {
		return msg
	}
	return "[" + desc + "] " + msg
}
