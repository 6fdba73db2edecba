package soft

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/softly/assert"
)

var _ assert.Reporter = (*Soft)(nil)

// Soft is a validation surface that diverts recognized failures into a [Collector] instead of letting them propagate.
// Everything else about a wrapped call, including its return value and any unrelated panic, is left as-is.
type Soft struct {
	collector *Collector
	conf      *config
}

// New creates a [Soft] with its own [Collector].
func New(opts ...Option) *Soft {
	conf := newConfig(opts)
	return &Soft{
		collector: newCollector(conf),
		conf:      conf,
	}
}

// Bind creates a [Soft] that reports to an existing [Collector].
// This allows multiple validation surfaces to share one Collector within a unit of work.
// Options that configure a Collector are ignored.
//
// Passing a nil Collector will panic.
func Bind(collector *Collector, opts ...Option) *Soft {
	if collector == nil {
		panic("nil collector")
	}
	return &Soft{
		collector: collector,
		conf:      newConfig(opts),
	}
}

// Collector returns the [Collector] this Soft reports to.
func (s *Soft) Collector() *Collector {
	return s.collector
}

// Failed returns true if any failures have been captured and not yet finalized.
func (s *Soft) Failed() bool {
	return s.collector.Len() > 0
}

// Finalize finalizes the underlying [Collector].
func (s *Soft) Finalize() error {
	return s.collector.Finalize()
}

func (s *Soft) record(err error) {
	rec := recordOf(err)
	s.collector.Record(rec)
	s.conf.log.Debug("Captured validation failure", "message", rec.Message(), "caller", rec.Caller())
}

// Report satisfies [assert.Reporter], recording the failure.
func (s *Soft) Report(f *assert.Failure) {
	if f == nil {
		return
	}
	s.record(f)
}

// Errorf records a failure reported through testify's TestingT interface.
func (s *Soft) Errorf(format string, args ...any) {
	s.record(errors.New(strings.TrimSpace(fmt.Sprintf(format, args...))))
}

// FailNow does nothing, so "require" style assertions continue like "assert" style ones.
// The failure itself was already recorded by the preceding call to [Soft.Errorf].
func (s *Soft) FailNow() {}

func (s *Soft) Helper() {}

// Check runs fn, recording a recognized failure if fn panics with one.
// Any other panic is propagated with its original value.
// Returns true if fn completed normally.
func (s *Soft) Check(fn func()) (passed bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := s.conf.recognize(r)
		if !ok {
			panic(r)
		}
		s.record(err)
		passed = false
	}()
	fn()
	return true
}

// CheckErr records err if it's a recognized failure, and returns nil to signal that it was handled.
// A nil error, or an error that isn't recognized, is returned unchanged.
func (s *Soft) CheckErr(err error) error {
	if err == nil {
		return nil
	}
	if recognized, ok := s.conf.recognize(err); ok {
		s.record(recognized)
		return nil
	}
	return err
}

// Call runs call with recv, and returns its result.
// If call fails with a recognized failure then it's recorded, and recv is returned so a chain of calls may continue.
func Call[S any](s *Soft, recv S, call func(S) S) S {
	out := recv
	s.Check(func() {
		out = call(recv)
	})
	return out
}

// That creates an [assert.Subject] that reports to s.
func That[T comparable](s *Soft, actual T) *assert.Subject[T] {
	return assert.ThatWith(s, actual)
}

// ThatSlice creates an [assert.SliceSubject] that reports to s.
func ThatSlice[T comparable](s *Soft, actual []T) *assert.SliceSubject[T] {
	return assert.ThatSliceWith(s, actual)
}
