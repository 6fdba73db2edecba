package soft

import (
	"errors"
	"fmt"
	"strings"
)

// TB is the subset of [testing.TB] needed to bind a [Unit] to a test.
type TB interface {
	Helper()
	Cleanup(func())
	Error(args ...any)
}

// Test binds a new [Unit] to t, and returns its [Soft].
// All captured failures are reported with a single call to t.Error when the test and its subtests complete.
// This also happens if the test panics, so captured failures are reported alongside the panic.
func Test(t TB, opts ...Option) *Soft {
	t.Helper()
	u := NewUnit(opts...)
	_ = u.Begin()
	t.Cleanup(func() {
		t.Helper()
		if err := u.End(); err != nil {
			t.Error(Summary(err))
		}
	})
	return u.Soft()
}

// Summary renders an error returned from finalizing as a numbered list of its records.
// Errors that don't contain an [*AggregateError] are rendered with their Error method.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var agg *AggregateError
	if !errors.As(err, &agg) {
		return err.Error()
	}
	var buf strings.Builder
	noun := "failures"
	if agg.Len() == 1 {
		noun = "failure"
	}
	_, _ = fmt.Fprintf(&buf, "%d soft assertion %s:", agg.Len(), noun)
	for i, rec := range agg.records {
		_, _ = fmt.Fprintf(&buf, "\n%d) %s", i+1, rec.String())
	}
	return buf.String()
}
