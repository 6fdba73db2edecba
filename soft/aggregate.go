package soft

import (
	"slices"
	"strings"
)

// AggregateError is the single failure produced when a [Collector] with records is finalized.
//
// It can be inspected with [errors.Is] and [errors.As] to find any of the original failure signals.
type AggregateError struct {
	records []Record
	joinStr string
}

// Records returns the captured records in the order they occurred.
func (e *AggregateError) Records() []Record {
	return slices.Clone(e.records)
}

// Messages returns the message of each captured record, in order.
func (e *AggregateError) Messages() []string {
	msgs := make([]string, len(e.records))
	for i, rec := range e.records {
		msgs[i] = rec.Message()
	}
	return msgs
}

// Len returns the number of captured records.
func (e *AggregateError) Len() int {
	return len(e.records)
}

// Error satisfies the error interface.
func (e *AggregateError) Error() string {
	var buf strings.Builder
	for i, rec := range e.records {
		if i > 0 {
			buf.WriteString(e.joinStr)
		}
		if rec.err != nil {
			buf.WriteString(rec.err.Error())
		} else {
			buf.WriteString(rec.message)
		}
	}
	return buf.String()
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any failure in the AggregateError.
func (e *AggregateError) Unwrap() []error {
	errs := make([]error, 0, len(e.records))
	for _, rec := range e.records {
		if rec.err != nil {
			errs = append(errs, rec.err)
		}
	}
	return errs
}
