package soft

import (
	"iter"
	"slices"
	"sync"
)

// Collector accumulates [Record] values in the order they were added.
// A Collector belongs to one unit of work, and should not be reused once it's finalized.
//
// A Collector is concurrency safe, so validation calls made from multiple goroutines may share one.
type Collector struct {
	mux       sync.Mutex
	records   []Record
	joinStr   string
	observers []func(Record)
}

// NewCollector creates an empty [Collector].
// Only the [WithJoin] and [OnRecord] options apply.
func NewCollector(opts ...Option) *Collector {
	return newCollector(newConfig(opts))
}

func newCollector(conf *config) *Collector {
	return &Collector{
		joinStr:   conf.joinStr,
		observers: conf.observers,
	}
}

// Record appends a [Record] to the Collector.
// Observers registered with [OnRecord] are called after the record is added.
func (c *Collector) Record(rec Record) {
	c.mux.Lock()
	c.records = append(c.records, rec)
	observers := c.observers
	c.mux.Unlock()

	for _, obs := range observers {
		obs(rec)
	}
}

// Len returns the number of records captured so far.
func (c *Collector) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return len(c.records)
}

// Records returns a copy of the records captured so far.
func (c *Collector) Records() []Record {
	c.mux.Lock()
	defer c.mux.Unlock()
	return slices.Clone(c.records)
}

// All iterates a snapshot of the records captured so far.
func (c *Collector) All() iter.Seq[Record] {
	return slices.Values(c.Records())
}

// Finalize returns nil if no records were captured.
// Otherwise, it returns an [*AggregateError] with every record in order, and clears the Collector.
//
// Calling Finalize again on a cleared Collector returns nil.
// Records added after Finalize are held for the next call, but this is not a supported way to restart a unit of work.
func (c *Collector) Finalize() error {
	c.mux.Lock()
	defer c.mux.Unlock()
	if len(c.records) == 0 {
		return nil
	}
	agg := &AggregateError{
		records: c.records,
		joinStr: c.joinStr,
	}
	c.records = nil
	return agg
}
