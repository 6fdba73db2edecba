package soft

import (
	"fmt"

	"github.com/saylorsolutions/softly/assert"
)

// Record is a single captured validation failure.
// It's immutable once created.
type Record struct {
	message string
	caller  string
	err     error
}

func recordOf(err error) Record {
	if f, ok := assert.AsFailure(err); ok {
		return Record{message: f.Message(), caller: f.Caller(), err: err}
	}
	return Record{message: err.Error(), caller: "unknown", err: err}
}

// Message returns the human-readable failure message.
func (r Record) Message() string {
	return r.message
}

// Caller returns the 'file#line' where the failure was raised, or "unknown" if that isn't known.
func (r Record) Caller() string {
	return r.caller
}

// Err returns the original failure signal.
func (r Record) Err() error {
	return r.err
}

func (r Record) String() string {
	text := r.message
	if r.err != nil {
		text = r.err.Error()
	}
	if r.caller == "unknown" || len(r.caller) == 0 {
		return text
	}
	return fmt.Sprintf("%s (at %s)", text, r.caller)
}
