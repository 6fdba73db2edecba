package soft

import (
	"errors"
	"fmt"
	"sync"
)

// State is the lifecycle state of a [Unit].
type State int

const (
	Idle       State = iota // Idle is the state of a new Unit.
	Active                  // Active means validation calls are being collected.
	Finalizing              // Finalizing means the Collector is being finalized.
	Passed                  // Passed means no failures were captured.
	Failed                  // Failed means an AggregateError was produced.
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Finalizing:
		return "finalizing"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	ErrUnitStarted    = errors.New("unit of work already started")
	ErrUnitNotStarted = errors.New("unit of work not started")
)

// Unit binds a [Soft] to one bounded unit of work.
// The work begins with [Unit.Begin], and [Unit.End] finalizes it. [Unit.Run] does both around a function.
//
// A Unit should be used for exactly one unit of work.
type Unit struct {
	mux   sync.Mutex
	state State
	soft  *Soft
}

// NewUnit creates an idle [Unit] with its own [Soft].
func NewUnit(opts ...Option) *Unit {
	return &Unit{soft: New(opts...)}
}

// Soft returns the validation surface for this Unit.
func (u *Unit) Soft() *Soft {
	return u.soft
}

func (u *Unit) State() State {
	u.mux.Lock()
	defer u.mux.Unlock()
	return u.state
}

// Begin moves the Unit from [Idle] to [Active].
// Returns [ErrUnitStarted] if the Unit was already started.
func (u *Unit) Begin() error {
	u.mux.Lock()
	defer u.mux.Unlock()
	if u.state != Idle {
		return fmt.Errorf("%w: unit is %s", ErrUnitStarted, u.state)
	}
	u.state = Active
	return nil
}

// End finalizes the Unit, returning an [*AggregateError] if any failures were captured, or nil otherwise.
// This is the hook that a host should call after a unit of work completes.
//
// Returns [ErrUnitNotStarted] if [Unit.Begin] was never called.
// Calling End again after it has completed finalizes whatever was captured since, which is normally nothing.
func (u *Unit) End() error {
	u.mux.Lock()
	defer u.mux.Unlock()
	if u.state == Idle {
		return ErrUnitNotStarted
	}
	prev := u.state
	u.state = Finalizing
	err := u.soft.Finalize()
	switch {
	case err != nil:
		u.state = Failed
	case prev == Failed:
		u.state = Failed
	default:
		u.state = Passed
	}
	return err
}

// Hook returns [Unit.End] as a function, for hosts that accept an "after" callback.
func (u *Unit) Hook() func() error {
	return u.End
}

// Run begins the Unit, runs body, and ends the Unit.
//
// If body returns an error or panics with a recognized failure, then it's recorded like any other, and the aggregate is returned.
// If body returns an unrelated error, then that error is returned as-is when nothing was captured.
// Otherwise, it's joined with the aggregate using [errors.Join], with the unrelated error first.
// If body panics with an unrelated value, then the Unit is still ended and any captured failures are logged at error level before the original value is re-panicked.
func (u *Unit) Run(body func(s *Soft) error) error {
	if err := u.Begin(); err != nil {
		return err
	}
	bodyErr := u.runBody(body)
	if bodyErr != nil {
		bodyErr = u.soft.CheckErr(bodyErr)
	}
	agg := u.End()
	if bodyErr == nil {
		return agg
	}
	if agg == nil {
		return bodyErr
	}
	return errors.Join(bodyErr, agg)
}

func (u *Unit) runBody(body func(s *Soft) error) (err error) {
	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		if r == nil {
			// runtime.Goexit, which will continue once this returns.
			u.abandon("goroutine exited")
			return
		}
		if recognized, ok := u.soft.conf.recognize(r); ok {
			u.soft.record(recognized)
			return
		}
		u.abandon(r)
		panic(r)
	}()
	err = body(u.soft)
	completed = true
	return err
}

func (u *Unit) abandon(reason any) {
	var agg *AggregateError
	if errors.As(u.End(), &agg) {
		u.soft.conf.log.Error("Unit of work aborted with captured validation failures",
			"reason", fmt.Sprint(reason),
			"failures", agg.Messages(),
		)
	}
}

// Run is a shortcut for running body in a new [Unit].
func Run(body func(s *Soft) error, opts ...Option) error {
	return NewUnit(opts...).Run(body)
}
