package soft

import (
	"errors"
	"io"
	"log/slog"

	"github.com/saylorsolutions/softly/assert"
)

// Recognizer decides whether a panic value or returned error is a failed validation.
// If it is, the error to record is returned along with true.
type Recognizer func(signal any) (error, bool)

// RecognizeFailure is the default [Recognizer], matching an [*assert.Failure] anywhere in an error chain.
func RecognizeFailure(signal any) (error, bool) {
	f, ok := assert.AsFailure(signal)
	if !ok {
		return nil, false
	}
	if err, isErr := signal.(error); isErr {
		return err, true
	}
	return f, true
}

type config struct {
	log         *slog.Logger
	joinStr     string
	recognizers []Recognizer
	observers   []func(Record)
}

func newConfig(opts []Option) *config {
	conf := &config{
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		joinStr:     "\n",
		recognizers: []Recognizer{RecognizeFailure},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(conf)
		}
	}
	return conf
}

func (c *config) recognize(signal any) (error, bool) {
	for _, r := range c.recognizers {
		if err, ok := r(signal); ok {
			return err, true
		}
	}
	return nil, false
}

// Option configures a [Collector], [Soft], or [Unit].
type Option func(conf *config)

// WithLogger sets the logger used to report captured failures.
// Captured failures are logged at debug level. Failures that would otherwise be lost are logged at error level.
// By default nothing is logged.
func WithLogger(log *slog.Logger) Option {
	return func(conf *config) {
		if log != nil {
			conf.log = log
		}
	}
}

// WithJoin sets the string used to join record messages in [AggregateError.Error].
// The default is "\n".
func WithJoin(joinStr string) Option {
	return func(conf *config) {
		conf.joinStr = joinStr
	}
}

// WithRecognizer adds a [Recognizer] for signals that should be treated as failed validations.
// [RecognizeFailure] is always consulted first.
func WithRecognizer(r Recognizer) Option {
	return func(conf *config) {
		if r != nil {
			conf.recognizers = append(conf.recognizers, r)
		}
	}
}

// RecognizeErrors is a shortcut for [WithRecognizer] that matches any error satisfying [errors.Is] with one of targets.
func RecognizeErrors(targets ...error) Option {
	return WithRecognizer(func(signal any) (error, bool) {
		err, ok := signal.(error)
		if !ok {
			return nil, false
		}
		for _, target := range targets {
			if errors.Is(err, target) {
				return err, true
			}
		}
		return nil, false
	})
}

// OnRecord registers an observer that's called with every [Record] after it's added to a [Collector].
func OnRecord(observer func(Record)) Option {
	return func(conf *config) {
		if observer != nil {
			conf.observers = append(conf.observers, observer)
		}
	}
}
