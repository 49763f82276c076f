// Package signal defines the Store interface for reading and writing named
// ECU signals, with in-memory and SQLite-backed implementations.
package signal

import (
	"log/slog"
)

// Store is the bus surface the scenario drives. A real transport client
// (CAN, XCP, vendor middleware) replaces the mock by satisfying this
// interface.
type Store interface {
	// Write sets name to value. Writing a name that was never seeded
	// creates it.
	Write(name string, value int)

	// Read returns the current value of name. ok is false when name was
	// never seeded or written; a present zero and an absent signal are
	// distinct outcomes.
	Read(name string) (value int, ok bool)
}

// Observer is notified of every signal access after it has been applied.
type Observer interface {
	SignalWritten(name string, value int)
	SignalRead(name string, value int, present bool)
}

// Option configures a store.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	observers []Observer
}

// WithLogger sets the logger used for per-access debug lines.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithObserver registers an observer. May be given more than once.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

func (o options) wrote(name string, value int) {
	o.logger.Debug("signal write", "signal", name, "value", value)
	for _, obs := range o.observers {
		obs.SignalWritten(name, value)
	}
}

func (o options) read(name string, value int, present bool) {
	if present {
		o.logger.Debug("signal read", "signal", name, "value", value)
	} else {
		o.logger.Debug("signal read", "signal", name, "present", false)
	}
	for _, obs := range o.observers {
		obs.SignalRead(name, value, present)
	}
}
