package pace

import "log/slog"

// Option defines optional settings for a Gate or Sequence.
//
// WithClock replaces the wall clock used to measure and wait.
// WithLogger enables debug records for issued waits.
type Option func(*options)

type options struct {
	clock  Clock
	logger *slog.Logger
}

func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
