package pace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

var ErrContextEnded = errors.New("pace context ended")

// Gate enforces a minimum interval between consecutive passes. It holds
// no values; [Sequence] pairs a Gate with a Producer.
//
// A Gate is not safe for concurrent use. Callers sharing one must
// serialize access to it.
type Gate struct {
	interval time.Duration
	last     time.Time
	clock    Clock
	logger   *slog.Logger
	sample   rate.Sometimes
}

// NewGate returns a Gate whose first pass is measured against the time of
// this call. An interval of zero or less never waits.
func NewGate(interval time.Duration, optFns ...Option) *Gate {
	opts := options{clock: realClock{}}
	for _, opt := range optFns {
		opt(&opts)
	}

	return &Gate{
		interval: interval,
		last:     opts.clock.Now(),
		clock:    opts.clock,
		logger:   opts.logger,
		sample:   rate.Sometimes{Interval: time.Second},
	}
}

// Interval returns the minimum gap between passes.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

// Last returns the instant of the most recent pass, or the construction
// time if there has been none.
func (g *Gate) Last() time.Time {
	return g.last
}

// remaining is the part of the interval not yet covered by the time
// elapsed since the last pass.
func (g *Gate) remaining() time.Duration {
	elapsed := g.clock.Now().Sub(g.last)
	if elapsed >= g.interval {
		return 0
	}

	return g.interval - elapsed
}

// Wait blocks until the interval has elapsed since the previous pass and
// records the current instant as the new pass. It returns the time spent
// blocked.
func (g *Gate) Wait() time.Duration {
	d := g.remaining()
	if d > 0 {
		g.clock.Sleep(d)
		g.logWait(d)
	}

	g.last = g.clock.Now()

	return d
}

// WaitContext is Wait, abandoned when ctx ends. An abandoned wait does not
// count as a pass: the next call is still measured against the previous one.
func (g *Gate) WaitContext(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	d := g.remaining()
	if d > 0 {
		select {
		case <-g.clock.After(d):
		case <-ctx.Done():
			return 0, fmt.Errorf("%w while waiting %s: %w", ErrContextEnded, d, ctx.Err())
		}

		g.logWait(d)
		trace.SpanFromContext(ctx).AddEvent("pace.wait", trace.WithAttributes(
			attribute.Int64("pace.waited_ns", d.Nanoseconds()),
			attribute.Int64("pace.interval_ns", g.interval.Nanoseconds()),
		))
	}

	g.last = g.clock.Now()

	return d, nil
}

func (g *Gate) logWait(d time.Duration) {
	if g.logger == nil {
		return
	}

	g.sample.Do(func() {
		g.logger.Debug("pace wait", "waited", d.String(), "interval", g.interval.String())
	})
}
