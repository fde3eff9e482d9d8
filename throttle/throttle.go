package throttle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/adamwoolhether/pace"
)

var (
	ErrNegativeInterval = errors.New("interval must not be negative")
	ErrWaitingFailed    = errors.New("pacer waiting failed")
	ErrContextEnded     = pace.ErrContextEnded
)

// pacer serializes callers through a single pace.Gate. turn is a
// one-slot semaphore so that queued callers can give up on their context.
type pacer struct {
	gate     *pace.Gate
	turn     chan struct{}
	interval time.Duration
	logFn    func() *slog.Logger
}

func newPacer(interval time.Duration, logFn func() *slog.Logger) (*pacer, error) {
	if interval < 0 {
		return nil, fmt.Errorf("interval[%s] %w", interval, ErrNegativeInterval)
	}
	if logFn == nil {
		logFn = func() *slog.Logger { return nil }
	}

	p := &pacer{
		gate:     pace.NewGate(interval),
		turn:     make(chan struct{}, 1),
		interval: interval,
		logFn:    logFn,
	}

	return p, nil
}

// wait blocks until it is the caller's turn to start, reporting how long
// that took in total.
func (p *pacer) wait(ctx context.Context) (time.Duration, error) {
	start := time.Now()

	select {
	case p.turn <- struct{}{}:
	case <-ctx.Done():
		return time.Since(start), fmt.Errorf("%w: queued: %w: %w", ErrWaitingFailed, ErrContextEnded, ctx.Err())
	}
	defer func() { <-p.turn }()

	if _, err := p.gate.WaitContext(ctx); err != nil {
		return time.Since(start), fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	return time.Since(start), nil
}

func (p *pacer) log(waited time.Duration, path string) {
	logger := p.logFn()
	if logger == nil || waited < time.Millisecond {
		return
	}

	logger.Info("throttle wait complete", "waited", waited.String(), "interval", p.interval.String(), "path", path)
}

// /////////////////////////////////////////////////////////////////

// throttle is an http.RoundTripper pacing outbound calls.
type throttle struct {
	pacer *pacer
	next  http.RoundTripper
}

// NewRoundTripper returns an http.RoundTripper that starts outbound requests
// at least interval apart. logFn lazily resolves the logger at request time,
// making option ordering irrelevant; it may be nil or return nil.
func NewRoundTripper(interval time.Duration, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	p, err := newPacer(interval, logFn)
	if err != nil {
		return nil, err
	}

	if next == nil {
		next = http.DefaultTransport
	}

	return &throttle{pacer: p, next: next}, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	waited, err := t.pacer.wait(ctx)
	if err != nil {
		return nil, err
	}
	t.pacer.log(waited, r.URL.Path)

	return t.next.RoundTrip(r)
}
