package pace

import (
	"context"
	"iter"
	"time"
)

// Sequence is a Producer that releases the values of a wrapped Producer
// no faster than one per interval. Values and their order are unchanged.
//
// A Sequence owns its Producer: nothing else should pull from it once it
// has been wrapped. A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	gate  *Gate
	inner Producer[T]
	done  bool

	// held is a value the producer yielded after reporting exhaustion,
	// kept across a cancelled NextContext wait.
	held    T
	holding bool
}

// Wrap returns p paced at interval. The first value is held back until
// interval has passed since Wrap was called. Wrap does not validate
// interval; a value of zero or less disables pacing. See [WrapConfig] for
// a validating constructor.
func Wrap[T any](p Producer[T], interval time.Duration, opts ...Option) *Sequence[T] {
	return &Sequence[T]{
		gate:  NewGate(interval, opts...),
		inner: p,
	}
}

// Paced returns seq paced at interval. Pacing starts over each time the
// result is ranged, with the first element held back a full interval from
// the start of the range.
func Paced[T any](seq iter.Seq[T], interval time.Duration, opts ...Option) iter.Seq[T] {
	return func(yield func(T) bool) {
		next, stop := iter.Pull(seq)
		defer stop()

		Wrap(ProducerFunc[T](next), interval, opts...).All()(yield)
	}
}

// Next waits out the remainder of the interval and then pulls the next
// value from the wrapped Producer. The returned bool is false once the
// Producer is exhausted; pulls after that are not delayed unless the
// Producer yields a value again, which is then held back like any other.
func (s *Sequence[T]) Next() (T, bool) {
	if s.holding {
		s.gate.Wait()
		return s.release(), true
	}

	if s.done {
		v, ok := s.inner.Next()
		if !ok {
			return v, false
		}
		s.done = false
		s.gate.Wait()

		return v, true
	}

	s.gate.Wait()

	return s.pull()
}

// NextContext is Next with a wait that ends early if ctx does. In that case
// the error wraps [ErrContextEnded] and the next call is still paced against
// the last released value. A value already pulled from the Producer is not
// lost: the next successful call returns it.
func (s *Sequence[T]) NextContext(ctx context.Context) (T, bool, error) {
	var zero T

	if s.holding {
		if _, err := s.gate.WaitContext(ctx); err != nil {
			return zero, false, err
		}
		return s.release(), true, nil
	}

	if s.done {
		v, ok := s.inner.Next()
		if !ok {
			return v, false, nil
		}
		s.done = false

		if _, err := s.gate.WaitContext(ctx); err != nil {
			s.held, s.holding = v, true
			return zero, false, err
		}

		return v, true, nil
	}

	if _, err := s.gate.WaitContext(ctx); err != nil {
		return zero, false, err
	}

	v, ok := s.pull()

	return v, ok, nil
}

func (s *Sequence[T]) pull() (T, bool) {
	v, ok := s.inner.Next()
	s.done = !ok

	return v, ok
}

func (s *Sequence[T]) release() T {
	v := s.held

	var zero T
	s.held, s.holding = zero, false

	return v
}

// All returns an iterator over the remaining values, pacing each pull.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Interval returns the minimum gap between released values.
func (s *Sequence[T]) Interval() time.Duration {
	return s.gate.Interval()
}

// Last returns the instant the most recent wait completed, or the
// construction time before the first pull.
func (s *Sequence[T]) Last() time.Time {
	return s.gate.Last()
}
