// Package pace wraps a sequence producer so that consecutive values are
// released no faster than a fixed minimum interval apart.
//
// # Wrapping a Producer
//
// Any type with a Next() (T, bool) method is a [Producer]. [Wrap] returns a
// [Sequence] exposing the same contract:
//
//	s := pace.Wrap(pace.FromSlice([]int{0, 1, 2}), 100*time.Millisecond)
//	for v, ok := s.Next(); ok; v, ok = s.Next() {
//		fmt.Println(v)
//	}
//
// Each pull blocks until at least the interval has elapsed since the
// previous value was released. The first pull is measured against the
// moment the Sequence was built. Time the caller spends between pulls is
// credited against the next wait, and an overrun is never made up later.
// Once the wrapped producer reports exhaustion, further pulls are not
// delayed.
//
// # Range-over-func
//
// [Paced] attaches pacing to an [iter.Seq]:
//
//	for v := range pace.Paced(slices.Values(items), time.Second) {
//		process(v)
//	}
//
// # Cancellation
//
// [Sequence.Next] always sleeps to completion. [Sequence.NextContext] waits
// on a context instead, and gives up without pulling from the producer when
// the context ends:
//
//	v, ok, err := s.NextContext(ctx)
//	if errors.Is(err, pace.ErrContextEnded) { ... }
//
// For pacing work that is not a sequence of values, such as outbound HTTP
// requests, see [Gate] and the
// [github.com/adamwoolhether/pace/throttle] package.
package pace
