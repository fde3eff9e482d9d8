package pace

import "iter"

// Producer yields values one at a time. Next returns false once the
// sequence is exhausted, and should keep returning false afterwards.
type Producer[T any] interface {
	Next() (T, bool)
}

// ProducerFunc adapts a pull function, such as the one returned by
// [iter.Pull], to a Producer.
type ProducerFunc[T any] func() (T, bool)

func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}

// FromSlice returns a Producer yielding the elements of s in order.
func FromSlice[T any](s []T) Producer[T] {
	return &sliceProducer[T]{items: s}
}

type sliceProducer[T any] struct {
	items []T
	pos   int
}

func (p *sliceProducer[T]) Next() (T, bool) {
	if p.pos >= len(p.items) {
		var zero T
		return zero, false
	}

	v := p.items[p.pos]
	p.pos++

	return v, true
}

// SeqProducer pulls values from an [iter.Seq]. Stop must be called if the
// producer is abandoned before it is exhausted.
type SeqProducer[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq converts a push-style iterator into a Producer.
func FromSeq[T any](seq iter.Seq[T]) *SeqProducer[T] {
	next, stop := iter.Pull(seq)

	return &SeqProducer[T]{next: next, stop: stop}
}

func (p *SeqProducer[T]) Next() (T, bool) {
	return p.next()
}

// Stop releases the underlying iterator. Next returns false after Stop.
func (p *SeqProducer[T]) Stop() {
	p.stop()
}
