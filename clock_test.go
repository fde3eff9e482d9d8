package pace

import "time"

// fakeClock advances only when slept on. With block set, After never fires.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
	block bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	if c.block {
		return nil
	}

	c.Sleep(d)
	ch := make(chan time.Time, 1)
	ch <- c.now

	return ch
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}
