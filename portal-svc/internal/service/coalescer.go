package service

import (
	"sync"
	"time"
)

// Coalescer runs fn once after delay has passed without another Trigger. Each Trigger
// re-arms the timer; a timer superseded by a later Trigger does nothing when it fires.
type Coalescer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	armed   bool
	stopped bool
}

func NewCoalescer(delay time.Duration, fn func()) *Coalescer {
	return &Coalescer{delay: delay, fn: fn}
}

func (c *Coalescer) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	c.armed = true
	c.timer = time.AfterFunc(c.delay, func() { c.fire(seq) })
}

func (c *Coalescer) fire(seq uint64) {
	c.mu.Lock()
	if c.stopped || seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.armed = false
	c.timer = nil
	c.mu.Unlock()

	c.fn()
}

// Pending reports whether a run is scheduled but has not started yet.
func (c *Coalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.armed = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
