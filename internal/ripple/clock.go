package ripple

import (
	"sync"
	"time"
)

// Clock is a monotonic millisecond clock that wraps at 65536 ms.
type Clock interface {
	Now() uint16
}

// Elapsed returns the milliseconds since start. Unsigned subtraction keeps the
// result correct across a single wrap of the clock.
func Elapsed(c Clock, start uint16) uint16 {
	return c.Now() - start
}

// SystemClock reads process-relative monotonic time truncated to 16 bits.
type SystemClock struct {
	base time.Time
}

// NewSystemClock starts a clock at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{base: time.Now()}
}

// Now returns the truncated milliseconds since the clock was created.
func (c *SystemClock) Now() uint16 {
	return uint16(time.Since(c.base).Milliseconds() & 0xffff)
}

// ManualClock is a controllable clock for tests and replays.
type ManualClock struct {
	mu  sync.RWMutex
	now uint16
}

// NewManualClock creates a clock reading start.
func NewManualClock(start uint16) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time.
func (c *ManualClock) Now() uint16 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps the clock to ms.
func (c *ManualClock) Set(ms uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ms
}

// Advance moves the clock forward, wrapping at 65536 ms.
func (c *ManualClock) Advance(ms uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += ms
}
