package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

// Now returns the current time with monotonic clock reading
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// PausableClock gates simulation ticks: frames always advance, simulation ticks only while running
// A paused clock can release single ticks through Step
type PausableClock struct {
	mu sync.Mutex

	paused       bool
	pauseStart   time.Time
	totalPaused  time.Duration
	pendingSteps int

	simTicks uint64
	frames   uint64

	time TimeProvider
}

// NewPausableClock creates a running clock; nil tp uses the system clock
func NewPausableClock(tp TimeProvider) *PausableClock {
	if tp == nil {
		tp = MonotonicTimeProvider{}
	}
	return &PausableClock{time: tp}
}

// Pause stops simulation ticks
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.time.Now()
}

// Resume continues simulation ticks and drops queued steps
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.totalPaused += c.time.Now().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.pendingSteps = 0
}

// Toggle flips the pause state and returns true if now paused
func (c *PausableClock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// IsPaused returns current pause state
func (c *PausableClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Step queues one simulation tick while paused; ignored while running
func (c *PausableClock) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		c.pendingSteps++
	}
}

// Advance records a frame and reports whether the simulation runs this frame
func (c *PausableClock) Advance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames++
	if c.paused {
		if c.pendingSteps == 0 {
			return false
		}
		c.pendingSteps--
	}
	c.simTicks++
	return true
}

// SimTicks returns the number of simulation ticks run
func (c *PausableClock) SimTicks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.simTicks
}

// Frames returns the number of frames advanced, paused or not
func (c *PausableClock) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (c *PausableClock) TotalPauseDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.totalPaused
	if c.paused {
		total += c.time.Now().Sub(c.pauseStart)
	}
	return total
}

// ResetTicks zeroes the simulation tick count and drops queued steps
func (c *PausableClock) ResetTicks() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.simTicks = 0
	c.pendingSteps = 0
}
