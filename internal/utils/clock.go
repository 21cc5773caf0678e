package utils

import (
	"sync"
	"time"
)

// Clock abstracts the current time so token expiry can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// StubClock returns a manually controlled time.
type StubClock struct {
	now  time.Time
	lock sync.Mutex
}

func NewStubClock(now time.Time) *StubClock {
	return &StubClock{now: now.UTC()}
}

func (c *StubClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

func (c *StubClock) Set(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = now.UTC()
}

// Advance moves the clock forward by d.
func (c *StubClock) Advance(d time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
}
