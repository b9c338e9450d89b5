package staking

import (
	"sync"
	"time"
)

// Clock supplies the current time to the pool. The enrollment deadline is
// evaluated against it on every Stake call, so tests and simulation hosts
// can drive the window deterministically instead of waiting real days.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a settable time source for tests and simulation drivers.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock returns a manual clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (mc *ManualClock) Now() time.Time {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.now
}

// Set moves the clock to t.
func (mc *ManualClock) Set(t time.Time) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.now = t
}

// Advance moves the clock forward by d.
func (mc *ManualClock) Advance(d time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.now = mc.now.Add(d)
}
