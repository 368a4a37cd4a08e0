package testutil

import (
	"sync"
	"time"
)

// StepClock is a thread-safe deterministic wall clock for tests: each
// Now() call returns the base time advanced by one more step. Feeding
// it to engine.WithClock makes edge created_at values, and therefore
// store ordering, fully reproducible.
//
// Unlike a fixed timestamp, the advancing step keeps "first encountered
// wins" ordering meaningful in tests that insert several edges quickly.
type StepClock struct {
	mu   sync.Mutex
	base time.Time
	step time.Duration
	n    int
}

// NewStepClock creates a clock starting at base, advancing by step on
// every Now() call.
func NewStepClock(base time.Time, step time.Duration) *StepClock {
	return &StepClock{base: base, step: step}
}

// NewDefaultStepClock creates a StepClock with the conventional test
// epoch (2024-03-01 12:00 UTC) and a one-second step.
func NewDefaultStepClock() *StepClock {
	return NewStepClock(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC), time.Second)
}

// Now returns the next timestamp in the sequence.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.base.Add(time.Duration(c.n) * c.step)
	c.n++
	return t
}

// Reset rewinds the clock so a scenario can re-run with identical
// timestamps.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}
