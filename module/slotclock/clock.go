// Package slotclock derives the current slot window from wall-clock time.
package slotclock

import (
	"time"
)

const (
	// DefaultSlotDuration is the width of one authoring slot.
	DefaultSlotDuration = 12 * time.Second

	// DefaultAttemptBudget is how long a single authoring attempt may
	// take. It is deliberately much smaller than the slot duration so a
	// slow attempt cannot eat into the next slot.
	DefaultAttemptBudget = 500 * time.Millisecond
)

// Window is one attempt's view of time: the slot index it falls into and
// the instant by which the attempt should resolve.
type Window struct {
	Slot     uint64
	Deadline time.Time
}

// Calculator computes slot windows. It is pure and stateless; the slot
// index is recomputed from the wall clock on every call and never stored.
type Calculator struct {
	slotDuration  time.Duration
	attemptBudget time.Duration
}

// Option can override a default of the Calculator.
type Option func(*Calculator)

// WithSlotDuration overrides the slot duration.
func WithSlotDuration(d time.Duration) Option {
	return func(c *Calculator) {
		c.slotDuration = d
	}
}

// WithAttemptBudget overrides the per-attempt time budget.
func WithAttemptBudget(a time.Duration) Option {
	return func(c *Calculator) {
		c.attemptBudget = a
	}
}

// NewCalculator returns a calculator with the default slot duration and
// attempt budget, modified by any options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		slotDuration:  DefaultSlotDuration,
		attemptBudget: DefaultAttemptBudget,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.slotDuration <= 0 {
		panic("slot duration must be positive")
	}
	return c
}

// Window returns the slot window for the given instant: the slot index is
// floor(unix milliseconds / slot duration), the deadline is the instant
// plus the attempt budget. The deadline is independent of the slot
// duration on purpose.
func (c *Calculator) Window(now time.Time) Window {
	return Window{
		Slot:     uint64(now.UnixMilli() / c.slotDuration.Milliseconds()),
		Deadline: now.Add(c.attemptBudget),
	}
}

// SlotDuration returns the fixed width of one slot.
func (c *Calculator) SlotDuration() time.Duration {
	return c.slotDuration
}
