package collation

import (
	"time"
)

// SlotDescriptor carries everything one authoring attempt needs: the slot
// being claimed, the inherent data the block must embed, the chain head to
// build on, and the real-time budget. It is constructed fresh per attempt,
// owned by that attempt alone, and discarded when the attempt resolves.
type SlotDescriptor struct {
	// Slot is the index of the time window: floor(wall clock / duration).
	Slot uint64

	// Duration is the fixed width of one slot.
	Duration time.Duration

	// InherentData is the bag of environment facts assembled for this
	// attempt.
	InherentData InherentData

	// ChainHead is the secondary-chain header the attempt builds on.
	ChainHead *Header

	// Timestamp is the wall-clock instant the attempt started.
	Timestamp time.Time

	// Deadline is the instant by which the attempt should resolve. It is
	// a fixed budget past Timestamp, independent of Duration.
	Deadline time.Time
}

// RemainingBudget returns how much of the attempt budget is left at the
// given instant. It can be negative once the deadline has passed.
func (s *SlotDescriptor) RemainingBudget(now time.Time) time.Duration {
	return s.Deadline.Sub(now)
}
