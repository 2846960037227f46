package paging

import "github.com/djdv/go-paging/internal/ring"

type (
	// dial is a position on the clock face; one per frame.
	dial = ring.Ring[slot]
	slot struct {
		frame int
		// resident is true while a page occupies the frame;
		// the reference bit is only meaningful while it is set.
		resident,
		// referenced is set on load and access;
		// cleared when the hand passes over the frame.
		referenced bool
	}
	// Clock evicts with the second-chance (CLOCK) algorithm.
	// Constructed by [NewClock].
	Clock struct {
		positions []*dial // Indexed by frame.
		hand      *dial
	}
)

// NewClock returns a [Clock] policy.
// It is sized when passed to [New]; the hand starts at frame 0.
func NewClock() *Clock { return new(Clock) }

func (c *Clock) Init(frames int) error {
	if frames < MinimumFrames {
		return minFramesError(frames)
	}
	face := ring.New[slot](frames)
	c.positions = make([]*dial, 0, frames)
	for position := range face.Iter() {
		position.Value.frame = len(c.positions)
		c.positions = append(c.positions, position)
	}
	c.hand = face
	return nil
}

// Accessed gives frame a second chance.
func (c *Clock) Accessed(frame int) {
	slot := &c.positions[frame].Value
	if !slot.resident {
		panic(invariantError("%s: accessed frame %d is not resident", ClockName, frame))
	}
	slot.referenced = true
}

func (c *Clock) Loaded(frame int) {
	slot := &c.positions[frame].Value
	slot.resident = true
	slot.referenced = true
}

func (c *Clock) Evicted(frame int) {
	slot := &c.positions[frame].Value
	slot.resident = false
	slot.referenced = false
}

// Victim sweeps from the hand, skipping free frames and clearing
// reference bits, until it finds an occupied frame whose bit is clear.
// The hand is left just past the victim.
func (c *Clock) Victim(residency Residency) int {
	// Every set bit is cleared on the first pass,
	// so a victim is found before the second pass completes.
	for range 2 * len(c.positions) {
		position := c.hand
		c.hand = position.Next()
		slot := &position.Value
		if !residency.Occupied(slot.frame) {
			continue
		}
		if !slot.referenced {
			return slot.frame
		}
		slot.referenced = false
	}
	panic(noVictimError(ClockName))
}

func (c *Clock) check(residency Residency) {
	assert(c.hand.Len() == residency.Frames(),
		"clock: face size differs from the frame count")
	for _, position := range c.positions {
		slot := position.Value
		assert(slot.resident == residency.Occupied(slot.frame),
			"clock: reference bit defined for a free frame or missing for an occupied one")
	}
}
