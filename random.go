package paging

import "math/rand"

// Random evicts a frame chosen uniformly from the occupied frames.
// Constructed by [NewRandom].
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a [Random] policy drawing from rng.
// If rng is nil, the entropy-seeded top-level source of math/rand is used.
// Tests should supply a fixed-seed source to make victims reproducible.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (*Random) Init(frames int) error {
	if frames < MinimumFrames {
		return minFramesError(frames)
	}
	return nil
}

func (*Random) Accessed(int) {}
func (*Random) Loaded(int)   {}
func (*Random) Evicted(int)  {}

func (r *Random) Victim(residency Residency) int {
	var (
		frames   = residency.Frames()
		occupied = residency.Len()
	)
	if occupied == 0 {
		panic(noVictimError(RandomName))
	}
	nth := r.intn(occupied)
	if occupied == frames {
		return nth
	}
	for frame := range frames {
		if !residency.Occupied(frame) {
			continue
		}
		if nth == 0 {
			return frame
		}
		nth--
	}
	panic(invariantError(
		"%s: residency reported %d occupied frames but fewer were found",
		RandomName, occupied))
}

func (r *Random) intn(n int) int {
	if r.rng == nil {
		return rand.Intn(n)
	}
	return r.rng.Intn(n)
}
