package paging

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRU evicts the frame whose page was loaded or accessed least recently.
// Constructed by [NewLRU].
//
// Recency is tracked per frame; since resident pages and occupied frames
// are a bijection, this is the same order as tracking pages.
type LRU struct {
	recency *simplelru.LRU[int, struct{}]
}

// NewLRU returns an [LRU] policy.
// It is sized when passed to [New].
func NewLRU() *LRU { return new(LRU) }

func (l *LRU) Init(frames int) error {
	if frames < MinimumFrames {
		return minFramesError(frames)
	}
	recency, err := simplelru.NewLRU[int, struct{}](frames, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", LRUName, err)
	}
	l.recency = recency
	return nil
}

// Accessed moves frame to the most recently used position.
func (l *LRU) Accessed(frame int) {
	if _, ok := l.recency.Get(frame); !ok {
		panic(invariantError("%s: accessed frame %d is not tracked", LRUName, frame))
	}
}

// Loaded adds frame at the most recently used position.
func (l *LRU) Loaded(frame int) {
	if evicted := l.recency.Add(frame, struct{}{}); evicted {
		panic(invariantError(
			"%s: loading frame %d overflowed %d tracked frames",
			LRUName, frame, l.recency.Len()))
	}
}

func (l *LRU) Evicted(frame int) {
	if !l.recency.Remove(frame) {
		panic(invariantError("%s: evicted frame %d is not tracked", LRUName, frame))
	}
}

// Victim returns the least recently used frame.
// The frame stays tracked until [LRU.Evicted] is called for it.
func (l *LRU) Victim(Residency) int {
	frame, _, ok := l.recency.GetOldest()
	if !ok {
		panic(noVictimError(LRUName))
	}
	return frame
}

func (l *LRU) check(residency Residency) {
	assert(l.recency.Len() == residency.Len(),
		"lru: tracked frame count differs from the resident set")
	for _, frame := range l.recency.Keys() {
		assert(residency.Occupied(frame),
			"lru: tracks a frame that holds no page")
	}
}
