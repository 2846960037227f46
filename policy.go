package paging

import (
	"fmt"
	"math/rand"
	"strings"
)

type (
	// Policy decides which occupied frame to evict when no frame is free.
	// The [MMU] calls its hooks synchronously as pages are accessed,
	// loaded, and evicted, so policy state never drifts from the resident set.
	Policy interface {
		// Init sizes the policy for a fixed number of frames.
		// It is called once, by [New], before any other method.
		Init(frames int) error
		// Accessed is called when a reference hits the page in frame.
		Accessed(frame int)
		// Loaded is called after a page has been loaded into frame.
		Loaded(frame int)
		// Evicted is called after the page in frame has been evicted.
		Evicted(frame int)
		// Victim returns an occupied frame to evict.
		// It is only called while every frame is occupied.
		Victim(Residency) int
	}
	// Residency is a read-only view of frame occupancy.
	Residency interface {
		// Frames returns the fixed number of frames.
		Frames() int
		// Len returns the number of occupied frames.
		Len() int
		// Occupied reports whether a page is resident in frame.
		Occupied(frame int) bool
	}
	// checker is implemented by policies that can
	// verify their state against the resident set.
	checker interface {
		check(Residency)
	}
)

// Names accepted by [PolicyByName].
const (
	RandomName = "random"
	LRUName    = "lru"
	ClockName  = "clock"
)

// PolicyByName returns a new policy for a configured name;
// one of [RandomName] (or "rand"), [LRUName], or [ClockName].
// Names are case-insensitive.
// rng is only used by [Random] and may be nil.
func PolicyByName(name string, rng *rand.Rand) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RandomName, "rand":
		return NewRandom(rng), nil
	case LRUName:
		return NewLRU(), nil
	case ClockName:
		return NewClock(), nil
	default:
		return nil, fmt.Errorf(
			"%w: %q is not one of %s, %s, %s",
			ErrInvalidPolicy, name,
			RandomName, LRUName, ClockName)
	}
}

func noVictimError(policy string) error {
	return invariantError("%s: victim requested with no occupied frame", policy)
}
