package paging

import (
	"fmt"
	"iter"
	"log/slog"
)

type (
	// entry is the page table record of a resident page.
	entry struct {
		frame    int
		modified bool
	}
	// MMU maps pages onto a fixed number of frames,
	// delegating victim selection to a [Policy].
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	MMU struct {
		policy Policy
		log    *slog.Logger
		pages  map[int]entry // Page table.
		frames []int         // Frame usage; free frames hold vacant.
		used   int
		stats  Stats
		debug  bool
	}
	// Option configures an [MMU] during [New].
	Option func(*MMU)
)

// MinimumFrames defines the lowest value supported by [New].
const MinimumFrames = 1

const vacant = -1

// New creates an [MMU] with the given number of frames,
// all initially free, using policy to choose victims.
// The policy is initialized for frames and must not be shared
// with another MMU.
func New(frames int, policy Policy, options ...Option) (*MMU, error) {
	if frames < MinimumFrames {
		return nil, minFramesError(frames)
	}
	if policy == nil {
		return nil, ErrInvalidPolicy
	}
	if err := policy.Init(frames); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}
	m := &MMU{
		policy: policy,
		log:    defaultLogger(),
		pages:  make(map[int]entry, frames),
		frames: make([]int, frames),
	}
	for frame := range m.frames {
		m.frames[frame] = vacant
	}
	for _, apply := range options {
		apply(m)
	}
	return m, nil
}

// Read references page without modifying it.
func (m *MMU) Read(page int) error {
	if page < 0 {
		return negativePageError(page)
	}
	m.load(page, false)
	return nil
}

// Write references page and marks it modified.
// A modified page is written back to disk when it is evicted.
func (m *MMU) Write(page int) error {
	if page < 0 {
		return negativePageError(page)
	}
	m.load(page, true)
	return nil
}

// load makes page resident and returns its frame.
func (m *MMU) load(page int, write bool) int {
	if resident, hit := m.pages[page]; hit {
		resident.modified = resident.modified || write
		m.pages[page] = resident
		m.stats.Hits++
		m.policy.Accessed(resident.frame)
		m.trace("page already resident",
			slog.Int("page", page), slog.Int("frame", resident.frame))
		return resident.frame
	}
	m.stats.PageFaults++
	m.stats.DiskReads++
	m.trace("page fault", slog.Int("page", page))
	frame, free := m.freeFrame()
	if free {
		m.trace("using free frame", slog.Int("frame", frame))
	} else {
		frame = m.evict()
	}
	m.pages[page] = entry{frame: frame, modified: write}
	m.frames[frame] = page
	m.used++
	m.policy.Loaded(frame)
	m.trace("loaded page",
		slog.Int("page", page), slog.Int("frame", frame))
	if debugging {
		m.checkInvariants()
	}
	return frame
}

// freeFrame returns the lowest numbered free frame, if any.
func (m *MMU) freeFrame() (int, bool) {
	if m.used == len(m.frames) {
		return 0, false
	}
	for frame, page := range m.frames {
		if page == vacant {
			return frame, true
		}
	}
	panic(invariantError(
		"%d of %d frames in use but none are free",
		m.used, len(m.frames)))
}

// evict removes the policy's victim, writing it back if modified,
// and returns the frame it occupied.
func (m *MMU) evict() int {
	frame := m.policy.Victim(m)
	if !m.Occupied(frame) {
		panic(invariantError("policy chose frame %d which holds no page", frame))
	}
	victim := m.frames[frame]
	if m.pages[victim].modified {
		m.stats.DiskWrites++
		m.trace("writing modified page to disk", slog.Int("page", victim))
	}
	delete(m.pages, victim)
	m.frames[frame] = vacant
	m.used--
	m.stats.Evictions++
	m.policy.Evicted(frame)
	m.trace("replaced page",
		slog.Int("page", victim), slog.Int("frame", frame))
	return frame
}

func (m *MMU) checkInvariants() {
	assert(len(m.pages) == m.used && m.used <= len(m.frames),
		"page table and frame usage sizes diverged")
	for page, resident := range m.pages {
		assert(m.frames[resident.frame] == page,
			"page table and frame usage are not a bijection")
	}
	if checker, ok := m.policy.(checker); ok {
		checker.check(m)
	}
}

// Frames returns the number of frames; fixed by [New].
func (m *MMU) Frames() int { return len(m.frames) }

// Len returns the number of resident pages.
func (m *MMU) Len() int { return m.used }

// Occupied reports whether a page is resident in frame.
// Frames outside [0, Frames) are never occupied.
func (m *MMU) Occupied(frame int) bool {
	return frame >= 0 && frame < len(m.frames) &&
		m.frames[frame] != vacant
}

// Frame returns the frame holding page, if it is resident.
func (m *MMU) Frame(page int) (int, bool) {
	resident, ok := m.pages[page]
	return resident.frame, ok
}

// Dirty reports whether page is resident and
// has been written since it was loaded.
func (m *MMU) Dirty(page int) bool {
	return m.pages[page].modified
}

// Resident returns an iterator over the (unordered) resident pages.
func (m *MMU) Resident() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, page := range m.frames {
			if page == vacant {
				continue
			}
			if !yield(page) {
				return
			}
		}
	}
}
