// Package paging simulates a memory management unit (MMU) that maps an
// unbounded virtual page space onto a fixed number of physical frames.
//
// Every reference to a page that is not resident is a page fault.
// On a fault the [MMU] places the page in the lowest free frame;
// when no frame is free it asks its [Policy] for a victim,
// writes the victim back if it was modified, and reuses the victim's frame.
// The counters exposed by the MMU ([MMU.TotalPageFaults],
// [MMU.TotalDiskReads], [MMU.TotalDiskWrites]) are used to compare
// replacement policies over the same reference string.
//
// Glossary and invariants:
//
//   - Page
//
//     A unit of virtual memory, identified by a non-negative integer.
//
//   - Frame
//
//     A unit of physical memory, identified by an integer in [0, frames).
//     At most one page is resident in a frame.
//
//   - Page table
//
//     Maps each resident page to its frame and its modified (dirty) bit.
//
//   - Frame usage
//
//     The inverse of the page table; maps each occupied frame to its page.
//
//   - len(page table) == len(frame usage) <= frames.
//
//     The page table and frame usage are a bijection between
//     resident pages and occupied frames.
//
//   - Modified
//
//     Set by any write since the page was loaded.
//     Evicting a modified page costs one disk write; this is the only
//     source of disk writes.
//
// Policies:
//
//   - [Random]
//
//     Picks a victim uniformly from the occupied frames.
//     The source of randomness is injected so runs can be reproduced.
//
//   - [LRU]
//
//     Picks the frame whose page was touched (loaded or accessed)
//     least recently.
//
//   - [Clock]
//
//     Second chance. Each occupied frame has a reference bit that is set on
//     load and on access. The hand sweeps the frames, clearing set bits and
//     skipping free frames, and stops at the first occupied frame whose bit
//     is already clear. The hand keeps its position between faults.
//
// Policies only see the MMU through the [Residency] view and are driven
// exclusively by the MMU's hooks; they never reach into the page table.
//
// An MMU is not safe for concurrent use; callers sharing one must guard it.
package paging
