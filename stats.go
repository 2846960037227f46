package paging

// Stats is a snapshot of an [MMU]'s counters.
// Every counter is monotonically non-decreasing over the MMU's lifetime.
type Stats struct {
	// PageFaults counts references to non-resident pages.
	PageFaults uint64
	// DiskReads counts pages brought in from disk; one per fault.
	DiskReads uint64
	// DiskWrites counts modified pages written back on eviction.
	DiskWrites uint64
	// Hits counts references to resident pages.
	Hits uint64
	// Evictions counts pages removed to make room.
	Evictions uint64
}

// Stats returns a snapshot of the counters.
func (m *MMU) Stats() Stats { return m.stats }

// TotalPageFaults returns the number of references that faulted.
func (m *MMU) TotalPageFaults() uint64 { return m.stats.PageFaults }

// TotalDiskReads returns the number of pages read in from disk.
func (m *MMU) TotalDiskReads() uint64 { return m.stats.DiskReads }

// TotalDiskWrites returns the number of modified pages written back.
func (m *MMU) TotalDiskWrites() uint64 { return m.stats.DiskWrites }

// References returns the number of pages referenced; hits plus faults.
func (s Stats) References() uint64 { return s.Hits + s.PageFaults }

// FaultRate returns the fraction of references that faulted,
// or 0 before any reference.
func (s Stats) FaultRate() float64 {
	references := s.References()
	if references == 0 {
		return 0
	}
	return float64(s.PageFaults) / float64(references)
}
