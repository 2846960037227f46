package paging_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/djdv/go-paging"
)

type policyConstructor struct {
	name string
	new  func() paging.Policy
}

// Fixed RNG seed for reproducibility.
const rngSeed = 1

func newReproducibleRNG() *rand.Rand {
	return rand.New(rand.NewSource(rngSeed))
}

func policyConstructors() []policyConstructor {
	return []policyConstructor{
		{paging.RandomName, func() paging.Policy { return paging.NewRandom(newReproducibleRNG()) }},
		{paging.LRUName, func() paging.Policy { return paging.NewLRU() }},
		{paging.ClockName, func() paging.Policy { return paging.NewClock() }},
	}
}

func newMMU(tb testing.TB, frames int, policy paging.Policy, options ...paging.Option) *paging.MMU {
	tb.Helper()
	mmu, err := paging.New(frames, policy, options...)
	if err != nil {
		tb.Fatal(err)
	}
	return mmu
}

func mustRead(tb testing.TB, mmu *paging.MMU, pages ...int) {
	tb.Helper()
	for _, page := range pages {
		if err := mmu.Read(page); err != nil {
			tb.Fatal(err)
		}
	}
}

func mustWrite(tb testing.TB, mmu *paging.MMU, pages ...int) {
	tb.Helper()
	for _, page := range pages {
		if err := mmu.Write(page); err != nil {
			tb.Fatal(err)
		}
	}
}

func residentSorted(mmu *paging.MMU) []int {
	return slices.Sorted(mmu.Resident())
}

func residentMatch(tb testing.TB, mmu *paging.MMU, want []int, msg string) {
	tb.Helper()
	got := residentSorted(mmu)
	want = slices.Sorted(slices.Values(want))
	if slices.Equal(got, want) {
		return
	}
	tb.Fatalf(
		"%s"+
			"\n\tgot: %v"+
			"\n\twant: %v",
		msg, got, want)
}

// checkResidency verifies the invariants observable through the public API.
func checkResidency(tb testing.TB, mmu *paging.MMU) {
	tb.Helper()
	var (
		resident = residentSorted(mmu)
		seen     = make(map[int]int, len(resident))
	)
	if len(resident) != mmu.Len() || mmu.Len() > mmu.Frames() {
		tb.Fatalf(
			"resident set does not fit in frames"+
				"\n\tresident: %d"+
				"\n\tlen: %d"+
				"\n\tframes: %d",
			len(resident), mmu.Len(), mmu.Frames())
	}
	for _, page := range resident {
		frame, ok := mmu.Frame(page)
		if !ok || !mmu.Occupied(frame) {
			tb.Fatalf("resident page %d has no occupied frame", page)
		}
		if other, dup := seen[frame]; dup {
			tb.Fatalf("pages %d and %d share frame %d", other, page, frame)
		}
		seen[frame] = page
	}
}

func mustPanicInvariant(tb testing.TB, fn func()) {
	tb.Helper()
	defer func() {
		tb.Helper()
		recovered := recover()
		if recovered == nil {
			tb.Fatal("expected an invariant violation panic")
		}
		err, ok := recovered.(error)
		if !ok || !errors.Is(err, paging.ErrInvariant) {
			tb.Fatalf("expected panic wrapping %v but got: %v",
				paging.ErrInvariant, recovered)
		}
	}()
	fn()
}
