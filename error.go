package paging

import "fmt"

type constError string

const (
	// ErrInvalidFrames may be returned from [New].
	ErrInvalidFrames = constError("invalid frame count")
	// ErrInvalidPolicy may be returned from [New] and [PolicyByName].
	ErrInvalidPolicy = constError("invalid policy")
	// ErrInvalidPage may be returned from [MMU.Read] and [MMU.Write].
	ErrInvalidPage = constError("invalid page number")
	// ErrInvariant is wrapped by the value of panics raised when
	// the page table, frame usage, and policy state disagree.
	// It is never returned.
	ErrInvariant = constError("invariant violation")
)

func (errStr constError) Error() string { return string(errStr) }

func minFramesError(frames int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidFrames, MinimumFrames, frames)
}

func negativePageError(page int) error {
	return fmt.Errorf(
		"%w: must be >=0 but %d was referenced",
		ErrInvalidPage, page)
}

func invariantError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
