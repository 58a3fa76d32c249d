package m2

import (
	"sync/atomic"

	"github.com/azulmaze/mazerunner/position"
)

// shared holds the cross-worker coordination state §4.6/§5 describes:
// a CAS-guarded found_solution flag claimed by whichever forward
// worker first reaches End or an overlap cell, the overlap position
// it publishes (nil if it reached End directly), and a second
// CAS-guarded found_overlap flag claimed by whichever reverse worker's
// stack actually passes through that overlap cell.
//
// FoundSolution and FoundOverlap are the system's only two
// release/acquire-ordered values (§5); Go's atomic package gives every
// atomic operation sequentially-consistent ordering, which is strictly
// stronger than the release/acquire the spec requires, so no weaker
// primitive is reached for here.
type shared struct {
	foundSolution atomic.Bool
	foundOverlap  atomic.Bool

	overlapPos  atomic.Pointer[position.Position]
	forwardPath atomic.Pointer[[]position.Direction]
	reverseTail atomic.Pointer[[]frame]
}

func newShared() *shared {
	return &shared{}
}
