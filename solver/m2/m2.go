package m2

import (
	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/internal/assert"
	"github.com/azulmaze/mazerunner/position"
	"golang.org/x/sync/errgroup"
)

// Options configures strategy M2.
type Options struct {
	// ForwardWorkers is the size of the Start-rooted DFS pool. Zero
	// selects DefaultWorkersPerPool.
	ForwardWorkers int
	// ReverseWorkers is the size of the End-rooted DFS pool. Zero
	// selects DefaultWorkersPerPool.
	ReverseWorkers int
	// StackReserve pre-allocates every worker's frame stack. Zero
	// selects DefaultStackReserve.
	StackReserve int
}

// DefaultWorkersPerPool mirrors the original's fixed eight-thread
// forward/reverse pools (MTMazeStudentSolver's NUM_THREADS).
const DefaultWorkersPerPool = 8

// DefaultStackReserve pre-allocates each worker's frame stack against
// a reasonably deep maze without repeated slice growth. Duplicated
// from m1.DefaultStackReserve rather than imported, since m1 and m2
// are independent strategies that should not depend on each other for
// an unrelated tuning constant.
const DefaultStackReserve = 400_000

// Solve launches the M2 pipeline — ForwardWorkers DFS workers rooted
// at Start racing ReverseWorkers DFS workers rooted at End — and
// assembles the solution path once a forward worker claims
// foundSolution and, if it won via overlap rather than reaching End
// outright, the matching reverse worker publishes its tail (§4.6).
//
// Returns a nil path with no error if no worker ever reaches a
// solution (§7).
func Solve(grid *cellgrid.Grid, opts Options) ([]position.Direction, error) {
	fw := opts.ForwardWorkers
	if fw == 0 {
		fw = DefaultWorkersPerPool
	}
	rw := opts.ReverseWorkers
	if rw == 0 {
		rw = DefaultWorkersPerPool
	}
	reserve := opts.StackReserve
	if reserve == 0 {
		reserve = DefaultStackReserve
	}

	sh := newShared()

	forwardWorkers := make([]*forwardWorker, fw)
	for i := 0; i < fw; i++ {
		forwardWorkers[i] = newForwardWorker(i, grid, sh, reserve)
	}
	reverseWorkers := make([]*reverseWorker, rw)
	for i := 0; i < rw; i++ {
		reverseWorkers[i] = newReverseWorker(fw+i, grid, sh, reserve)
	}

	var g errgroup.Group
	for _, w := range forwardWorkers {
		w := w
		g.Go(func() error {
			w.run()
			return nil
		})
	}
	for _, w := range reverseWorkers {
		w := w
		g.Go(func() error {
			w.run()
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; Wait only blocks for join

	if !sh.foundSolution.Load() {
		return nil, nil
	}

	fp := sh.forwardPath.Load()
	assert.Assertf(fp != nil, "bidfs: foundSolution set without a published forward path")

	if sh.overlapPos.Load() == nil {
		return *fp, nil
	}

	tail := sh.reverseTail.Load()
	assert.Assertf(tail != nil, "bidfs: overlap published but no reverse worker completed reconstruction")

	full := append([]position.Direction{}, (*fp)...)
	frames := *tail
	for i := len(frames) - 1; i >= 0; i-- {
		steps := frames[i].steps
		for j := len(steps) - 1; j >= 0; j-- {
			full = append(full, position.Reverse(steps[j]))
		}
	}
	return full, nil
}
