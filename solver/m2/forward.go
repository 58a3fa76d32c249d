package m2

import (
	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/internal/assert"
	"github.com/azulmaze/mazerunner/position"
)

// forwardWorker depth-first searches from Grid.Start using the fair
// round-robin branch selector (§4.8). The first forward worker to
// land on End, or on a cell the reverse pool has already tagged,
// claims foundSolution and publishes the reconstructed forward half
// of the path.
type forwardWorker struct {
	id    int
	grid  *cellgrid.Grid
	stack []frame
	sh    *shared
}

func newForwardWorker(id int, g *cellgrid.Grid, sh *shared, reserve int) *forwardWorker {
	root, steps := followFromRoot(g, g.Start, g.End)
	w := &forwardWorker{id: id, grid: g, sh: sh, stack: make([]frame, 0, reserve)}
	rf := frame{at: root, steps: steps, branches: g.NewBranches(root, id)}
	if root == g.End || g.ReverseTag(root) != position.Uninitialized {
		rf.isOverlap = true
	}
	w.stack = append(w.stack, rf)
	return w
}

// run executes the DFS loop until the stack empties (no solution
// reachable from this worker's remaining branches) or some forward
// worker claims foundSolution.
func (w *forwardWorker) run() {
	for len(w.stack) > 0 && !w.sh.foundSolution.Load() {
		top := &w.stack[len(w.stack)-1]

		if top.at == w.grid.End || top.isOverlap {
			if w.sh.foundSolution.CompareAndSwap(false, true) {
				w.publishWin(*top)
			}
			return
		}

		d := top.branches.Next(w.grid, top.at)
		if d == position.Uninitialized {
			dead := top.at
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.stack) > 0 {
				w.grid.SetBranchDead(dead)
			}
			continue
		}

		landing, steps := followCorridor(w.grid, top.at, d, w.grid.End)
		w.grid.SetBranchOccupied(landing)
		// exclude the direction just arrived from, or the worker would
		// immediately try to walk back down its own corridor.
		arrivedFrom := position.Reverse(steps[len(steps)-1])
		nf := frame{at: landing, steps: steps, branches: w.grid.NewBranches(landing, w.id).Remove(arrivedFrom)}
		if landing == w.grid.End || w.grid.ReverseTag(landing) != position.Uninitialized {
			nf.isOverlap = true
		}
		w.stack = append(w.stack, nf)
	}
}

// publishWin concatenates every frame's steps (root's first, since
// steps recorded corridor moves away from Start) into the full
// forward-half path and, if the winning cell was an overlap rather
// than End itself, publishes its position for the reverse pool.
func (w *forwardWorker) publishWin(winner frame) {
	path := make([]position.Direction, 0, len(w.stack)*4)
	for _, f := range w.stack {
		path = append(path, f.steps...)
	}
	w.sh.forwardPath.Store(&path)

	if winner.at != w.grid.End {
		pos := winner.at
		w.sh.overlapPos.Store(&pos)
	}

	assert.Assertf(len(w.stack) > 0, "bidfs: forward winner published with an empty stack")
}
