package m2

import (
	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
)

// reverseWorker depth-first searches from Grid.End, tagging every
// cell it visits with the reverse-parent direction (the same
// ReverseTagMask nibble the M1 painter uses) so the forward pool can
// recognize an overlap. It never claims foundSolution itself (§4.6);
// once some forward worker does, it unwinds its own stack to the
// published overlap cell and, if its stack actually passed through
// that cell, claims foundOverlap and publishes its stack for
// reconstruction.
type reverseWorker struct {
	id    int
	grid  *cellgrid.Grid
	stack []frame
	sh    *shared
}

func newReverseWorker(id int, g *cellgrid.Grid, sh *shared, reserve int) *reverseWorker {
	root, steps := followFromRoot(g, g.End, g.Start)
	tagReverse(g, g.End, steps)
	w := &reverseWorker{id: id, grid: g, sh: sh, stack: make([]frame, 0, reserve)}
	w.stack = append(w.stack, frame{at: root, steps: steps, branches: g.NewBranches(root, id)})
	return w
}

// tagReverse walks from `from` along `steps`, OR-ing the reverse
// parent-direction tag onto each cell it passes, exactly as the M1
// painter does (§4.4) — the reverse DFS pool maintains the same
// nibble so overlap detection is a single tag read.
func tagReverse(g *cellgrid.Grid, from position.Position, steps []position.Direction) {
	cur := from
	for _, d := range steps {
		cur = cur.Move(d)
		g.SetReverseTag(cur, position.Reverse(d))
	}
}

func (w *reverseWorker) run() {
	for len(w.stack) > 0 && !w.sh.foundSolution.Load() {
		top := &w.stack[len(w.stack)-1]

		d := top.branches.Next(w.grid, top.at)
		if d == position.Uninitialized {
			dead := top.at
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.stack) > 0 {
				w.grid.SetBranchDead(dead)
			}
			continue
		}

		landing, steps := followCorridor(w.grid, top.at, d, w.grid.Start)
		tagReverse(w.grid, top.at, steps)
		w.grid.SetBranchOccupied(landing)
		// exclude the direction just arrived from, same reason as forwardWorker.run.
		arrivedFrom := position.Reverse(steps[len(steps)-1])
		w.stack = append(w.stack, frame{at: landing, steps: steps, branches: w.grid.NewBranches(landing, w.id).Remove(arrivedFrom)})
	}

	w.participateInReconstruction()
}

// participateInReconstruction implements the reverse half of §4.6's
// "Driver" step: only the reverse worker whose own stack actually
// passed through the published overlap cell wins the race to publish
// the reconstruction tail.
func (w *reverseWorker) participateInReconstruction() {
	if !w.sh.foundSolution.Load() {
		return
	}
	overlap := w.sh.overlapPos.Load()
	if overlap == nil {
		return // the winning forward worker reached End directly
	}

	stack := w.stack
	for len(stack) > 0 && stack[len(stack)-1].at != *overlap {
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return // this worker's stack never visited the overlap cell
	}

	if w.sh.foundOverlap.CompareAndSwap(false, true) {
		w.sh.reverseTail.Store(&stack)
	}
}
