// Package m2 implements the second concurrent solving strategy:
// bidirectional parallel depth-first search with forward and reverse
// worker pools racing on shared per-branch OCCUPIED/DEAD bits,
// meeting at an overlap cell (§4.6, §4.7 of SPEC_FULL.md).
//
// Grounded on MTMazeStudentSolver.h's walkThread_DFS/firstJunction/
// followPath family and SkippingMazeSolver.h's Choice-stack pattern,
// with the exception-based "solution found" signal (SkippingMazeSolver
// throwing SolutionFoundSkip) replaced by the spec-mandated explicit
// found_solution/found_overlap atomics, per the Design Notes.
package m2

import (
	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
)

// frame is one stack entry during a worker's depth-first walk: the
// junction cell it landed on, the corridor steps taken to reach it
// from the parent frame (for the root frame, the forced corridor from
// the worker's Start or End cell, empty if that cell is already a
// junction), the remaining
// untried branches at this junction, and whether this cell already
// carried the opposite pool's parent tag on arrival.
//
// Unifying the original's duplicated Choice/Junction types per the
// Design Notes, and storing the corridor steps directly (rather than
// replaying the maze during reconstruction, as §4.7 describes) is a
// deliberate simplification recorded in DESIGN.md: it trades a small
// amount of memory (bounded by path length, not maze size) for a
// reconstruction that is a straight concatenation instead of a
// second maze walk.
type frame struct {
	at        position.Position
	steps     []position.Direction
	branches  cellgrid.Branches
	isOverlap bool
}

// followCorridor walks from `at` in direction `d`, continuing through
// forced single-option corridors, until reaching target or a real
// junction (a cell whose remaining move count, with the arrival
// direction excluded, is not exactly one). It returns the landing
// cell and the full sequence of steps taken.
func followCorridor(g *cellgrid.Grid, at position.Position, d position.Direction, target position.Position) (landing position.Position, steps []position.Direction) {
	cur := at
	for {
		steps = append(steps, d)
		cur = cur.Move(d)
		if cur == target {
			return cur, steps
		}
		moves := g.GetMoves(cur).Remove(position.Reverse(d))
		if moves.Size() != 1 {
			return cur, steps
		}
		d, _ = moves.PopFront(cellgrid.ScanOrderWalker)
	}
}

// followFromRoot is followCorridor specialized for a worker's
// starting cell, which has no arrival direction to exclude.
func followFromRoot(g *cellgrid.Grid, root, target position.Position) (landing position.Position, steps []position.Direction) {
	cur := root
	moves := g.GetMoves(cur)
	for cur != target && moves.Size() == 1 {
		var d position.Direction
		d, _ = moves.PopFront(cellgrid.ScanOrderWalker)
		steps = append(steps, d)
		cur = cur.Move(d)
		moves = g.GetMoves(cur).Remove(position.Reverse(d))
	}
	return cur, steps
}
