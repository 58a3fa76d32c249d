// Package m1 implements the first concurrent solving strategy: row-band
// dead-end pruning (Pruner), a reverse-BFS parent-tag painter
// (Painter), and a forward corridor walker (Walker) that stops where
// the painter has already reached and reconstructs the rest from the
// painted tags.
//
// Grounded on MTMazeStudentSolver.h's PruneDeadCellsHeadChunk /
// PruneDeadCellsMiddleChunk / PruneDeadCellsTailChunk,
// walkThread_BFS_BT (the live painter) and walkThreadTB (the live
// walker) — see DESIGN.md.
package m1

import (
	"runtime"
	"sync/atomic"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
	"github.com/azulmaze/mazerunner/ring"
)

// DefaultStackReserve pre-allocates pruner/walker stacks the way the
// original VECTOR_RESERVE_SIZE does, per SPEC_FULL.md's supplemented
// features.
const DefaultStackReserve = 400_000

// Pruner owns a contiguous, half-open row range [RowStart, RowEnd)
// across the full grid width and collapses every degree-1 cell in
// that band, shipping cross-band notifications through up to two
// pairs of SPSC rings (one pair per boundary, to keep each ring
// strictly single-producer/single-consumer — the original source's
// single shared "inQue" per middle band is split here into
// InFromAbove/InFromBelow for that reason; see DESIGN.md).
type Pruner struct {
	Grid             *cellgrid.Grid
	RowStart, RowEnd int

	OutUp, OutDown           *ring.Ring // nil if this band has no neighbor on that side
	InFromAbove, InFromBelow *ring.Ring // nil symmetrically

	Stop *atomic.Bool

	StackReserve int // 0 means DefaultStackReserve
}

// Run seeds the local stack with every degree<=1 cell in the band
// (excluding Start/End) and loops collapsing dead ends until Stop is
// set, per §4.3.
func (pr *Pruner) Run() {
	reserve := pr.StackReserve
	if reserve == 0 {
		reserve = DefaultStackReserve
	}
	stack := make([]position.Position, 0, reserve)

	for row := pr.RowStart; row < pr.RowEnd; row++ {
		for col := 0; col < pr.Grid.Width; col++ {
			p := position.Position{Row: row, Col: col}
			if p == pr.Grid.Start || p == pr.Grid.End {
				continue
			}
			if pr.Grid.GetMoves(p).Size() <= 1 {
				stack = append(stack, p)
			}
		}
	}

	for !pr.Stop.Load() {
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pr.collapse(p, &stack)
		}
		pr.drainIncoming(&stack)
		runtime.Gosched()
	}
}

// collapse implements one iteration of §4.3 step 2a on a single
// popped position.
func (pr *Pruner) collapse(p position.Position, stack *[]position.Position) {
	if pr.Grid.IsDead(p) {
		return
	}

	moves := pr.Grid.GetMoves(p)
	pr.Grid.SetDead(p)

	d := moves.First(cellgrid.ScanOrderWalker)
	if d == position.Uninitialized {
		return // isolated dead cell: no neighbor to notify
	}

	pr.closeWall(p, d)

	q := p.Move(d)
	if q == pr.Grid.Start || q == pr.Grid.End {
		return
	}

	if pr.Grid.GetMoves(q).Size() > 1 {
		return
	}

	switch {
	case q.Row >= pr.RowStart && q.Row < pr.RowEnd:
		*stack = append(*stack, q)
	case q.Row < pr.RowStart:
		pushBestEffort(pr.OutUp, q)
	default:
		pushBestEffort(pr.OutDown, q)
	}
}

// closeWall closes the wall bit between p and its neighbor in
// direction d. The bit closed depends on d: for N/S it is the SOUTH
// bit of whichever cell is physically upper; for E/W it is the EAST
// bit of whichever cell is physically western. Closing a wall only
// ever sets a bit, preserving monotonicity (§4.3).
func (pr *Pruner) closeWall(p position.Position, d position.Direction) {
	switch d {
	case position.South:
		pr.Grid.OrFlag(p, cellgrid.BitSouthWall)
	case position.North:
		pr.Grid.OrFlag(p.Move(position.North), cellgrid.BitSouthWall)
	case position.East:
		pr.Grid.OrFlag(p, cellgrid.BitEastWall)
	case position.West:
		pr.Grid.OrFlag(p.Move(position.West), cellgrid.BitEastWall)
	}
}

// drainIncoming moves every pending notification from both boundary
// rings onto the local stack; duplicates are harmless since collapse
// re-checks IsDead before acting (§4.3 step 2b).
func (pr *Pruner) drainIncoming(stack *[]position.Position) {
	drainRing(pr.InFromAbove, stack)
	drainRing(pr.InFromBelow, stack)
}

func drainRing(r *ring.Ring, stack *[]position.Position) {
	if r == nil {
		return
	}
	for {
		p, ok := r.Pop()
		if !ok {
			return
		}
		*stack = append(*stack, p)
	}
}

// pushBestEffort pushes to an outgoing ring if one exists, silently
// dropping the notification on a full ring: §4.2/§7 require push to
// never block. A dropped notification is not re-sent, and a band scans
// its rows for degree-1 cells only once, at the start of Run, so the
// neighboring band does not rediscover that cell by itself; it stays
// uncollapsed unless another notification for it arrives.
func pushBestEffort(r *ring.Ring, p position.Position) {
	if r == nil {
		return
	}
	r.Push(p)
}
