package m1

import (
	"runtime"
	"sync/atomic"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
)

// Painter performs a reverse breadth-first flood from Grid.End toward
// Grid.Start, writing a one-hot reverse-parent-direction tag onto
// every cell it discovers (§4.4). It is the live pipeline's reverse
// pass, grounded on walkThread_BFS_BT.
type Painter struct {
	Grid *cellgrid.Grid
	Stop *atomic.Bool

	// ScanOrder fixes the per-cell neighbor iteration order; defaults
	// to cellgrid.ScanOrderPainter (§4.4's S,W,E,N) if zero.
	ScanOrder cellgrid.ScanOrder
}

// PainterOption configures a Painter built via NewPainter, following
// the teacher's functional-options convention (bfs.Option).
type PainterOption func(*Painter)

// WithScanOrder overrides the painter's default S,W,E,N neighbor scan
// order — e.g. to cellgrid.ScanOrderReverseAlt, the original source's
// alternate frontBT order, kept available per SPEC_FULL.md's
// supplemented features but not wired in as the default.
func WithScanOrder(order cellgrid.ScanOrder) PainterOption {
	return func(pt *Painter) { pt.ScanOrder = order }
}

// NewPainter builds a Painter flooding from grid.End, stopping when
// stop is set.
func NewPainter(grid *cellgrid.Grid, stop *atomic.Bool, opts ...PainterOption) *Painter {
	pt := &Painter{Grid: grid, Stop: stop}
	for _, opt := range opts {
		opt(pt)
	}
	return pt
}

// Run floods from End, terminating when Start is reached or Stop
// flips. It yields every iteration via runtime.Gosched, matching the
// original's per-iteration yield.
func (pt *Painter) Run() {
	order := pt.ScanOrder
	if order == (cellgrid.ScanOrder{}) {
		order = cellgrid.ScanOrderPainter
	}

	queue := make([]position.Position, 0, DefaultStackReserve)
	queue = append(queue, pt.Grid.End)

	for head := 0; head < len(queue) && !pt.Stop.Load(); head++ {
		cur := queue[head]
		if cur == pt.Grid.Start {
			return
		}

		cameFrom := pt.Grid.ReverseTag(cur)
		moves := pt.Grid.GetMoves(cur)
		if cameFrom != position.Uninitialized {
			moves = moves.Remove(cameFrom)
		}

		for moves.Size() > 0 {
			var d position.Direction
			d, moves = moves.PopFront(order)
			next := cur.Move(d)
			if pt.Grid.ReverseTag(next) != position.Uninitialized {
				continue // already painted
			}
			pt.Grid.SetReverseTag(next, position.Reverse(d))
			queue = append(queue, next)
		}
		runtime.Gosched()
	}
}
