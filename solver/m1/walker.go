package m1

import (
	"sync/atomic"
	"time"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/internal/assert"
	"github.com/azulmaze/mazerunner/position"
)

// DefaultRetryDelay is how long the walker sleeps at an unresolved
// junction before re-checking whether the pruners have collapsed it
// to a single option, per §4.5.
const DefaultRetryDelay = time.Millisecond

// Walker walks forward from Grid.Start along forced single-option
// corridors until it reaches a cell the Painter has already tagged,
// then reconstructs the remaining path by following those tags to
// Grid.End. Grounded on walkThreadTB.
type Walker struct {
	Grid       *cellgrid.Grid
	Stop       *atomic.Bool // shared stop flag, set by the walker once reconstruction completes
	RetryDelay time.Duration
}

// Run executes the walk-then-reconstruct sequence and returns the
// full ordered move list from Start to End. It panics (via
// internal/assert) on the protocol errors §4.8 calls out as fatal:
// a 0-branch cell that isn't a meeting point, and reconstruction
// running off a painted cell.
func (w *Walker) Run() []position.Direction {
	retry := w.RetryDelay
	if retry == 0 {
		retry = DefaultRetryDelay
	}

	path := make([]position.Direction, 0, DefaultStackReserve)
	cur := w.Grid.Start
	back := position.Uninitialized // direction leading back the way we came; none at Start

	for w.Grid.ReverseTag(cur) == position.Uninitialized {
		moves := w.Grid.GetMoves(cur)
		if back != position.Uninitialized {
			moves = moves.Remove(back)
		}

		switch moves.Size() {
		case 0:
			assert.Assertf(false, "walker: cell %+v has no moves and is not tagged by the painter", cur)
		case 1:
			d := moves.First(cellgrid.ScanOrderWalker)
			path = append(path, d)
			back = position.Reverse(d)
			cur = cur.Move(d)
		default:
			time.Sleep(retry) // wait for pruners to collapse this junction
		}
	}

	// cur is now a cell the painter has already tagged (possibly
	// Start itself, if the painter reached all the way back). Follow
	// the reverse-parent tags forward to End.
	for cur != w.Grid.End {
		d := w.Grid.ReverseTag(cur)
		assert.Assertf(d != position.Uninitialized, "walker: reconstruction hit an unpainted cell %+v before reaching End", cur)
		path = append(path, d)
		cur = cur.Move(d)
	}

	w.Stop.Store(true) // only after reconstruction completes, per §4.3 Termination

	return path
}
