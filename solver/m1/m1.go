package m1

import (
	"sync/atomic"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
	"github.com/azulmaze/mazerunner/ring"
	"golang.org/x/sync/errgroup"
)

// Options configures strategy M1.
type Options struct {
	// Bands is the number of row-band pruner workers. Zero selects
	// DefaultBands.
	Bands int
	// RingCapacity sizes every boundary SPSC ring. Zero selects
	// ring.DefaultCapacity.
	RingCapacity int
	// StackReserve pre-allocates the pruner stacks. Zero selects
	// DefaultStackReserve. The painter queue and the walker path always
	// reserve DefaultStackReserve, whatever this field holds.
	StackReserve int
	// PainterScanOrder overrides the painter's neighbor scan order.
	// Zero selects cellgrid.ScanOrderPainter.
	PainterScanOrder cellgrid.ScanOrder
}

// DefaultBands mirrors the original's LaunchPruningThreads(8, ...):
// eight row bands regardless of host parallelism, since the bands
// are I/O-light, CPU-bound workers that benefit from oversubscription
// against the painter and walker.
const DefaultBands = 8

// Solve launches the M1 pipeline — Bands pruners, one painter, and
// the walker running on the calling goroutine exactly as
// LaunchPruningThreads runs walkThreadTB on the calling thread — and
// returns the reconstructed path once the walker completes.
func Solve(grid *cellgrid.Grid, opts Options) ([]position.Direction, error) {
	bands := opts.Bands
	if bands == 0 {
		bands = DefaultBands
	}
	if bands > grid.Height {
		bands = grid.Height
	}
	ringCap := opts.RingCapacity
	if ringCap == 0 {
		ringCap = ring.DefaultCapacity
	}

	bounds := bandBounds(grid.Height, bands)

	// ringsDown[i]: producer band i, consumer band i+1 (notifies the
	// band below about a cell whose unique neighbor has a larger row).
	// ringsUp[i]: producer band i+1, consumer band i (notifies the
	// band above about a cell whose unique neighbor has a smaller row).
	ringsDown := make([]*ring.Ring, bands-1)
	ringsUp := make([]*ring.Ring, bands-1)
	for i := range ringsDown {
		ringsDown[i] = ring.New(ringCap)
		ringsUp[i] = ring.New(ringCap)
	}

	var stop atomic.Bool

	pruners := make([]*Pruner, bands)
	for i := 0; i < bands; i++ {
		pr := &Pruner{
			Grid:         grid,
			RowStart:     bounds[i],
			RowEnd:       bounds[i+1],
			Stop:         &stop,
			StackReserve: opts.StackReserve,
		}
		if i > 0 {
			pr.OutUp = ringsUp[i-1]
			pr.InFromAbove = ringsDown[i-1]
		}
		if i < bands-1 {
			pr.OutDown = ringsDown[i]
			pr.InFromBelow = ringsUp[i]
		}
		pruners[i] = pr
	}

	var painterOpts []PainterOption
	if opts.PainterScanOrder != (cellgrid.ScanOrder{}) {
		painterOpts = append(painterOpts, WithScanOrder(opts.PainterScanOrder))
	}
	painter := NewPainter(grid, &stop, painterOpts...)

	var g errgroup.Group
	for _, pr := range pruners {
		pr := pr
		g.Go(func() error {
			pr.Run()
			return nil
		})
	}
	g.Go(func() error {
		painter.Run()
		return nil
	})

	walker := &Walker{Grid: grid, Stop: &stop}
	path := walker.Run()

	_ = g.Wait() // pruners/painter never return an error; Wait only blocks for join

	return path, nil
}

// bandBounds splits [0,height) into n nearly-equal half-open row
// ranges, matching maze.cpp's chunk/remainder split
// (PruneDeadCellsHeadChunk/TailChunk/MiddleChunk).
func bandBounds(height, n int) []int {
	bounds := make([]int, n+1)
	chunk := height / n
	remainder := height % n
	row := 0
	for i := 0; i < n; i++ {
		bounds[i] = row
		size := chunk
		if i < remainder {
			size++
		}
		row += size
	}
	bounds[n] = height
	return bounds
}
