// Package solver is the top-level entry point: a single Strategy enum
// and Solve function standing in for the original's inheritance
// hierarchy of solver classes (MazeSolver -> MTMazeStudentSolver /
// SkippingMazeSolver), per the Design Notes' "replace inheritance with
// a single interface" guidance. Callers pick a Strategy and get back
// the same []position.Direction result regardless of which concurrent
// pipeline produced it.
package solver

import (
	"errors"
	"fmt"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
	"github.com/azulmaze/mazerunner/solver/m1"
	"github.com/azulmaze/mazerunner/solver/m2"
)

// Strategy selects which concurrent pipeline solves the maze.
type Strategy int

const (
	// M1 is the row-band pruner + reverse-painter + forward-walker
	// pipeline (§4.2-§4.5).
	M1 Strategy = iota
	// M2 is the bidirectional parallel DFS pipeline (§4.6-§4.8).
	M2
)

func (s Strategy) String() string {
	switch s {
	case M1:
		return "M1"
	case M2:
		return "M2"
	default:
		return "unknown"
	}
}

// ErrUnknownStrategy is returned by Solve for any Strategy value other
// than M1 or M2.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

// Options tunes both pipelines. Zero values select each pipeline's own
// defaults (m1.DefaultBands, m2.DefaultWorkersPerPool, and so on);
// fields irrelevant to the chosen Strategy are ignored.
type Options struct {
	Bands            int
	ForwardWorkers   int
	ReverseWorkers   int
	RingCapacity     int
	StackReserve     int
	PainterScanOrder cellgrid.ScanOrder
}

// Option configures an Options value, following the teacher's
// functional-options convention (bfs.Option, core.GraphOption).
type Option func(*Options)

// WithBands sets the M1 row-band count.
func WithBands(n int) Option { return func(o *Options) { o.Bands = n } }

// WithForwardWorkers sets the M2 forward-pool size.
func WithForwardWorkers(n int) Option { return func(o *Options) { o.ForwardWorkers = n } }

// WithReverseWorkers sets the M2 reverse-pool size.
func WithReverseWorkers(n int) Option { return func(o *Options) { o.ReverseWorkers = n } }

// WithRingCapacity sets the M1 boundary SPSC ring capacity.
func WithRingCapacity(n int) Option { return func(o *Options) { o.RingCapacity = n } }

// WithStackReserve sets the pre-allocated stack capacity of M1's
// pruners and M2's DFS workers (§ VECTOR_RESERVE_SIZE); M1's painter
// and walker are not affected.
func WithStackReserve(n int) Option { return func(o *Options) { o.StackReserve = n } }

// WithPainterScanOrder overrides M1's painter neighbor scan order;
// ignored by M2.
func WithPainterScanOrder(order cellgrid.ScanOrder) Option {
	return func(o *Options) { o.PainterScanOrder = order }
}

// Solve dispatches to the chosen Strategy's pipeline and returns the
// solved path as a sequence of moves from grid.Start to grid.End. A
// nil, nil result means no solution exists (§7); grid must already be
// loaded (walls set, Start/End populated) via package loader.
func Solve(grid *cellgrid.Grid, strategy Strategy, opts ...Option) ([]position.Direction, error) {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	switch strategy {
	case M1:
		return m1.Solve(grid, m1.Options{
			Bands:            o.Bands,
			RingCapacity:     o.RingCapacity,
			StackReserve:     o.StackReserve,
			PainterScanOrder: o.PainterScanOrder,
		})
	case M2:
		return m2.Solve(grid, m2.Options{
			ForwardWorkers: o.ForwardWorkers,
			ReverseWorkers: o.ReverseWorkers,
			StackReserve:   o.StackReserve,
		})
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
}
