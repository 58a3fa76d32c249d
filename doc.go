// Package mazerunner solves very large rectangular perfect-path mazes
// concurrently from a fixed start cell to a fixed end cell.
//
// It exists to study concurrent graph search on shared mutable state:
// how independent worker goroutines cooperate through atomic per-cell
// bitflags and a lock-free SPSC ring, and recombine partial results
// into one path.
//
// Subpackages:
//
//	position/       — Position and Direction value types
//	cellgrid/       — packed atomic cell grid, move/branch queries
//	ring/           — single-producer/single-consumer lock-free ring
//	loader/         — binary maze file format, solution verification
//	solver/         — Solver façade, strategy M1 (prune+paint+walk) and M2 (bidirectional DFS)
//	oracle/         — reference single-threaded BFS/DFS correctness oracles
//	core/bfs/dfs/    — general-purpose graph primitives backing oracle/
//	cmd/mazerunner/ — command-line driver
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// specification and the grounding ledger behind each package.
package mazerunner
