// Command mazerunner loads a maze file, solves it with one or more
// strategies, verifies each result, and reports pass/fail and timing
// for each — the Go counterpart of original_source/main.cpp's
// load -> solve -> verify -> report loop over STMazeSolverBFS,
// STMazeSolverDFS, and MTMazeStudentSolver.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/loader"
	"github.com/azulmaze/mazerunner/oracle"
	"github.com/azulmaze/mazerunner/position"
	"github.com/azulmaze/mazerunner/solver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	fs := flag.NewFlagSet("mazerunner", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: mazerunner [options] <maze-file>\n")
		fs.PrintDefaults()
	}

	bands := fs.Int("bands", 0, "M1 row-band count")
	fs.IntVar(bands, "b", 0, "M1 row-band count (shorthand)")
	workers := fs.Int("workers", 0, "M2 forward/reverse pool size")
	fs.IntVar(workers, "w", 0, "M2 forward/reverse pool size (shorthand)")
	skipOracle := fs.Bool("no-oracle", false, "skip the reference BFS/DFS oracle passes")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	path := fs.Arg(0)

	// Each strategy gets its own freshly-loaded grid, exactly as
	// main.cpp's loop re-creates and re-loads the Maze before every
	// solver: the marker bits M1/M2/the oracle write as they run are
	// not meant to be shared across independent solve attempts.
	loadFresh := func() (*cellgrid.Grid, error) {
		result, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		return result.Grid, nil
	}

	if first, err := loadFresh(); err != nil {
		fmt.Fprintf(out, "FAILED: loading %q: %v\n", path, err)
		return 1
	} else {
		fmt.Fprintf(out, "loaded %q: %dx%d\n", path, first.Width, first.Height)
	}

	failed := false

	runStrategy := func(name string, solve func(*cellgrid.Grid) ([]position.Direction, error)) {
		grid, err := loadFresh()
		if err != nil {
			fmt.Fprintf(out, "%-12s FAILED: reloading maze: %v\n", name, err)
			failed = true
			return
		}

		start := time.Now()
		path, err := solve(grid)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(out, "%-12s FAILED: %v (%v)\n", name, err, elapsed)
			failed = true
			return
		}
		if verr := loader.Verify(grid, path); verr != nil {
			fmt.Fprintf(out, "%-12s FAILED: %v (%v)\n", name, verr, elapsed)
			failed = true
			return
		}
		fmt.Fprintf(out, "%-12s passed: %d moves (%v)\n", name, len(path), elapsed)
	}

	runStrategy("M1", func(g *cellgrid.Grid) ([]position.Direction, error) {
		return solver.Solve(g, solver.M1, solver.WithBands(*bands))
	})
	runStrategy("M2", func(g *cellgrid.Grid) ([]position.Direction, error) {
		return solver.Solve(g, solver.M2, solver.WithForwardWorkers(*workers), solver.WithReverseWorkers(*workers))
	})

	if !*skipOracle {
		runStrategy("oracle-bfs", oracle.SolveBFS)
		runStrategy("oracle-dfs", oracle.SolveDFS)
	}

	if failed {
		return 1
	}
	return 0
}
