package loader

import (
	"errors"
	"fmt"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
)

// ErrNoPath indicates an empty path was supplied to Verify, which
// only passes when start already equals end.
var ErrNoPath = errors.New("loader: empty path does not reach end")

// Verify replays path from g.Start, stepping only through open walls,
// and reports exactly where it diverges: a closed wall, or arriving
// somewhere other than g.End. It is the library form of maze.cpp's
// checkSolution, used by both tests and the CLI driver's
// "passed"/"FAILED" report (§6, §7).
func Verify(g *cellgrid.Grid, path []position.Direction) error {
	cur := g.Start
	if len(path) == 0 && cur != g.End {
		return ErrNoPath
	}

	for i, d := range path {
		if !g.CanMove(cur, d) {
			return fmt.Errorf("loader: step %d: wall blocks move %s from %+v", i, d, cur)
		}
		cur = cur.Move(d)
	}

	if cur != g.End {
		return fmt.Errorf("loader: path ends at %+v, want %+v", cur, g.End)
	}

	return nil
}
