// Package oracle provides a reference, single-threaded solver built
// directly on the teacher's own graph/search packages, used to check
// the concurrent M1/M2 pipelines against ground truth in tests and as
// an extra pass of the CLI driver.
//
// Grounded directly on core.Graph's AddVertex/AddEdge surface: one
// vertex per cell, one edge between any two cells cellgrid.CanMove
// reports as open. Once built, the graph is walked by the teacher's
// own bfs.BFS/dfs.DFS unmodified.
package oracle

import (
	"fmt"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/core"
	"github.com/azulmaze/mazerunner/position"
)

// vertexID encodes a position as the "row,col" vertex ID core.Graph
// requires.
func vertexID(p position.Position) string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// decodeVertexID is vertexID's inverse, used to translate BFS/DFS
// parent-map results back into Positions.
func decodeVertexID(id string) position.Position {
	var p position.Position
	fmt.Sscanf(id, "%d,%d", &p.Row, &p.Col)
	return p
}

// BuildGraph converts g's wall bits into an undirected core.Graph: one
// vertex per cell, one edge between every pair of orthogonally
// adjacent cells whose shared wall is open.
func BuildGraph(g *cellgrid.Grid) (*core.Graph, error) {
	cg := core.NewGraph()

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if err := cg.AddVertex(vertexID(position.Position{Row: row, Col: col})); err != nil {
				return nil, fmt.Errorf("oracle: adding vertex: %w", err)
			}
		}
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			p := position.Position{Row: row, Col: col}
			for _, d := range [...]position.Direction{position.South, position.East} {
				if !g.CanMove(p, d) {
					continue
				}
				neighbor := p.Move(d)
				if _, err := cg.AddEdge(vertexID(p), vertexID(neighbor), 0); err != nil {
					return nil, fmt.Errorf("oracle: adding edge: %w", err)
				}
			}
		}
	}

	return cg, nil
}
