package gen

import (
	"fmt"

	"github.com/arborcore/galoway/topology"
)

const minTriangleRows = 1

// Triangle returns a Constructor building a triangular mesh of rows rows,
// generalizing impl_grid.go's row-major right/bottom neighbor decomposition
// (builder/impl_grid.go) from a rectangular mesh to a triangular one: row r
// (0-indexed) holds r+1 nodes, id(r,c) = r*(r+1)/2+c for c in [0, r]. Each
// node connects right within its row and down-left/down-right into the
// next row, the triangular lattice's analogue of Grid's right/bottom pair.
func Triangle(rows int) topology.Constructor {
	return func(b *topology.Builder) error {
		if rows < minTriangleRows {
			return fmt.Errorf("gen: Triangle: rows=%d < min=%d: %w", rows, minTriangleRows, ErrTooFewNodes)
		}
		b.Symmetric()
		total := rows * (rows + 1) / 2
		b.AddNodes(total)

		rowStart := func(r int) int { return r * (r + 1) / 2 }
		id := func(r, c int) uint32 { return uint32(rowStart(r) + c) }

		for r := 0; r < rows; r++ {
			for c := 0; c <= r; c++ {
				u := id(r, c)
				if c+1 <= r {
					b.AddEdge(u, id(r, c+1))
				}
				if r+1 < rows {
					b.AddEdge(u, id(r+1, c))
					b.AddEdge(u, id(r+1, c+1))
				}
			}
		}
		return nil
	}
}
