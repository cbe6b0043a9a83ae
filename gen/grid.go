package gen

import (
	"fmt"

	"github.com/arborcore/galoway/topology"
)

const minGridDim = 1

// Grid returns a Constructor building a w*h orthogonal mesh with a fixed
// row-major id scheme id(r,c) = r*w+c, generalizing impl_grid.go's "r,c"
// string-id scheme to a dense uint32 id (builder/impl_grid.go). Every cell
// connects to its right and bottom neighbors; when withDiagonals is true
// it also connects to its bottom-right and bottom-left neighbors. The
// builder is marked Symmetric so every edge mirrors, matching the
// teacher's directed-graph mirroring branch collapsed into one code path.
func Grid(w, h int, withDiagonals bool) topology.Constructor {
	return func(b *topology.Builder) error {
		if w < minGridDim || h < minGridDim {
			return fmt.Errorf("gen: Grid: w=%d, h=%d (each must be >= %d): %w", w, h, minGridDim, ErrTooFewNodes)
		}
		b.Symmetric()
		b.AddNodes(w * h)

		id := func(r, c int) uint32 { return uint32(r*w + c) }
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				u := id(r, c)
				if c+1 < w {
					b.AddEdge(u, id(r, c+1))
				}
				if r+1 < h {
					b.AddEdge(u, id(r+1, c))
					if withDiagonals {
						if c+1 < w {
							b.AddEdge(u, id(r+1, c+1))
						}
						if c-1 >= 0 {
							b.AddEdge(u, id(r+1, c-1))
						}
					}
				}
			}
		}
		return nil
	}
}
