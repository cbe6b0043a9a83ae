package gen

import (
	"fmt"

	"github.com/arborcore/galoway/topology"
)

const minCliqueNodes = 1

// Clique returns a Constructor building the complete graph K_n,
// generalizing builder.Complete's lexicographic pair-emission loop
// (builder/impl_complete.go) from string vertex ids to the dense uint32
// range [0, n). Every unordered pair {i,j}, i<j, is emitted exactly once;
// Symmetric mirrors each into the reverse arc.
func Clique(n int) topology.Constructor {
	return func(b *topology.Builder) error {
		if n < minCliqueNodes {
			return fmt.Errorf("gen: Clique: n=%d < min=%d: %w", n, minCliqueNodes, ErrTooFewNodes)
		}
		b.Symmetric()
		b.AddNodes(n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.AddEdge(uint32(i), uint32(j))
			}
		}
		return nil
	}
}
