package gen

import (
	"fmt"

	"github.com/arborcore/galoway/topology"
)

const minFerrisWheelNodes = 4 // outer ring has n-1 nodes, which must form a cycle of size >= 3

// FerrisWheel returns a Constructor building Wₙ = C_{n-1} + hub, this
// project's rename of builder.Wheel's "ring + hub" decomposition
// (builder/impl_wheel.go): an (n-1)-cycle of ids [0, n-1) plus a hub at id
// n-1, with a spoke from the hub to every ring id. The ring's cycle edges
// are emitted in ascending index order, then spokes in the same order,
// matching impl_wheel.go's emission sequence.
func FerrisWheel(n int) topology.Constructor {
	return func(b *topology.Builder) error {
		if n < minFerrisWheelNodes {
			return fmt.Errorf("gen: FerrisWheel: n=%d < min=%d: %w", n, minFerrisWheelNodes, ErrTooFewNodes)
		}
		b.Symmetric()
		ring := n - 1
		hub := uint32(ring)
		b.AddNodes(n)

		for i := 0; i < ring; i++ {
			b.AddEdge(uint32(i), uint32((i+1)%ring))
		}
		for i := 0; i < ring; i++ {
			b.AddEdge(hub, uint32(i))
		}
		return nil
	}
}
