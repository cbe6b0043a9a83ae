package gen

import (
	"fmt"

	"github.com/arborcore/galoway/topology"
)

const minSawtoothNodes = 3

// Sawtooth returns a Constructor building this project's jagged variant of
// builder.Path (builder/impl_path.go): a path 0->1->...->(length-1) plus a
// "tooth" edge i->(i+2) from every even base index, the same deterministic
// ascending-index emission loop impl_path.go uses for its path edges, with
// impl_cycle.go's id-advance-by-fixed-step idiom supplying the skip edges.
func Sawtooth(length int) topology.Constructor {
	return func(b *topology.Builder) error {
		if length < minSawtoothNodes {
			return fmt.Errorf("gen: Sawtooth: length=%d < min=%d: %w", length, minSawtoothNodes, ErrTooFewNodes)
		}
		b.Symmetric()
		b.AddNodes(length)

		for i := 0; i < length-1; i++ {
			b.AddEdge(uint32(i), uint32(i+1))
		}
		for i := 0; i <= length-3; i += 2 {
			b.AddEdge(uint32(i), uint32(i+2))
		}
		return nil
	}
}
