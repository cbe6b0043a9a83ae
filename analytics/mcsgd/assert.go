package mcsgd

import (
	"fmt"
	"math"

	"github.com/arborcore/galoway/propgraph"
)

// AssertValid checks that every value in the squared-residual edge
// column Run attached under out is finite and non-negative — it does not
// recompute the factorization, only that the values Run produced are in
// the range a squared real number can occupy.
func AssertValid(g *propgraph.Graph, out string) error {
	view, err := propgraph.NewView(g, nil, []propgraph.Descriptor{propgraph.EdgeProp[float64](out)})
	if err != nil {
		return fmt.Errorf("mcsgd: AssertValid: %w", err)
	}
	col, err := propgraph.EdgeColumn[float64](view, out)
	if err != nil {
		return fmt.Errorf("mcsgd: AssertValid: %w", err)
	}
	for i := 0; i < col.Len(); i++ {
		v := col.Value(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("mcsgd: AssertValid: edge %d has non-finite residual %v", i, v)
		}
		if v < 0 {
			return fmt.Errorf("mcsgd: AssertValid: edge %d has negative residual %v", i, v)
		}
	}
	return nil
}
