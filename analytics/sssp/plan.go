package sssp

// Algorithm selects an SSSP execution strategy.
type Algorithm int

const (
	// DeltaTile runs the same parallel relaxation as DeltaStep; it does
	// not read EdgeTileSize and does not split edge lists into tiles.
	DeltaTile Algorithm = iota
	// DeltaStep queues nodes in an exec.OBIM by floor(dist/2^Delta) and
	// relaxes them in parallel batches, re-queuing every node whose
	// distance drops, until nothing is queued. Each batch takes every
	// queued node, lowest bucket first, so one batch can span several
	// buckets.
	DeltaStep
	// DeltaStepBarrier is DeltaStep with a full exec.Barrier between
	// buckets instead of OBIM's soft bucket-advance.
	DeltaStepBarrier
	// DeltaStepFusion runs the same relaxation as DeltaStep, which has no
	// separate light-edge and heavy-edge passes.
	DeltaStepFusion
	// SerialDeltaTile runs the same single-threaded delta-stepping as
	// SerialDelta; it does not read EdgeTileSize.
	SerialDeltaTile
	// SerialDelta is the single-threaded delta-stepping algorithm.
	SerialDelta
	// DijkstraTile is single-threaded Dijkstra with edge tiling.
	DijkstraTile
	// Dijkstra is single-threaded Dijkstra via a binary heap.
	Dijkstra
	// Topological relaxes nodes in a precomputed topological order.
	Topological
	// TopologicalTile runs the same relaxation as Topological; it does
	// not read EdgeTileSize.
	TopologicalTile
	// Automatic inspects the graph's degree distribution and picks
	// DeltaStep or DeltaStepBarrier.
	Automatic
)

// Plan configures a Run invocation, in Options-struct idiom
// (dijkstra.Options).
type Plan struct {
	Algorithm Algorithm

	// Delta is the delta-stepping bucket width exponent: bucket index is
	// dist >> Delta. Default 1.
	Delta uint

	// EdgeTileSize splits a node's out-edges into chunks of this many
	// edges. Only DijkstraTile reads it, and it scans the chunks one after
	// another in its single thread; they are not separate work items.
	// Zero means "all at once".
	EdgeTileSize int
}

// PlanOption mutates a Plan under construction.
type PlanOption func(*Plan)

// DefaultPlan returns a Plan running DeltaStep with Delta=1.
func DefaultPlan() Plan {
	return Plan{Algorithm: DeltaStep, Delta: 1}
}

// NewPlan builds a Plan from DefaultPlan plus any options.
func NewPlan(opts...PlanOption) Plan {
	p := DefaultPlan()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithAlgorithm selects the execution strategy.
func WithAlgorithm(a Algorithm) PlanOption { return func(p *Plan) { p.Algorithm = a } }

// WithDelta overrides the delta-stepping bucket width exponent.
func WithDelta(delta uint) PlanOption { return func(p *Plan) { p.Delta = delta } }

// WithEdgeTileSize sets the edge-tiling chunk size for the Tile variants.
func WithEdgeTileSize(n int) PlanOption {
	return func(p *Plan) {
		if n > 0 {
			p.EdgeTileSize = n
		}
	}
}
