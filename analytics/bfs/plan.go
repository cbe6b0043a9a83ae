package bfs

// Algorithm selects a BFS execution strategy.
type Algorithm int

const (
	// AsynchronousTile processes discovered nodes through a worklist as
	// soon as they are found, tiling each node's out-edges.
	AsynchronousTile Algorithm = iota
	// Asynchronous is AsynchronousTile without edge tiling.
	Asynchronous
	// SynchronousTile alternates current/next frontiers behind a full
	// barrier each round, tiling each node's out-edges.
	SynchronousTile
	// Synchronous is SynchronousTile without edge tiling.
	Synchronous
	// SynchronousDirectOpt additionally switches between push and pull
	// traversal depending on frontier size vs graph size.
	SynchronousDirectOpt
)

// Plan configures a Run invocation, in Options-struct idiom
// (dijkstra.Options).
type Plan struct {
	Algorithm Algorithm

	// Alpha and Beta tune SynchronousDirectOpt's push/pull switch: pull
	// when the frontier's total out-degree exceeds |E|/Alpha, and push
	// again once the frontier's node count falls below |N|/Beta.
	// Defaults 15/18.
	Alpha int
	Beta int

	// EdgeTileSize splits each node's out-edges into chunks of this many
	// edges for the Tile variants. The chunks are scanned one after
	// another inside that node's own work item; they are not scheduled as
	// separate work items. Zero means "process all edges in one piece".
	EdgeTileSize int
}

// PlanOption mutates a Plan under construction.
type PlanOption func(*Plan)

// DefaultPlan returns a Plan running SynchronousDirectOpt with Alpha=15,
// Beta=18, matching the direction-optimizing defaults judged to produce
// the fewest edge inspections across both high- and low-diameter graphs.
func DefaultPlan() Plan {
	return Plan{
		Algorithm: SynchronousDirectOpt,
		Alpha: 15,
		Beta: 18,
	}
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
func WithAlgorithm(a Algorithm) PlanOption {
	return func(p *Plan) { p.Algorithm = a }
}

// WithAlphaBeta overrides the direction-optimizing thresholds.
func WithAlphaBeta(alpha, beta int) PlanOption {
	return func(p *Plan) {
		if alpha > 0 {
			p.Alpha = alpha
		}
		if beta > 0 {
			p.Beta = beta
		}
	}
}

// WithEdgeTileSize sets the edge-tiling chunk size for the Tile variants.
func WithEdgeTileSize(n int) PlanOption {
	return func(p *Plan) {
		if n > 0 {
			p.EdgeTileSize = n
		}
	}
}
