package mis

// Algorithm selects a maximal-independent-set execution strategy.
type Algorithm int

const (
	// Priority assigns every node a fixed, odd-packed priority byte and
	// repeatedly matches every undecided node whose priority strictly
	// exceeds every undecided/matched neighbor's. Default.
	Priority Algorithm = iota
	// EdgeTiledPriority runs the same code as Priority: each node's edge
	// list is scanned in EdgeTileSize-sized tiles inside that node's one
	// work item, not as independent work items.
	EdgeTiledPriority
	// Pull repeatedly proposes (smallest-id undecided neighbor wins) and
	// resolves conflicts with a second pull pass.
	Pull
	// Serial scans nodes in id order, matching any node with no matched
	// neighbor yet.
	Serial
)

// Plan configures a Run invocation.
type Plan struct {
	Algorithm Algorithm

	// EdgeTileSize is the tile width of the inner edge scan for both
	// Priority and EdgeTiledPriority; each node stays one work item.
	// Zero means 64.
	EdgeTileSize int
}

// PlanOption mutates a Plan under construction.
type PlanOption func(*Plan)

// DefaultPlan returns a Plan running Priority.
func DefaultPlan() Plan {
	return Plan{Algorithm: Priority, EdgeTileSize: 64}
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

// WithEdgeTileSize sets the edge-tiling chunk size for EdgeTiledPriority.
func WithEdgeTileSize(n int) PlanOption {
	return func(p *Plan) {
		if n > 0 {
			p.EdgeTileSize = n
		}
	}
}
