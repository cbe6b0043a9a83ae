package lcc

// Algorithm selects the triangle-counting strategy.
type Algorithm int

const (
	// Atomic keeps one atomic.Uint64 counter per node, incremented
	// directly by every worker. Default.
	Atomic Algorithm = iota
	// PerThread keeps a private counter slab per worker, reduced once
	// after the counting pass.
	PerThread
)

// Plan configures a Run invocation.
type Plan struct {
	Algorithm Algorithm

	// Relabel forces the descending-degree relabeling pass regardless of
	// the power-law auto-detection heuristic. Sorting by destination
	// happens unconditionally either way.
	Relabel bool
}

// PlanOption mutates a Plan under construction.
type PlanOption func(*Plan)

// DefaultPlan returns a Plan running Atomic with no forced relabeling
// (auto-detection still applies).
func DefaultPlan() Plan {
	return Plan{Algorithm: Atomic}
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

// WithRelabel forces the descending-degree relabeling pass.
func WithRelabel(relabel bool) PlanOption { return func(p *Plan) { p.Relabel = relabel } }
