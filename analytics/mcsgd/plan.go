package mcsgd

// StepFunction selects the per-round learning-rate schedule.
type StepFunction int

const (
	// Bold adapts rate multiplicatively each round: *1.05 if the total
	// error fell since the last round, *0.5 otherwise. Default.
	Bold StepFunction = iota
	// Intel is alpha * beta^round.
	Intel
	// Purdue is alpha * 1.5 / (1 + beta*(round+1)^1.5).
	Purdue
	// Bottou is alpha / (1 + alpha*lambda*round).
	Bottou
	// Inverse is 1 / (round+1).
	Inverse
)

// Plan configures a Run invocation.
type Plan struct {
	StepFunction StepFunction

	// K is the latent vector length. Default 20.
	K int

	// Lambda is the L2 regularization coefficient.
	Lambda float64

	// LearningRate is alpha: Bold's initial rate, and Intel/Purdue/
	// Bottou's scale factor.
	LearningRate float64

	// DecayRate is beta: Intel/Purdue's decay factor.
	DecayRate float64

	// Tolerance is the relative total-error delta below which Run
	// declares convergence, unless FixedRounds overrides it.
	Tolerance float64

	// MaxRounds bounds how many rounds Run performs even absent
	// convergence. Ignored when FixedRounds > 0.
	MaxRounds int

	// FixedRounds, if > 0, disables the tolerance check and runs exactly
	// this many rounds.
	FixedRounds int

	// UseExactError requests a second full pass recomputing total
	// squared error from the post-update vectors, instead of reusing the
	// error sum accumulated during the update pass itself.
	UseExactError bool

	// UseDetInit selects the deterministic 2*(n/RAND_MAX)-1 latent-vector
	// initialization instead of per-thread-PRNG uniform sampling.
	UseDetInit bool

	// Seed seeds the per-thread PRNGs used for (non-deterministic)
	// latent-vector initialization.
	Seed int64
}

// PlanOption mutates a Plan under construction.
type PlanOption func(*Plan)

// DefaultPlan returns a Plan running Bold with K=20 and the Purdue/
// Netflix regularization/learning-rate defaults from the reference
// command-line driver (learningRate=0.001, decayRate=0.9, lambda=0.05).
func DefaultPlan() Plan {
	return Plan{
		StepFunction: Bold,
		K: 20,
		Lambda: 0.05,
		LearningRate: 0.001,
		DecayRate: 0.9,
		Tolerance: 0.01,
		MaxRounds: 100,
		Seed: 1,
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

// WithStepFunction selects the learning-rate schedule.
func WithStepFunction(sf StepFunction) PlanOption { return func(p *Plan) { p.StepFunction = sf } }

// WithK overrides the latent vector length.
func WithK(k int) PlanOption {
	return func(p *Plan) {
		if k > 0 {
			p.K = k
		}
	}
}

// WithLambda overrides the regularization coefficient.
func WithLambda(lambda float64) PlanOption { return func(p *Plan) { p.Lambda = lambda } }

// WithLearningRate overrides alpha.
func WithLearningRate(alpha float64) PlanOption { return func(p *Plan) { p.LearningRate = alpha } }

// WithDecayRate overrides beta.
func WithDecayRate(beta float64) PlanOption { return func(p *Plan) { p.DecayRate = beta } }

// WithTolerance overrides the convergence tolerance.
func WithTolerance(tol float64) PlanOption { return func(p *Plan) { p.Tolerance = tol } }

// WithMaxRounds overrides the round budget.
func WithMaxRounds(n int) PlanOption {
	return func(p *Plan) {
		if n > 0 {
			p.MaxRounds = n
		}
	}
}

// WithFixedRounds forces Run to perform exactly n rounds, ignoring
// Tolerance.
func WithFixedRounds(n int) PlanOption { return func(p *Plan) { p.FixedRounds = n } }

// WithExactError requests the second-pass exact error recomputation.
func WithExactError(exact bool) PlanOption { return func(p *Plan) { p.UseExactError = exact } }

// WithDetInit selects deterministic latent-vector initialization.
func WithDetInit(det bool) PlanOption { return func(p *Plan) { p.UseDetInit = det } }

// WithSeed overrides the per-thread PRNG seed base.
func WithSeed(seed int64) PlanOption { return func(p *Plan) { p.Seed = seed } }
