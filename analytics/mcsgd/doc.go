// Package mcsgd learns a rank-K factorization of a bipartite rating graph
// by stochastic gradient descent: item-nodes occupy the low end of the
// node id range ([0, itemCount)), user-nodes the rest, and every edge
// (i, u) carries an observed rating. Each node gets a latent vector of
// length K; Run iterates the classic SGD-by-items sweep (parallel over
// item-nodes, atomic updates to both endpoints' vectors) until the total
// squared error converges, goes non-finite, or a round budget is spent.
//
// Latent vectors live in one flat []float64 of length NumNodes()*K, row i
// holding node i's vector — the flat-row-major buffer idiom of
// katalvlaran-lvlath/matrix's Dense.data (matrix/impl_dense.go),
// generalized from a dense 2-D matrix to one row per graph node. The five
// step-size functions are small pure functions switched on
// Plan.StepFunction, the same small-function-as-config-value idiom as
// katalvlaran-lvlath/builder's WeightFn (builder/weight_fn.go).
package mcsgd
