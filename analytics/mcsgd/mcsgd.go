package mcsgd

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/arborcore/galoway/column"
	"github.com/arborcore/galoway/exec"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/reduce"
	"github.com/arborcore/galoway/result"
	"github.com/arborcore/galoway/topology"
)

// randMax mirrors C's RAND_MAX (2^31-1), the scale the deterministic
// init formula 2*(n/RAND_MAX)-1 is defined against.
const randMax = float64(1<<31 - 1)

// Stats summarizes one Run.
type Stats struct {
	Rounds int
	FinalError float64
	Converged bool
	K int

	// Latent is a flat NumNodes()*K buffer, row i holding node i's
	// learned latent vector: rows [0, itemCount) are item vectors,
	// [itemCount, NumNodes()) are user vectors.
	Latent []float64
}

// Print writes a one-line human-readable summary to w.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "mcsgd: rounds=%d error=%g converged=%v k=%d\n", s.Rounds, s.FinalError, s.Converged, s.K)
}

// Row returns node id's latent vector, a slice aliasing Latent.
func (s Stats) Row(id uint32) []float64 {
	return s.Latent[int(id)*s.K : int(id)*s.K+s.K]
}

// Run factors g's bipartite rating graph by SGD-by-items: item-nodes
// occupy [0, itemCount), user-nodes [itemCount, NumNodes()), and
// ratingCol names the edge column holding each edge's observed rating.
// On success, out is attached as a float64 edge column holding each
// item-origin edge's final squared residual (0 for the reverse user-side
// edge of a symmetric pair, which this algorithm never touches).
func Run(g *propgraph.Graph, ratingCol string, itemCount int, out string, plan Plan) result.Result[Stats] {
	if g == nil {
		return result.Err[Stats](result.InvalidArgument, ErrGraphNil.Error())
	}
	n := g.NumNodes()
	if itemCount <= 0 || itemCount >= n {
		return result.Err[Stats](result.InvalidArgument, ErrInvalidItemCount.Error())
	}
	stepFn, serr := resolveStepFn(plan.StepFunction)
	if serr != nil {
		return result.Err[Stats](result.InvalidArgument, serr.Error())
	}
	k := plan.K
	if k <= 0 {
		k = DefaultPlan().K
	}

	view, err := propgraph.NewView(g, nil, []propgraph.Descriptor{propgraph.EdgeProp[float64](ratingCol)})
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.PropertyNotFound).WithContext(err.Error()))
	}
	ratings, err := propgraph.EdgeColumn[float64](view, ratingCol)
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.PropertyNotFound).WithContext(err.Error()))
	}

	residual, err := propgraph.NewEdgeOutput[float64](g, out, 0)
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(err.Error()))
	}

	topo := g.Topology()
	pool := exec.Default()
	latent := initLatent(n, k, plan, pool)

	rate := plan.LearningRate
	lastErr := math.Inf(1)
	round := 0
	converged := false

	for {
		step := stepFn(round, plan, rate)
		inUpdateSum := reduce.NewSum[float64](pool.MaxThreads())

		derr := exec.DoAll(pool, itemCount, func(workerID, i int) error {
			neighbors, nerr := topo.Edges(uint32(i))
			if nerr != nil {
				return fmt.Errorf("mcsgd: edges of %d: %w", i, nerr)
			}
			base := topo.IndexOffset[i]
			pRow := latent[i*k : i*k+k]
			for j, u := range neighbors {
				if int(u) < itemCount {
					continue // not a bipartite item->user edge: skip
				}
				qRow := latent[int(u)*k : int(u)*k+k]
				r := ratings.Value(int(base) + j)
				var pred float64
				for kk := 0; kk < k; kk++ {
					pred += pRow[kk] * qRow[kk]
				}
				e := r - pred
				for kk := 0; kk < k; kk++ {
					pk := atomicLoadFloat64(&pRow[kk])
					qk := atomicLoadFloat64(&qRow[kk])
					atomicAddFloat64(&pRow[kk], step*(e*qk-plan.Lambda*pk))
					atomicAddFloat64(&qRow[kk], step*(e*pk-plan.Lambda*qk))
				}
				residual[int(base)+j] = e * e
				inUpdateSum.Update(workerID, e*e)
			}
			return nil
		})
		if derr != nil {
			return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(derr.Error()))
		}

		var curErr float64
		if plan.UseExactError {
			curErr, err = exactTotalError(pool, topo, ratings, latent, k, itemCount)
			if err != nil {
				return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(err.Error()))
			}
		} else {
			curErr = inUpdateSum.Reduce()
		}
		round++

		if math.IsNaN(curErr) || math.IsInf(curErr, 0) {
			lastErr = curErr
			break
		}
		if plan.FixedRounds <= 0 && !math.IsInf(lastErr, 1) && math.Abs(lastErr-curErr)/lastErr < plan.Tolerance {
			converged = true
			lastErr = curErr
			break
		}
		if plan.FixedRounds > 0 && round >= plan.FixedRounds {
			lastErr = curErr
			break
		}
		if plan.FixedRounds <= 0 && round >= plan.MaxRounds {
			lastErr = curErr
			break
		}
		if plan.StepFunction == Bold {
			if curErr < lastErr {
				rate *= 1.05
			} else {
				rate *= 0.5
			}
		}
		lastErr = curErr
	}

	return result.Ok(Stats{Rounds: round, FinalError: lastErr, Converged: converged, K: k, Latent: latent})
}

// exactTotalError recomputes the total squared error from the post-
// update latent vectors, for Plan.UseExactError's second full pass.
func exactTotalError(pool *exec.Pool, topo *topology.CSR, ratings *column.PODView[float64], latent []float64, k, itemCount int) (float64, error) {
	sum := reduce.NewSum[float64](pool.MaxThreads())
	err := exec.DoAll(pool, itemCount, func(workerID, i int) error {
		neighbors, nerr := topo.Edges(uint32(i))
		if nerr != nil {
			return fmt.Errorf("mcsgd: edges of %d: %w", i, nerr)
		}
		base := topo.IndexOffset[i]
		pRow := latent[i*k : i*k+k]
		for j, u := range neighbors {
			if int(u) < itemCount {
				continue
			}
			qRow := latent[int(u)*k : int(u)*k+k]
			var pred float64
			for kk := 0; kk < k; kk++ {
				pred += pRow[kk] * qRow[kk]
			}
			e := ratings.Value(int(base)+j) - pred
			sum.Update(workerID, e*e)
		}
		return nil
	})
	return sum.Reduce(), err
}

// initLatent allocates the N*K flat latent buffer and fills it either
// deterministically (Plan.UseDetInit) or via a per-worker PRNG slab
// uniform over [0, 1/sqrt(K)) — exec.PerThread[*rand.Rand] generalizes
// analytics/lcc's per-worker counter slab (exec.PerThread[[]uint64]) to a
// per-worker RNG, grounded the same way.
func initLatent(n, k int, plan Plan, pool *exec.Pool) []float64 {
	latent := make([]float64, n*k)
	if plan.UseDetInit {
		for idx := range latent {
			latent[idx] = 2*(float64(idx)/randMax) - 1
		}
		return latent
	}

	bound := 1 / math.Sqrt(float64(k))
	width := pool.MaxThreads()
	rngs := exec.NewPerThread[*rand.Rand](width)
	for i := 0; i < width; i++ {
		*rngs.Local(i) = rand.New(rand.NewSource(plan.Seed + int64(i)))
	}
	_ = exec.DoAll(pool, n, func(workerID, i int) error {
		rng := *rngs.Local(workerID)
		row := latent[i*k : i*k+k]
		for kk := range row {
			row[kk] = rng.Float64() * bound
		}
		return nil
	})
	return latent
}
