// SPDX-License-Identifier: MIT

package bicluster

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/biclust/bipartite"
)

// partial is the verified outcome of one hard subgraph.
type partial struct {
	clusters []Cluster
	cost     float64
	optimal  bool
}

// Compute partitions w into bi-clusters.
//
// Implementation:
//   - Stage 1: build the full graph and split it into connected components.
//   - Stage 2: components that are bicliques become clusters at zero cost;
//     the rest are hard subgraphs.
//   - Stage 3: run s on every hard subgraph (sequentially, or on a worker
//     pool with WithWorkers) and verify each result.
//   - Stage 4: aggregate clusters, cost (sum) and optimality (AND).
//
// Clusters are ordered: trivial components in component order, then the
// clusters of each hard subgraph in component order. The order does not
// depend on the number of workers.
//
// Contracts:
//   - Every row and every column of w appears in exactly one cluster; a row
//     or column with no positive entry forms a one-sided cluster.
//   - Cost is the sum of the hard subgraphs' reported costs (trivial
//     components contribute 0); cost separates over components, so this is
//     the cost of the whole edit.
//   - Optimal is the AND of the hard subgraphs' flags, true when there are
//     none.
//   - Results of s are never trusted: each is re-decomposed and every
//     component must be a biclique of the returned graph (verify).
//
// Concurrency:
//   - Workers == 1 (default): hard subgraphs run strictly one after another
//     and ctx is checked between them.
//   - Workers > 1: an errgroup with SetLimit(Workers); results land in a
//     slice indexed by subgraph, and the first error cancels the rest.
//     s must then be safe for concurrent Run calls (solver.Selector is).
//   - w is only read.
//
// Errors: ErrNilInput, ErrBadWorkers, *ContractViolationError (wraps
// ErrContractViolation), errors returned by s, ctx.Err(). No partial result
// is returned on error.
//
// Complexity:
//   - Time: O(n·m) for decomposition and verification plus the cost of s.
//   - Memory: O(n·m) for the graph and the per-subgraph results.
func Compute(ctx context.Context, w *bipartite.Weights, s Strategy, opts ...Option) (*Solution, error) {
	if w == nil || s == nil {
		return nil, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sol := &Solution{RunID: uuid.NewString(), Label: o.Label, Optimal: true}
	log := o.Logger.With(zap.String("run_id", sol.RunID))

	// Stage 1 + 2: decompose and classify.
	components := bipartite.ConnectedComponents(bipartite.BuildAll(w))
	var hard []*bipartite.Graph
	for _, c := range components {
		if bipartite.IsBiClique(c) {
			sol.Clusters = append(sol.Clusters, clusterOf(c))
			continue
		}
		hard = append(hard, c)
	}
	sol.Stats = Stats{Components: len(components), Trivial: len(sol.Clusters), Hard: len(hard)}
	o.Recorder.ObserveComponents(sol.Stats.Trivial, sol.Stats.Hard)
	log.Info("finished pre-processing",
		zap.Int("components", sol.Stats.Components),
		zap.Int("bi_cliques", sol.Stats.Trivial),
		zap.Int("subproblems", sol.Stats.Hard),
	)

	// Stage 3: solve.
	var (
		results []partial
		err     error
	)
	if o.Workers == 1 || len(hard) <= 1 {
		results, err = solveSequential(ctx, w, s, hard, o, log)
	} else {
		results, err = solveParallel(ctx, w, s, hard, o, log)
	}
	if err != nil {
		return nil, err
	}

	// Stage 4: aggregate.
	for _, r := range results {
		sol.Cost += r.cost
		sol.Optimal = sol.Optimal && r.optimal
		sol.Clusters = append(sol.Clusters, r.clusters...)
	}
	o.Recorder.ObserveObjective(sol.Cost)
	log.Info("finished computation of bi-clusters",
		zap.Float64("objective", sol.Cost),
		zap.Bool("optimal", sol.Optimal),
		zap.Int("bi_clusters", len(sol.Clusters)),
	)

	return sol, nil
}

func solveSequential(ctx context.Context, w *bipartite.Weights, s Strategy, hard []*bipartite.Graph, o Options, log *zap.Logger) ([]partial, error) {
	results := make([]partial, len(hard))
	for i, sub := range hard {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := solveOne(ctx, w, s, sub, i, len(hard), o, log)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}

	return results, nil
}

func solveParallel(ctx context.Context, w *bipartite.Weights, s Strategy, hard []*bipartite.Graph, o Options, log *zap.Logger) ([]partial, error) {
	results := make([]partial, len(hard))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, sub := range hard {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := solveOne(gctx, w, s, sub, i, len(hard), o, log)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// solveOne runs s on sub and verifies the result.
func solveOne(ctx context.Context, w *bipartite.Weights, s Strategy, sub *bipartite.Graph, idx, total int, o Options, log *zap.Logger) (partial, error) {
	log.Info("solving subproblem",
		zap.Int("index", idx+1),
		zap.Int("of", total),
		zap.String("dimension", fmt.Sprintf("%d x %d", len(sub.Rows()), len(sub.Cols()))),
	)

	start := time.Now()
	res, err := s.Run(ctx, w, sub)
	if err != nil {
		return partial{}, fmt.Errorf("bicluster: subproblem %d of %d: %w", idx+1, total, err)
	}
	clusters, err := verify(sub, res)
	if err != nil {
		o.Recorder.ObserveViolation()
		log.Error("strategy violated its contract", zap.Int("index", idx+1), zap.Error(err))
		return partial{}, err
	}
	elapsed := time.Since(start)
	o.Recorder.ObserveSubproblem(strategyName(s), res.Optimal, elapsed)
	log.Debug("subproblem solved",
		zap.Int("index", idx+1),
		zap.Float64("cost", res.Cost),
		zap.Bool("optimal", res.Optimal),
		zap.Int("bi_clusters", len(clusters)),
		zap.Duration("elapsed", elapsed),
	)

	return partial{clusters: clusters, cost: res.Cost, optimal: res.Optimal}, nil
}

// strategyName labels metrics with the strategy's Name, if it has one.
func strategyName(s Strategy) string {
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}
