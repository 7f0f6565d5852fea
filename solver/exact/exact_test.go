// SPDX-License-Identifier: MIT

package exact_test

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biclust/bipartite"
	"github.com/katalvlaran/biclust/solver/exact"
)

// bruteForce enumerates every edge set over the full graph of w and returns
// the cheapest bi-transitive one. Only for tiny instances.
func bruteForce(t *testing.T, w *bipartite.Weights) float64 {
	t.Helper()
	n, m := w.Dims()
	full := bipartite.BuildAll(w)
	best := math.Inf(1)
	for mask := 0; mask < 1<<(n*m); mask++ {
		g := full.CloneEmpty()
		for p := 0; p < n*m; p++ {
			if mask&(1<<p) != 0 {
				require.NoError(t, g.SetEdge(p/m, p%m))
			}
		}
		if !bipartite.IsBiTransitive(g) {
			continue
		}
		c, err := bipartite.EditCost(w, full, g)
		require.NoError(t, err)
		best = math.Min(best, c)
	}
	return best
}

func randomWeights(rng *rand.Rand, n, m int) *bipartite.Weights {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for k := range rows[i] {
			rows[i][k] = math.Round((rng.Float64()*4-2)*10) / 10
		}
	}
	return bipartite.MustWeights(rows)
}

func TestRun_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 12; trial++ {
		w := randomWeights(rng, 3, 3)
		sub := bipartite.BuildAll(w)

		for _, tune := range []bool{false, true} {
			opts := exact.DefaultOptions()
			opts.Tune = tune
			res, err := exact.Run(context.Background(), w, sub, opts)
			require.NoError(t, err)
			require.True(t, res.Optimal)
			require.True(t, bipartite.IsBiTransitive(res.Graph), res.Graph.String())
			require.True(t, res.Graph.SameNodes(sub))
			require.InDelta(t, bruteForce(t, w), res.Cost, 1e-9, "trial %d tune %v", trial, tune)
		}
	}
}

func TestRun_AlreadyBiclique(t *testing.T) {
	w := bipartite.MustWeights([][]float64{{1, 1}, {1, 1}})
	res, err := exact.Run(context.Background(), w, bipartite.BuildAll(w), exact.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Optimal)
	require.Zero(t, res.Cost)
	require.Equal(t, 4, res.Graph.Size())
}

func TestRun_PathDeletesCheapEdge(t *testing.T) {
	// r1–c0–r0–c1 with (r1,c1) expensive to insert: delete (r1,c0) for 1.
	w := bipartite.MustWeights([][]float64{
		{5, 5},
		{1, -9},
	})
	res, err := exact.Run(context.Background(), w, bipartite.BuildAll(w), exact.Options{Tune: true})
	require.NoError(t, err)
	require.True(t, res.Optimal)
	require.InDelta(t, 1.0, res.Cost, 1e-9)
	require.False(t, res.Graph.HasEdge(1, 0))
}

func TestRun_Deterministic(t *testing.T) {
	w := randomWeights(rand.New(rand.NewSource(9)), 4, 4)
	sub := bipartite.BuildAll(w)
	a, err := exact.Run(context.Background(), w, sub, exact.DefaultOptions())
	require.NoError(t, err)
	b, err := exact.Run(context.Background(), w, sub, exact.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, a.Cost, b.Cost)
	require.Equal(t, a.Optimal, b.Optimal)
	require.Equal(t, a.Graph.Edges(), b.Graph.Edges())
}

// requireFeasible asserts res is a bi-transitive edit of sub with an honest cost.
func requireFeasible(t *testing.T, w *bipartite.Weights, sub *bipartite.Graph, res bipartite.SubSolution) {
	t.Helper()
	require.True(t, res.Graph.SameNodes(sub))
	require.True(t, bipartite.IsBiTransitive(res.Graph))
	cost, err := bipartite.EditCost(w, sub, res.Graph)
	require.NoError(t, err)
	require.InDelta(t, cost, res.Cost, 1e-9)
}

func TestRun_CancelledReturnsIncumbent(t *testing.T) {
	w := randomWeights(rand.New(rand.NewSource(21)), 7, 7)
	sub := bipartite.BuildAll(w)
	require.False(t, bipartite.IsBiTransitive(sub), "instance must need edits")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := exact.Run(ctx, w, sub, exact.Options{TimeLimit: time.Millisecond})
	require.NoError(t, err, "running out of budget is not an error")
	require.False(t, res.Optimal)
	requireFeasible(t, w, sub, res)
}

func TestRun_HonoursTimeLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("large instance")
	}
	w := randomWeights(rand.New(rand.NewSource(40)), 40, 40)
	sub := bipartite.BuildAll(w)

	start := time.Now()
	res, err := exact.Run(context.Background(), w, sub, exact.Options{TimeLimit: 100 * time.Millisecond})
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Less(t, elapsed, time.Second, "limit 100ms, took %v", elapsed)
	require.False(t, res.Optimal)
	requireFeasible(t, w, sub, res)
}

func TestRun_LayoutMismatch(t *testing.T) {
	w := bipartite.MustWeights([][]float64{{1}})
	other := bipartite.NewGraph(bipartite.Layout{Rows: 2, Cols: 2})
	_, err := exact.Run(context.Background(), w, other, exact.DefaultOptions())
	require.ErrorIs(t, err, bipartite.ErrLayoutMismatch)
}
