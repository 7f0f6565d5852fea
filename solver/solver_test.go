// SPDX-License-Identifier: MIT

package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biclust/bipartite"
	"github.com/katalvlaran/biclust/solver"
)

func TestParseVariant(t *testing.T) {
	cases := []struct {
		in   string
		want solver.Variant
	}{
		{"exact", solver.Exact{TimeLimit: solver.DefaultTimeLimit}},
		{"ILP", solver.Exact{TimeLimit: solver.DefaultTimeLimit}},
		{" Heuristic ", solver.Heuristic{Bias: solver.DefaultBias}},
		{"ch", solver.Heuristic{Bias: solver.DefaultBias}},
	}
	for _, tc := range cases {
		got, err := solver.ParseVariant(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseVariant_Unknown(t *testing.T) {
	_, err := solver.ParseVariant("simplex")
	require.ErrorIs(t, err, solver.ErrUnknownVariant)
	require.Contains(t, err.Error(), `"simplex"`)
	require.Contains(t, err.Error(), `"exact"`)
	require.Contains(t, err.Error(), `"heuristic"`)
}

func TestNewSelector_Validation(t *testing.T) {
	_, err := solver.NewSelector(nil)
	require.ErrorIs(t, err, solver.ErrInvalidVariant)

	_, err = solver.NewSelector(solver.Heuristic{Bias: -0.1})
	require.ErrorIs(t, err, solver.ErrInvalidVariant)

	_, err = solver.NewSelector(&solver.Exact{})
	require.ErrorIs(t, err, solver.ErrUnknownVariant)

	sel, err := solver.NewSelector(solver.Exact{TimeLimit: time.Second})
	require.NoError(t, err)
	require.Equal(t, solver.NameExact, sel.Name())
}

func TestSelector_DispatchContracts(t *testing.T) {
	w := bipartite.MustWeights([][]float64{
		{5, 5},
		{5, -1},
	})
	sub := bipartite.BuildAll(w)
	ctx := context.Background()

	ex, err := solver.NewSelector(solver.Exact{})
	require.NoError(t, err)
	res, err := ex.Run(ctx, w, sub)
	require.NoError(t, err)
	require.True(t, res.Optimal, "unbounded exact search completes")
	require.InDelta(t, 1.0, res.Cost, 1e-9)

	he, err := solver.NewSelector(solver.Heuristic{Bias: 1})
	require.NoError(t, err)
	res, err = he.Run(ctx, w, sub)
	require.NoError(t, err)
	require.False(t, res.Optimal)
	cost, err := bipartite.EditCost(w, sub, res.Graph)
	require.NoError(t, err)
	require.InDelta(t, cost, res.Cost, 1e-12)
}

func TestSelector_SeededHeuristicReproducible(t *testing.T) {
	w := bipartite.MustWeights([][]float64{
		{1, -1, 1, -0.5, 0.3},
		{1, 1, -1, 0.5, -0.2},
		{-1, 1, 1, 1, 0.7},
		{0.4, -0.6, 1, -1, 1},
	})
	sub := bipartite.BuildAll(w)

	run := func() bipartite.SubSolution {
		sel, err := solver.NewSelector(solver.Heuristic{Bias: 0.4, Seed: solver.Seed(5)})
		require.NoError(t, err)
		res, err := sel.Run(context.Background(), w, sub)
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	require.Equal(t, a.Cost, b.Cost)
	require.Equal(t, a.Graph.Edges(), b.Graph.Edges())
}
