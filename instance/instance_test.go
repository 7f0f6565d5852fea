// SPDX-License-Identifier: MIT

package instance_test

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biclust/bicluster"
	"github.com/katalvlaran/biclust/bipartite"
	"github.com/katalvlaran/biclust/instance"
	"github.com/katalvlaran/biclust/solver"
)

func TestRead_Text(t *testing.T) {
	src := "# 2x3 toy\n1 -2  0.5\n\n  -1 3 4\n"
	w, err := instance.Read(strings.NewReader(src), instance.Text)
	require.NoError(t, err)
	n, m := w.Dims()
	require.Equal(t, 2, n)
	require.Equal(t, 3, m)
	require.Equal(t, 0.5, w.At(0, 2))
	require.Equal(t, -1.0, w.At(1, 0))
}

func TestRead_CSV(t *testing.T) {
	src := "# header comment\n1, -2\n3,4\n"
	w, err := instance.Read(strings.NewReader(src), instance.CSV)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, w.RawRow(1))
}

func TestRead_Errors(t *testing.T) {
	_, err := instance.Read(strings.NewReader("1 x\n"), instance.Text)
	require.ErrorIs(t, err, instance.ErrBadNumber)
	require.Contains(t, err.Error(), "line 1, column 2")

	_, err = instance.Read(strings.NewReader("1,2\n3\n"), instance.CSV)
	require.ErrorIs(t, err, bipartite.ErrRaggedMatrix)

	_, err = instance.Read(strings.NewReader("# nothing\n"), instance.Text)
	require.ErrorIs(t, err, bipartite.ErrEmptyMatrix)

	_, err = instance.Read(strings.NewReader("1 NaN\n"), instance.Text)
	require.ErrorIs(t, err, bipartite.ErrNonFiniteWeight)
}

func TestSaveLoad(t *testing.T) {
	w := bipartite.MustWeights([][]float64{{1.25, -3}, {0.1, 7}})
	dir := t.TempDir()
	for _, name := range []string{"m.csv", "m.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, instance.Save(path, w))
		back, err := instance.Load(path)
		require.NoError(t, err, name)
		require.Equal(t, w.RawRow(0), back.RawRow(0), name)
		require.Equal(t, w.RawRow(1), back.RawRow(1), name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "m.csv"))
	require.NoError(t, err)
	require.Equal(t, "1.25,-3\n0.1,7\n", string(data))

	_, err = instance.Load(filepath.Join(dir, "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, bipartite.MustWeights([][]float64{{1, -2}}), instance.Text))
	require.Equal(t, "1 -2\n", buf.String())
}

func TestGenerate_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := instance.Generate(instance.GenOptions{Rows: 0, Cols: 2, Clusters: 1}, rng)
	require.ErrorIs(t, err, instance.ErrBadDimensions)
	_, err = instance.Generate(instance.GenOptions{Rows: 2, Cols: 2}, rng)
	require.ErrorIs(t, err, instance.ErrBadClusters)
	_, err = instance.Generate(instance.GenOptions{Rows: 2, Cols: 2, Clusters: 1, Noise: 1.5}, rng)
	require.ErrorIs(t, err, instance.ErrBadNoise)
	_, err = instance.Generate(instance.GenOptions{Rows: 2, Cols: 2, Clusters: 1, MaxWeight: 0.5}, rng)
	require.ErrorIs(t, err, instance.ErrBadMaxWeight)
	_, err = instance.Generate(instance.GenOptions{Rows: 2, Cols: 2, Clusters: 1}, nil)
	require.ErrorIs(t, err, instance.ErrNeedRandSource)
}

func TestGenerate_NoiselessIsBiTransitive(t *testing.T) {
	p, err := instance.Generate(instance.GenOptions{Rows: 8, Cols: 6, Clusters: 3}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Zero(t, p.Cost())
	require.True(t, bipartite.IsBiTransitive(bipartite.BuildAll(p.Weights)))
}

func TestGenerate_Reproducible(t *testing.T) {
	opts := instance.GenOptions{Rows: 5, Cols: 4, Clusters: 2, Noise: 0.2}
	a, err := instance.Generate(opts, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := instance.Generate(opts, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a.RowGroups, b.RowGroups)
	for i := 0; i < opts.Rows; i++ {
		require.Equal(t, a.Weights.RawRow(i), b.Weights.RawRow(i))
	}
}

func TestGenerate_PlantedCostBoundsOptimum(t *testing.T) {
	p, err := instance.Generate(instance.GenOptions{Rows: 4, Cols: 4, Clusters: 2, Noise: 0.15}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	sel, err := solver.NewSelector(solver.Exact{})
	require.NoError(t, err)

	sol, err := bicluster.Compute(context.Background(), p.Weights, sel)
	require.NoError(t, err)
	require.True(t, sol.Optimal)
	require.LessOrEqual(t, sol.Cost, p.Cost()+1e-9)
}
