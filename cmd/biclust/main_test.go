// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biclust/instance"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeMatrix(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSolve_PrintsClusters(t *testing.T) {
	path := writeMatrix(t, "toy.csv", "5,5\n5,-1\n")
	out, err := run(t, "solve", path, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "instance: toy.csv (2 x 2)")
	require.Contains(t, out, "objective: 1\n")
	require.Contains(t, out, "optimal: true")
	require.Contains(t, out, "0: rows=[0 1] cols=[0 1]")
}

func TestSolve_HeuristicToXMLWithMetrics(t *testing.T) {
	dir := t.TempDir()
	path := writeMatrix(t, "toy.txt", "5 5 -1\n5 -1 -1\n-1 -1 2\n")
	xmlPath := filepath.Join(dir, "out.xml")
	metricsPath := filepath.Join(dir, "biclust.prom")

	_, err := run(t, "solve", path,
		"--algorithm", "heuristic", "--bias", "0.5", "--seed", "7",
		"--workers", "2", "--label", "toy",
		"--output", xmlPath, "--metrics-file", metricsPath, "--log-level", "error")
	require.NoError(t, err)

	data, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `instance="toy"`)
	require.Contains(t, string(data), `is_optimal="false"`)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), `biclust_subproblems_total{optimal="false",variant="heuristic"} 1`)
}

func TestSolve_ConfigFile(t *testing.T) {
	matrix := writeMatrix(t, "toy.csv", "5,5\n5,-1\n")
	cfg := writeMatrix(t, "biclust.yaml", "algorithm: heuristic\nlog:\n  level: error\n")
	out, err := run(t, "solve", matrix, "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "optimal: false")
}

func TestSolve_Errors(t *testing.T) {
	path := writeMatrix(t, "toy.csv", "1,2\n")
	_, err := run(t, "solve", path, "--algorithm", "simplex")
	require.Error(t, err)
	require.Contains(t, err.Error(), "simplex")

	_, err = run(t, "solve", filepath.Join(t.TempDir(), "none.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "solve")
	require.Error(t, err)
}

func TestGenerate_SeededOutput(t *testing.T) {
	a, err := run(t, "generate", "--rows", "4", "--cols", "3", "--seed", "11")
	require.NoError(t, err)
	b, err := run(t, "generate", "--rows", "4", "--cols", "3", "--seed", "11")
	require.NoError(t, err)
	require.Equal(t, a, b)

	path := filepath.Join(t.TempDir(), "m.csv")
	_, err = run(t, "generate", "--rows", "4", "--cols", "3", "--seed", "11", "--output", path)
	require.NoError(t, err)
	w, err := instance.Load(path)
	require.NoError(t, err)
	n, m := w.Dims()
	require.Equal(t, 4, n)
	require.Equal(t, 3, m)

	_, err = run(t, "generate", "--noise", "2")
	require.ErrorIs(t, err, instance.ErrBadNoise)
}
