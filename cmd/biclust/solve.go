// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/biclust/bicluster"
	"github.com/katalvlaran/biclust/config"
	"github.com/katalvlaran/biclust/export"
	"github.com/katalvlaran/biclust/instance"
	"github.com/katalvlaran/biclust/metrics"
	"github.com/katalvlaran/biclust/solver"
)

type solveFlags struct {
	configPath  string
	algorithm   string
	timeLimit   time.Duration
	tune        bool
	bias        float64
	seed        int64
	workers     int
	output      string
	label       string
	metricsFile string
	logLevel    string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <matrix>",
		Short: "Compute bi-clusters of a weight matrix",
		Long: `Compute bi-clusters of the matrix stored in <matrix> (CSV for .csv files,
whitespace-separated text otherwise).

Flags override the values of --config. Without --output the clusters are
printed to stdout; with it they are saved as XML (.xml) or YAML (.yaml/.yml).

Examples:
  biclust solve m.csv
  biclust solve m.txt --algorithm exact --time-limit 30s --tune
  biclust solve m.csv --algorithm heuristic --bias 0.7 --seed 3 --output out.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.StringVar(&f.algorithm, "algorithm", solver.NameExact, `"exact" or "heuristic"`)
	fl.DurationVar(&f.timeLimit, "time-limit", solver.DefaultTimeLimit, "exact solver limit per subproblem (0 = none)")
	fl.BoolVar(&f.tune, "tune", false, "compute the LP root bound in the exact solver")
	fl.Float64Var(&f.bias, "bias", solver.DefaultBias, "heuristic greediness in [0,1]")
	fl.Int64Var(&f.seed, "seed", 0, "heuristic random seed")
	fl.IntVar(&f.workers, "workers", 1, "subproblems solved concurrently")
	fl.StringVarP(&f.output, "output", "o", "", "save the result to this .xml/.yaml file")
	fl.StringVar(&f.label, "label", "", "instance description stored with the result")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// overlay copies explicitly set flags onto cfg.
func overlay(cmd *cobra.Command, cfg *config.Config, f solveFlags) {
	changed := cmd.Flags().Changed
	if changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if changed("time-limit") {
		cfg.Exact.TimeLimitSeconds = f.timeLimit.Seconds()
	}
	if changed("tune") {
		cfg.Exact.Tune = f.tune
	}
	if changed("bias") {
		cfg.Heuristic.Bias = f.bias
	}
	if changed("seed") {
		seed := f.seed
		cfg.Heuristic.Seed = &seed
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
}

func runSolve(cmd *cobra.Command, path string, f solveFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	overlay(cmd, cfg, f)
	variant, err := cfg.Variant()
	if err != nil {
		return err
	}

	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	w, err := instance.Load(path)
	if err != nil {
		return err
	}
	label := f.label
	if label == "" {
		label = fmt.Sprintf("%s (%d x %d)", filepath.Base(path), w.Rows(), w.Cols())
	}

	sel, err := solver.NewSelector(variant, solver.WithLogger(log))
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	log.Info("computing bi-clusters",
		zap.String("instance", label),
		zap.String("algorithm", sel.Name()),
		zap.Int("workers", cfg.Workers),
	)
	sol, err := bicluster.Compute(cmd.Context(), w, sel,
		bicluster.WithLogger(log),
		bicluster.WithWorkers(cfg.Workers),
		bicluster.WithRecorder(rec),
		bicluster.WithLabel(label),
	)
	if err != nil {
		return err
	}

	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}
	if f.output != "" {
		if err := export.Save(f.output, export.FromSolution(sol)); err != nil {
			return err
		}
		log.Info("saved bi-clusters", zap.String("path", f.output))
		return nil
	}

	return printSolution(cmd.OutOrStdout(), sol)
}

func printSolution(out io.Writer, sol *bicluster.Solution) error {
	if _, err := fmt.Fprintf(out, "instance: %s\nobjective: %g\noptimal: %t\nbi-clusters: %d\n",
		sol.Label, sol.Cost, sol.Optimal, len(sol.Clusters)); err != nil {
		return err
	}
	for i, c := range sol.Clusters {
		if _, err := fmt.Fprintf(out, "  %d: rows=%v cols=%v\n", i, c.Rows, c.Cols); err != nil {
			return err
		}
	}
	return nil
}
