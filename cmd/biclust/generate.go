// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/biclust/instance"
	"github.com/katalvlaran/biclust/solver/heuristic"
)

func newGenerateCmd() *cobra.Command {
	var (
		opts   instance.GenOptions
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random planted-partition matrix",
		Long: `Write a random matrix whose rows and columns are split into hidden groups.
Entries inside a group are positive, the rest negative, and each sign is
flipped with probability --noise.

Without --output the matrix is written to stdout as CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = heuristic.ProcessSeed()
			}
			p, err := instance.Generate(opts, heuristic.NewRand(seed))
			if err != nil {
				return err
			}
			if output == "" {
				return instance.Write(cmd.OutOrStdout(), p.Weights, instance.CSV)
			}
			return instance.Save(output, p.Weights)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&opts.Rows, "rows", 10, "number of rows")
	fl.IntVar(&opts.Cols, "cols", 10, "number of columns")
	fl.IntVar(&opts.Clusters, "clusters", 3, "number of planted groups")
	fl.Float64Var(&opts.Noise, "noise", 0.1, "sign flip probability in [0,1]")
	fl.Float64Var(&opts.MaxWeight, "max-weight", instance.DefaultMaxWeight, "largest entry magnitude")
	fl.Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	fl.StringVarP(&output, "output", "o", "", "write to this .csv or text file")

	return cmd
}
