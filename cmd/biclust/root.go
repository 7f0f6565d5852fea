// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "biclust",
		Short: "Bi-cluster editing for weighted bipartite matrices",
		Long: `biclust turns the positive entries of a rows x cols weight matrix into a
disjoint union of bicliques at minimum total flip cost.

Connected components that already are bicliques are kept as they are; every
other component is solved with the exact branch-and-bound solver or the
randomised heuristic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newGenerateCmd())

	return root
}
