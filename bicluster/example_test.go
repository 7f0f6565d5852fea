// SPDX-License-Identifier: MIT

package bicluster_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/biclust/bicluster"
	"github.com/katalvlaran/biclust/bipartite"
	"github.com/katalvlaran/biclust/solver"
)

func ExampleCompute() {
	// Row 1 misses column 1; inserting that edge costs 1.
	w := bipartite.MustWeights([][]float64{
		{5, 5, -3},
		{5, -1, -3},
		{-3, -3, 2},
	})
	sel, err := solver.NewSelector(solver.Exact{})
	if err != nil {
		fmt.Println(err)
		return
	}
	sol, err := bicluster.Compute(context.Background(), w, sel)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range sol.Clusters {
		fmt.Println(c.Rows, c.Cols)
	}
	fmt.Println(sol.Cost, sol.Optimal)
	// Output:
	// [2] [2]
	// [0 1] [0 1]
	// 1 true
}
