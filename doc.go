// SPDX-License-Identifier: MIT

// Package biclust is a bi-cluster editing toolkit.
//
// Given a rows x cols matrix of finite weights, an entry w[i][k] > 0 is an
// edge between row i and column k. The toolkit flips the smallest total
// |w| of entries so that every connected component of the result is a
// biclique: each of its rows is connected to each of its columns.
//
// The work is organised in packages:
//
//	bipartite/   - tagged row/column nodes, Weights, Graph, components, bicliques
//	solver/      - Exact and Heuristic variants and the Selector dispatching them
//	  exact/     - branch-and-bound over forbidden patterns, optional LP bound
//	  heuristic/ - randomised greedy construction plus local search
//	bicluster/   - Compute: decompose, solve hard components, verify, aggregate
//	instance/    - CSV and text matrices, planted-partition generator
//	export/      - XML and YAML result files
//	config/      - YAML configuration and logger construction
//	metrics/     - Prometheus collectors
//	cmd/biclust  - command-line front end
//
// Quick example:
//
//	w := bipartite.MustWeights([][]float64{{5, 5}, {5, -1}})
//	sel, _ := solver.NewSelector(solver.Exact{TimeLimit: time.Minute})
//	sol, _ := bicluster.Compute(ctx, w, sel)
//	// sol.Clusters == [{Rows: [0 1], Cols: [0 1]}], sol.Cost == 1, sol.Optimal
//
// Cost separates over connected components, so components are solved
// independently and, with bicluster.WithWorkers, in parallel.
package biclust
