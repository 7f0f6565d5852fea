// SPDX-License-Identifier: MIT

// Package bicluster computes bi-clusters by bi-cluster editing: it turns the
// bipartite graph of a weight matrix into a disjoint union of bicliques at
// minimum (or heuristic) cost.
//
// Given W = (w[i][k]) of dimension n×m, the graph ([n],[m],E) has an edge
// (i,k) iff w[i][k] > 0. Deleting an edge costs w[i][k], inserting a non-edge
// costs −w[i][k].
//
// Compute exploits cost-separability: no edit inside one connected component
// can affect another, so the instance is solved component by component.
//
//	weights → graph → components ─┬─ already a biclique ──────────────→ cluster
//	                              └─ hard ─→ Strategy.Run ─→ verify ─→ clusters
//
// Every strategy result is checked: it must cover the subgraph's nodes and
// every component of it must be a biclique. A violation aborts the whole
// computation with a *ContractViolationError.
//
// The total cost is the sum of the strategies' costs; the solution is optimal
// iff every strategy reported optimality.
package bicluster
