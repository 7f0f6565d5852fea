// SPDX-License-Identifier: MIT

// Package heuristic renders a connected bipartite subgraph bi-transitive with a
// randomised constructive heuristic followed by a single-node-move local search.
//
// Construction:
//
//  1. Order the subgraph's nodes by decreasing positive weighted degree
//     (node id breaks ties).
//  2. For each node, price every open cluster and one new cluster against the
//     opposite-side nodes already placed: a pair inside the same cluster must
//     become an edge (cost max(0,−w)), a pair across clusters must not be one
//     (cost max(0,w)). Every pair is priced exactly once, when its second
//     endpoint is placed, so the prices add up to the final edit cost.
//  3. Keep the options priced ≤ min + (1−Bias)·(max−min) and draw one
//     uniformly. Bias 1.0 always takes the cheapest (first on ties), which
//     makes the run deterministic whatever the random source.
//
// Local search:
//
//	Move one node at a time to the cluster (or new singleton) that lowers the
//	cost the most; stop after a pass without improvement or MaxPasses passes.
//
// The result is never certified optimal.
package heuristic
