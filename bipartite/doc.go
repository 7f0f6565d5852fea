// SPDX-License-Identifier: MIT

// Package bipartite models a weighted bipartite relation (rows × columns) as a
// single undirected graph and provides the primitives bi-cluster editing is
// built on.
//
// What is inside?
//
//	• Weights     – immutable n×m real matrix (gonum mat.Dense backing).
//	• Node/Layout – tagged row/column indices and their unified node ids.
//	• Graph       – node subset + row–column edges (gonum graph/simple backing).
//	• ConnectedComponents, IsBiClique, IsBiTransitive, EditCost.
//
// Edge semantics:
//
//	w[i][k] > 0  → edge (Row(i), Col(k)) exists; deleting it costs  w[i][k]
//	w[i][k] <= 0 → no edge;                     inserting it costs −w[i][k]
//
// Node ids:
//
//	Rows occupy ids 0..n−1 and columns n..n+m−1. The id space is an internal
//	detail of the graph backend; callers work with Row(i) / Col(k) and let
//	Layout translate at the boundary.
//
// Quick ASCII example (rows r0,r1; columns c0,c1; w = [[1,-1],[-1,1]]):
//
//	r0───c0     r1───c1
//
// is already a disjoint union of two bicliques.
package bipartite
