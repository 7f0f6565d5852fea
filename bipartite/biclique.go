// SPDX-License-Identifier: MIT

package bipartite

// IsBiClique reports whether g is exactly one biclique: every row of g is
// adjacent to every column of g.
//
// A single node is a (one-sided) biclique. A node set with two or more nodes
// on one side only is not, since it cannot be a single connected component.
// The empty graph is not a biclique.
//
// Complexity: O(V + E).
func IsBiClique(g *Graph) bool {
	order := g.Order()
	if order == 0 {
		return false
	}
	if order == 1 {
		return true
	}
	rows, cols := len(g.Rows()), len(g.Cols())
	if rows == 0 || cols == 0 {
		return false
	}

	// Simple graph: rows·cols edges means every pair is present.
	return g.Size() == rows*cols
}

// IsBiCliqueIn reports whether sub is a biclique inside parent that no parent
// edge leaves: sub ⊆ parent, IsBiClique(sub), and each node of sub has the
// same degree in parent as in sub.
//
// Complexity: O(V + E) of sub.
func IsBiCliqueIn(parent, sub *Graph) bool {
	if parent.layout != sub.layout || !IsBiClique(sub) {
		return false
	}
	for _, n := range sub.Nodes() {
		if !parent.HasNode(n) || parent.Degree(n) != sub.Degree(n) {
			return false
		}
	}
	for _, e := range sub.Edges() {
		if !parent.HasEdge(e.Row, e.Col) {
			return false
		}
	}

	return true
}

// IsBiTransitive reports whether g is a disjoint union of bicliques, i.e.
// whether every connected component of g is a biclique.
func IsBiTransitive(g *Graph) bool {
	for _, c := range ConnectedComponents(g) {
		if !IsBiClique(c) {
			return false
		}
	}
	return true
}

// Split returns the row and column indices of g, both ascending.
func Split(g *Graph) (rows, cols []int) {
	return g.Rows(), g.Cols()
}
