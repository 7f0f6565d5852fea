// SPDX-License-Identifier: MIT

package bipartite

import "fmt"

// EditCost returns the cost of turning sub into edited, both over the same
// node set, under weights w:
//
//	Σ over row i, column k of sub:
//	  w[i][k]   if (i,k) is an instance edge missing from edited,
//	  −w[i][k]  if (i,k) is not an instance edge but present in edited.
//
// Only the instance edges matter, not the edges currently stored in sub.
//
// Errors: ErrLayoutMismatch if the layouts differ from w's or the node sets differ.
// Complexity: O(|rows|·|cols|).
func EditCost(w *Weights, sub, edited *Graph) (float64, error) {
	if sub.layout != w.layout || edited.layout != w.layout {
		return 0, fmt.Errorf("EditCost: %w", ErrLayoutMismatch)
	}
	if !sub.SameNodes(edited) {
		return 0, fmt.Errorf("EditCost: node sets differ: %w", ErrLayoutMismatch)
	}

	var cost float64
	rows, cols := sub.Rows(), sub.Cols()
	for _, i := range rows {
		for _, k := range cols {
			if w.HasEdge(i, k) != edited.HasEdge(i, k) {
				cost += w.FlipCost(i, k)
			}
		}
	}

	return cost, nil
}
