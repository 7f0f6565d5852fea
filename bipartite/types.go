// SPDX-License-Identifier: MIT

package bipartite

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bipartite graph model.
var (
	// ErrEmptyMatrix indicates a weight matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("bipartite: weight matrix must have at least one row and one column")

	// ErrRaggedMatrix indicates rows of differing lengths.
	ErrRaggedMatrix = errors.New("bipartite: all weight rows must have the same length")

	// ErrNonFiniteWeight indicates a NaN or ±Inf entry.
	ErrNonFiniteWeight = errors.New("bipartite: weights must be finite")

	// ErrNodeOutOfRange indicates a node whose index lies outside the layout.
	ErrNodeOutOfRange = errors.New("bipartite: node index out of range")

	// ErrLayoutMismatch indicates graphs or weights with different dimensions.
	ErrLayoutMismatch = errors.New("bipartite: layout mismatch")
)

// Side tells whether a Node is a row or a column of the weight matrix.
type Side uint8

const (
	// RowSide marks a row node.
	RowSide Side = iota
	// ColSide marks a column node.
	ColSide
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == RowSide {
		return "row"
	}
	return "col"
}

// Node is a tagged index: a row i or a column k of the weight matrix.
// The zero value is Row(0).
type Node struct {
	Side  Side
	Index int
}

// Row returns the node of row i.
func Row(i int) Node { return Node{Side: RowSide, Index: i} }

// Col returns the node of column k.
func Col(k int) Node { return Node{Side: ColSide, Index: k} }

// IsRow reports whether n is a row node.
func (n Node) IsRow() bool { return n.Side == RowSide }

// String renders n as "r3" or "c0".
func (n Node) String() string {
	if n.Side == RowSide {
		return fmt.Sprintf("r%d", n.Index)
	}
	return fmt.Sprintf("c%d", n.Index)
}

// Edge is an undirected row–column edge, stored by matrix indices.
type Edge struct {
	Row int
	Col int
}

// String renders e as "(r1,c2)".
func (e Edge) String() string { return fmt.Sprintf("(r%d,c%d)", e.Row, e.Col) }

// Layout fixes the matrix dimensions and translates between tagged nodes and
// the unified node id space used by the graph backend.
//
// Rows map to ids 0..Rows−1, columns to Rows..Rows+Cols−1.
type Layout struct {
	Rows int
	Cols int
}

// Order returns Rows+Cols, the number of nodes of the full graph.
func (l Layout) Order() int { return l.Rows + l.Cols }

// Contains reports whether n addresses a valid row or column.
func (l Layout) Contains(n Node) bool {
	if n.Index < 0 {
		return false
	}
	if n.Side == RowSide {
		return n.Index < l.Rows
	}
	return n.Index < l.Cols
}

// ID returns the unified node id of n.
// Complexity: O(1).
func (l Layout) ID(n Node) int64 {
	if n.Side == RowSide {
		return int64(n.Index)
	}
	return int64(l.Rows + n.Index)
}

// Node translates a unified id back into a tagged node.
// A node is a row iff its id is below Rows.
func (l Layout) Node(id int64) Node {
	if l.IsRow(id) {
		return Row(int(id))
	}
	return Col(l.ToCol(id))
}

// IsRow reports whether id is a row id.
func (l Layout) IsRow(id int64) bool { return id < int64(l.Rows) }

// ToCol maps a column id back to its column index.
func (l Layout) ToCol(id int64) int { return int(id) - l.Rows }

// SubSolution is what a solving strategy returns for one subgraph: the edited
// graph over the same nodes, the cost of the edits and whether that cost is
// proven minimal.
type SubSolution struct {
	Graph   *Graph
	Cost    float64
	Optimal bool
}
