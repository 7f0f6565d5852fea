// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an undirected bipartite graph over a subset of the nodes of a
// Layout. Edges only ever join a row to a column.
//
// Graph is not safe for concurrent mutation; concurrent reads are fine.
type Graph struct {
	layout Layout
	g      *simple.UndirectedGraph
}

// NewGraph returns an empty graph over layout l.
// Complexity: O(1).
func NewGraph(l Layout) *Graph {
	return &Graph{layout: l, g: simple.NewUndirectedGraph()}
}

// Build returns the subgraph of the instance induced by nodes: every node in
// nodes plus an edge for each row–column pair among them with positive weight.
//
// Errors: ErrNodeOutOfRange if any node lies outside w's layout.
// Complexity: O(|rows|·|cols|).
func Build(w *Weights, nodes []Node) (*Graph, error) {
	g := NewGraph(w.layout)
	var rows, cols []int
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if n.IsRow() {
			rows = append(rows, n.Index)
		} else {
			cols = append(cols, n.Index)
		}
	}
	for _, i := range rows {
		for _, k := range cols {
			if w.HasEdge(i, k) {
				g.setEdge(i, k)
			}
		}
	}

	return g, nil
}

// BuildAll returns the full graph over all n+m nodes of w.
// Complexity: O(n·m).
func BuildAll(w *Weights) *Graph {
	nodes := make([]Node, 0, w.layout.Order())
	for i := 0; i < w.layout.Rows; i++ {
		nodes = append(nodes, Row(i))
	}
	for k := 0; k < w.layout.Cols; k++ {
		nodes = append(nodes, Col(k))
	}
	// Every node is in range by construction.
	g, _ := Build(w, nodes)

	return g
}

// Layout returns the layout the graph's nodes belong to.
func (g *Graph) Layout() Layout { return g.layout }

// AddNode inserts n; adding an existing node is a no-op.
func (g *Graph) AddNode(n Node) error {
	if !g.layout.Contains(n) {
		return fmt.Errorf("AddNode(%s): %w", n, ErrNodeOutOfRange)
	}
	id := g.layout.ID(n)
	if g.g.Node(id) == nil {
		g.g.AddNode(simple.Node(id))
	}

	return nil
}

// HasNode reports whether n belongs to the graph.
func (g *Graph) HasNode(n Node) bool {
	if !g.layout.Contains(n) {
		return false
	}
	return g.g.Node(g.layout.ID(n)) != nil
}

// SetEdge inserts edge (row, col), adding missing endpoints.
func (g *Graph) SetEdge(row, col int) error {
	if !g.layout.Contains(Row(row)) || !g.layout.Contains(Col(col)) {
		return fmt.Errorf("SetEdge(r%d,c%d): %w", row, col, ErrNodeOutOfRange)
	}
	g.setEdge(row, col)

	return nil
}

func (g *Graph) setEdge(row, col int) {
	u := simple.Node(g.layout.ID(Row(row)))
	v := simple.Node(g.layout.ID(Col(col)))
	g.g.SetEdge(g.g.NewEdge(u, v))
}

// RemoveEdge deletes edge (row, col) if present; endpoints stay.
func (g *Graph) RemoveEdge(row, col int) {
	g.g.RemoveEdge(g.layout.ID(Row(row)), g.layout.ID(Col(col)))
}

// HasEdge reports whether (row, col) is an edge.
func (g *Graph) HasEdge(row, col int) bool {
	if !g.layout.Contains(Row(row)) || !g.layout.Contains(Col(col)) {
		return false
	}
	return g.g.HasEdgeBetween(g.layout.ID(Row(row)), g.layout.ID(Col(col)))
}

// Connect inserts every edge between rows and cols, making them one biclique
// (assuming no other edges touch them).
func (g *Graph) Connect(rows, cols []int) error {
	for _, i := range rows {
		if err := g.AddNode(Row(i)); err != nil {
			return err
		}
	}
	for _, k := range cols {
		if err := g.AddNode(Col(k)); err != nil {
			return err
		}
	}
	for _, i := range rows {
		for _, k := range cols {
			g.setEdge(i, k)
		}
	}

	return nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return g.g.Nodes().Len() }

// Size returns the number of edges.
// Complexity: O(V+E).
func (g *Graph) Size() int {
	total := 0
	for _, n := range g.ids() {
		if g.layout.IsRow(n) {
			total += g.g.From(n).Len()
		}
	}

	return total
}

// ids returns the node ids in ascending order.
func (g *Graph) ids() []int64 {
	nodes := graph.NodesOf(g.g.Nodes())
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })

	return out
}

// Nodes returns all nodes, rows first, each side in ascending index order.
func (g *Graph) Nodes() []Node {
	ids := g.ids()
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = g.layout.Node(id)
	}

	return out
}

// Rows returns the row indices of the graph in ascending order.
func (g *Graph) Rows() []int {
	var out []int
	for _, id := range g.ids() {
		if g.layout.IsRow(id) {
			out = append(out, int(id))
		}
	}
	return out
}

// Cols returns the column indices of the graph in ascending order.
func (g *Graph) Cols() []int {
	var out []int
	for _, id := range g.ids() {
		if !g.layout.IsRow(id) {
			out = append(out, g.layout.ToCol(id))
		}
	}
	return out
}

// Degree returns the number of edges incident to n (0 if n is absent).
func (g *Graph) Degree(n Node) int {
	if !g.HasNode(n) {
		return 0
	}
	return g.g.From(g.layout.ID(n)).Len()
}

// Neighbors returns the nodes adjacent to n, sorted.
func (g *Graph) Neighbors(n Node) []Node {
	if !g.HasNode(n) {
		return nil
	}
	adj := graph.NodesOf(g.g.From(g.layout.ID(n)))
	out := make([]Node, len(adj))
	for i, v := range adj {
		out[i] = g.layout.Node(v.ID())
	}
	sort.Slice(out, func(a, b int) bool { return g.layout.ID(out[a]) < g.layout.ID(out[b]) })

	return out
}

// Edges returns all edges ordered by row, then column.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, id := range g.ids() {
		if !g.layout.IsRow(id) {
			continue
		}
		for _, v := range graph.NodesOf(g.g.From(id)) {
			out = append(out, Edge{Row: int(id), Col: g.layout.ToCol(v.ID())})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}
		return out[a].Col < out[b].Col
	})

	return out
}

// Clone returns an independent deep copy of g.
func (g *Graph) Clone() *Graph {
	c := NewGraph(g.layout)
	for _, id := range g.ids() {
		c.g.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		c.setEdge(e.Row, e.Col)
	}

	return c
}

// CloneEmpty returns a graph with the same nodes and no edges.
func (g *Graph) CloneEmpty() *Graph {
	c := NewGraph(g.layout)
	for _, id := range g.ids() {
		c.g.AddNode(simple.Node(id))
	}
	return c
}

// SameNodes reports whether g and h contain exactly the same nodes.
func (g *Graph) SameNodes(h *Graph) bool {
	if g.layout != h.layout || g.Order() != h.Order() {
		return false
	}
	for _, id := range g.ids() {
		if h.g.Node(id) == nil {
			return false
		}
	}
	return true
}

// String renders g as "nodes=[r0 c0] edges=[(r0,c0)]", used in diagnostics.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("nodes=[")
	for i, n := range g.Nodes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.String())
	}
	sb.WriteString("] edges=[")
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
