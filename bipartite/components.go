// SPDX-License-Identifier: MIT

package bipartite

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ConnectedComponents splits g into its connected components, each returned
// as an induced subgraph. Isolated nodes form singleton components.
//
// Components partition g's node set. They are ordered by their smallest node
// id (rows before columns), so repeated calls on equal graphs agree.
//
// Complexity: O(V + E) for the traversal, plus O(V log V) for ordering.
func ConnectedComponents(g *Graph) []*Graph {
	groups := topo.ConnectedComponents(g.g)

	ids := make([][]int64, len(groups))
	for c, group := range groups {
		ids[c] = make([]int64, len(group))
		for i, n := range group {
			ids[c][i] = n.ID()
		}
		sort.Slice(ids[c], func(a, b int) bool { return ids[c][a] < ids[c][b] })
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a][0] < ids[b][0] })

	out := make([]*Graph, len(ids))
	for c, comp := range ids {
		sub := NewGraph(g.layout)
		for _, id := range comp {
			sub.g.AddNode(simple.Node(id))
		}
		// Every neighbour of a component member is itself a member.
		for _, id := range comp {
			if !g.layout.IsRow(id) {
				continue
			}
			nbrs := g.g.From(id)
			for nbrs.Next() {
				sub.setEdge(int(id), g.layout.ToCol(nbrs.Node().ID()))
			}
		}
		out[c] = sub
	}

	return out
}
