// SPDX-License-Identifier: MIT

package bicluster

import (
	"math"

	"github.com/katalvlaran/biclust/bipartite"
)

// verify checks a strategy result against sub and returns its clusters.
//
// The result must carry a graph over exactly sub's nodes, a finite
// non-negative cost, and every connected component of the graph must be a
// biclique no edge leaves.
func verify(sub *bipartite.Graph, res bipartite.SubSolution) ([]Cluster, error) {
	if res.Graph == nil {
		return nil, &ContractViolationError{Reason: "no graph returned", Nodes: sub.Nodes()}
	}
	if !res.Graph.SameNodes(sub) {
		return nil, &ContractViolationError{
			Reason: "node set differs from the subgraph",
			Nodes:  res.Graph.Nodes(),
			Edges:  res.Graph.Edges(),
		}
	}
	if math.IsNaN(res.Cost) || math.IsInf(res.Cost, 0) || res.Cost < 0 {
		return nil, &ContractViolationError{
			Reason: "cost is not a finite non-negative number",
			Nodes:  res.Graph.Nodes(),
			Edges:  res.Graph.Edges(),
		}
	}

	components := bipartite.ConnectedComponents(res.Graph)
	clusters := make([]Cluster, 0, len(components))
	for _, c := range components {
		if !bipartite.IsBiCliqueIn(res.Graph, c) {
			return nil, &ContractViolationError{
				Reason: "subgraph should be a bi-clique but is not",
				Nodes:  c.Nodes(),
				Edges:  c.Edges(),
			}
		}
		clusters = append(clusters, clusterOf(c))
	}

	return clusters, nil
}
