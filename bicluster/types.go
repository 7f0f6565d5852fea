// SPDX-License-Identifier: MIT

package bicluster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/biclust/bipartite"
)

// Sentinel errors for the orchestrator.
var (
	// ErrContractViolation indicates a strategy returned a graph that is not a
	// disjoint union of bicliques over the subgraph's nodes.
	ErrContractViolation = errors.New("bicluster: strategy result is not bi-transitive")

	// ErrNilInput indicates nil weights or a nil strategy.
	ErrNilInput = errors.New("bicluster: weights and strategy are required")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("bicluster: workers must be positive")
)

// Strategy renders one connected subgraph bi-transitive. solver.Selector is
// the standard implementation.
//
// The returned graph must contain exactly sub's nodes; Cost is the cost of the
// edits; Optimal is true only if Cost is proven minimal.
type Strategy interface {
	Run(ctx context.Context, w *bipartite.Weights, sub *bipartite.Graph) (bipartite.SubSolution, error)
}

// Cluster is one output biclique: row and column indices, both ascending.
// Either side may be empty for an isolated row or column.
type Cluster struct {
	Rows []int
	Cols []int
}

// Stats summarises the decomposition.
type Stats struct {
	Components int // connected components of the instance
	Trivial    int // components that were already bicliques
	Hard       int // components sent to the strategy
}

// Solution is the result of Compute.
//
// Every row and every column of the instance appears in exactly one cluster.
type Solution struct {
	Clusters []Cluster
	Cost     float64
	Optimal  bool

	RunID string
	Label string
	Stats Stats
}

// ContractViolationError describes a rejected strategy result.
type ContractViolationError struct {
	Reason string
	Nodes  []bipartite.Node
	Edges  []bipartite.Edge
}

// Error lists the offending nodes and edges.
func (e *ContractViolationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\nNodes: [", ErrContractViolation, e.Reason)
	for i, n := range e.Nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.String())
	}
	sb.WriteString("]\nEdges: [")
	for i, ed := range e.Edges {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ed.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Unwrap returns ErrContractViolation.
func (e *ContractViolationError) Unwrap() error { return ErrContractViolation }

// clusterOf splits a verified component into a Cluster.
func clusterOf(g *bipartite.Graph) Cluster {
	rows, cols := bipartite.Split(g)
	if rows == nil {
		rows = []int{}
	}
	if cols == nil {
		cols = []int{}
	}
	return Cluster{Rows: rows, Cols: cols}
}
