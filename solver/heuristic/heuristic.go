// SPDX-License-Identifier: MIT

package heuristic

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/biclust/bipartite"
)

// improveEps is the minimal cost decrease a local-search move must achieve.
const improveEps = 1e-9

// unassigned marks a node not yet placed in a cluster.
const unassigned = -1

// Run renders sub bi-transitive and returns the edited graph, its actual edit
// cost (bipartite.EditCost) and Optimal=false.
//
// Implementation:
//   - Stage 1: order nodes by positive weighted degree, heaviest first.
//   - Stage 2: place each node into an existing cluster or a new one. The
//     candidates are priced by the flips they cause against already placed
//     nodes; those within (1-Bias) of the price range form the restricted
//     candidate list and one is drawn from opts.Rand. Bias 1.0 keeps only
//     the cheapest candidates and takes the first, so no random draw happens.
//   - Stage 3: local search moves single nodes to the cluster that lowers the
//     total cost most, until no move helps or MaxPasses is reached.
//   - Stage 4: connect every row to every column of its cluster and price the
//     result with bipartite.EditCost.
//
// Contracts:
//   - sub's nodes belong to w's layout.
//   - The returned graph has exactly sub's nodes.
//
// Errors: ErrBadBias, bipartite.ErrLayoutMismatch, or ctx.Err() if ctx is
// already done before construction starts. Cancellation during local search
// keeps the current (feasible) assignment.
//
// Complexity:
//   - Time: construction O(V²); each local-search pass O(V²); V = |sub|.
//   - Memory: O(V + nr·nc).
func Run(ctx context.Context, w *bipartite.Weights, sub *bipartite.Graph, opts Options) (bipartite.SubSolution, error) {
	if err := opts.validate(); err != nil {
		return bipartite.SubSolution{}, err
	}
	if sub.Layout() != w.Layout() {
		return bipartite.SubSolution{}, fmt.Errorf("heuristic: %w", bipartite.ErrLayoutMismatch)
	}
	if err := ctx.Err(); err != nil {
		return bipartite.SubSolution{}, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(ProcessSeed())
	}

	st := newState(w, sub)
	st.construct(opts.Bias, rng)

	passes := opts.MaxPasses
	if passes == 0 {
		passes = DefaultMaxPasses
	}
	for p := 0; p < passes; p++ {
		if ctx.Err() != nil || !st.improve() {
			break
		}
	}

	edited, err := st.graph(sub)
	if err != nil {
		return bipartite.SubSolution{}, err
	}
	cost, err := bipartite.EditCost(w, sub, edited)
	if err != nil {
		return bipartite.SubSolution{}, err
	}

	return bipartite.SubSolution{Graph: edited, Cost: cost, Optimal: false}, nil
}

// state holds one assignment of local nodes to clusters.
// Local node v < nr is row rows[v]; v ≥ nr is column cols[v−nr].
type state struct {
	rows, cols []int
	nr, nc     int
	wt         []float64 // wt[r*nc+c]
	cluster    []int     // local node → cluster id, or unassigned
	size       []int     // cluster id → member count
}

func newState(w *bipartite.Weights, sub *bipartite.Graph) *state {
	rows, cols := sub.Rows(), sub.Cols()
	st := &state{
		rows: rows,
		cols: cols,
		nr:   len(rows),
		nc:   len(cols),
		wt:   make([]float64, len(rows)*len(cols)),
	}
	for r, i := range rows {
		for c, k := range cols {
			st.wt[r*st.nc+c] = w.At(i, k)
		}
	}
	st.cluster = make([]int, st.nr+st.nc)
	for v := range st.cluster {
		st.cluster[v] = unassigned
	}

	return st
}

// weight returns the weight between local node v and its j-th opposite node.
func (st *state) weight(v, j int) float64 {
	if v < st.nr {
		return st.wt[v*st.nc+j]
	}
	return st.wt[j*st.nc+(v-st.nr)]
}

// opposite returns the local ids range [lo,hi) of v's opposite side.
func (st *state) opposite(v int) (lo, hi int) {
	if v < st.nr {
		return st.nr, st.nr + st.nc
	}
	return 0, st.nr
}

// oppositeIndex maps a local opposite node u to its index j used by weight.
func (st *state) oppositeIndex(u int) int {
	if u >= st.nr {
		return u - st.nr
	}
	return u
}

// order lists local nodes by decreasing positive weighted degree.
func (st *state) order() []int {
	deg := make([]float64, st.nr+st.nc)
	for r := 0; r < st.nr; r++ {
		for c := 0; c < st.nc; c++ {
			if x := st.wt[r*st.nc+c]; x > 0 {
				deg[r] += x
				deg[st.nr+c] += x
			}
		}
	}
	out := make([]int, len(deg))
	for v := range out {
		out[v] = v
	}
	sort.SliceStable(out, func(a, b int) bool { return deg[out[a]] > deg[out[b]] })

	return out
}

// prices returns, for every open cluster id and finally for a fresh cluster,
// the cost of placing v there against the already placed opposite nodes.
func (st *state) prices(v int, placedOnly bool) (ids []int, cost []float64) {
	lo, hi := st.opposite(v)
	base := 0.0
	delta := make([]float64, len(st.size))
	for u := lo; u < hi; u++ {
		c := st.cluster[u]
		if c == unassigned && placedOnly {
			continue
		}
		x := st.weight(v, st.oppositeIndex(u))
		// Pair across clusters: pay to delete an edge.
		base += math.Max(0, x)
		if c != unassigned {
			// Same cluster instead: pay to insert a non-edge.
			delta[c] += math.Max(0, -x) - math.Max(0, x)
		}
	}
	for c, n := range st.size {
		if n == 0 {
			continue
		}
		ids = append(ids, c)
		cost = append(cost, base+delta[c])
	}
	ids = append(ids, len(st.size))
	cost = append(cost, base)

	return ids, cost
}

// place assigns v to cluster c, opening it if c is fresh.
func (st *state) place(v, c int) {
	if old := st.cluster[v]; old != unassigned {
		st.size[old]--
	}
	if c == len(st.size) {
		st.size = append(st.size, 0)
	}
	st.cluster[v] = c
	st.size[c]++
}

// construct places every node, drawing from the restricted candidate list.
func (st *state) construct(bias float64, rng *rand.Rand) {
	for _, v := range st.order() {
		ids, cost := st.prices(v, true)
		lo, hi := cost[0], cost[0]
		for _, x := range cost[1:] {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		limit := lo + (1-bias)*(hi-lo) + improveEps

		var rcl []int
		for i, x := range cost {
			if x <= limit {
				rcl = append(rcl, ids[i])
			}
		}
		pick := rcl[0]
		if bias < 1 && len(rcl) > 1 {
			pick = rcl[rng.Intn(len(rcl))]
		}
		st.place(v, pick)
	}
}

// improve runs one local-search pass and reports whether any move was made.
func (st *state) improve() bool {
	moved := false
	for v := range st.cluster {
		ids, cost := st.prices(v, false)
		cur := st.cluster[v]

		curCost := math.Inf(1)
		for i, c := range ids {
			if c == cur {
				curCost = cost[i]
				break
			}
		}
		// A singleton moving to a fresh cluster changes nothing.
		best, bestCost := cur, curCost
		for i, c := range ids {
			if c == len(st.size) && st.size[cur] == 1 {
				continue
			}
			if cost[i] < bestCost-improveEps {
				best, bestCost = c, cost[i]
			}
		}
		if best != cur {
			st.place(v, best)
			moved = true
		}
	}

	return moved
}

// graph materialises the assignment: each cluster becomes a biclique.
func (st *state) graph(sub *bipartite.Graph) (*bipartite.Graph, error) {
	edited := sub.CloneEmpty()
	members := make(map[int][2][]int)
	for v, c := range st.cluster {
		m := members[c]
		if v < st.nr {
			m[0] = append(m[0], st.rows[v])
		} else {
			m[1] = append(m[1], st.cols[v-st.nr])
		}
		members[c] = m
	}
	for _, m := range members {
		if err := edited.Connect(m[0], m[1]); err != nil {
			return nil, err
		}
	}

	return edited, nil
}
