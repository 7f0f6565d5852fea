// SPDX-License-Identifier: MIT

package exact

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/biclust/bipartite"
	"github.com/katalvlaran/biclust/solver/heuristic"
)

// eps is the tolerance for bound comparisons.
const eps = 1e-9

// lpSlack is the relative margin removed from the LP relaxation value before
// it is used as a proof of optimality.
const lpSlack = 1e-7

// engine holds all search data. Pairs are indexed p = r*nc + c over the
// subgraph's local rows r and columns c.
type engine struct {
	rows, cols []int
	nr, nc     int

	wt      []float64 // weight per pair
	flip    []float64 // cost of changing a pair's state
	orig    []bool    // instance edge per pair
	present []bool    // current state
	fixed   []bool    // pair may no longer change
	used    []bool    // scratch for the packing bound

	// Incumbent (UB).
	best     []bool
	bestCost float64
	rootLB   float64 // valid only when haveLB
	haveLB   bool

	// Budget.
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       int
	stopped     bool
	proven      bool
}

func (e *engine) pair(r, c int) int { return r*e.nc + c }

func newEngine(ctx context.Context, w *bipartite.Weights, sub *bipartite.Graph) *engine {
	rows, cols := sub.Rows(), sub.Cols()
	e := &engine{rows: rows, cols: cols, nr: len(rows), nc: len(cols), ctx: ctx}
	P := e.nr * e.nc
	e.wt = make([]float64, P)
	e.flip = make([]float64, P)
	e.orig = make([]bool, P)
	e.present = make([]bool, P)
	e.fixed = make([]bool, P)
	e.used = make([]bool, P)
	e.best = make([]bool, P)
	for r, i := range rows {
		for c, k := range cols {
			p := e.pair(r, c)
			e.wt[p] = w.At(i, k)
			e.flip[p] = w.FlipCost(i, k)
			e.orig[p] = w.HasEdge(i, k)
			e.present[p] = e.orig[p]
		}
	}

	return e
}

// Run solves sub to optimality unless the time limit or ctx stops the search
// first, in which case the best solution found is returned with Optimal=false.
//
// Implementation:
//   - Stage 1: seed the incumbent (UB) with the greedy heuristic; ctx
//     cancellation is ignored here so a feasible answer always exists.
//   - Stage 2: with opts.Tune, bound the root with the LP relaxation
//     (skipped above opts.MaxLPRows conflicts).
//   - Stage 3: depth-first branch and bound until the tree is exhausted,
//     the incumbent meets the root bound, or the budget runs out.
//   - Stage 4: materialise the incumbent as a graph and recompute its cost
//     with bipartite.EditCost.
//
// Contracts:
//   - sub's nodes belong to w's layout.
//   - The returned graph has exactly sub's nodes and is bi-transitive.
//   - Optimal is true iff Stage 3 finished without stopping.
//
// Errors: bipartite.ErrLayoutMismatch; errors from the incumbent heuristic.
// Hitting the time limit or a cancelled ctx is not an error.
//
// Complexity:
//   - Time: exponential in nr·nc in the worst case; O(nr²·nc²) per node.
//   - Memory: O(nr·nc) for the pair state plus O(depth) recursion.
func Run(ctx context.Context, w *bipartite.Weights, sub *bipartite.Graph, opts Options) (bipartite.SubSolution, error) {
	if sub.Layout() != w.Layout() {
		return bipartite.SubSolution{}, fmt.Errorf("exact: %w", bipartite.ErrLayoutMismatch)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	// Stage 1: incumbent from the greedy heuristic.
	seed, err := heuristic.Run(context.WithoutCancel(ctx), w, sub, heuristic.DefaultOptions())
	if err != nil {
		return bipartite.SubSolution{}, fmt.Errorf("exact: incumbent: %w", err)
	}

	e := newEngine(ctx, w, sub)
	for r, i := range e.rows {
		for c, k := range e.cols {
			e.best[e.pair(r, c)] = seed.Graph.HasEdge(i, k)
		}
	}
	e.bestCost = e.costOf(e.best)
	e.useDeadline, e.deadline = opts.TimeLimit > 0, deadline

	// Stage 2: optional LP root bound.
	if opts.Tune {
		maxRows := opts.MaxLPRows
		if maxRows == 0 {
			maxRows = DefaultMaxLPRows
		}
		if lb, ok := lpBound(e, maxRows); ok {
			e.rootLB, e.haveLB = safeBound(lb), true
			log.Debug("exact: LP root bound", zap.Float64("lower_bound", e.rootLB), zap.Float64("incumbent", e.bestCost))
		} else {
			log.Debug("exact: LP root bound skipped", zap.Int("rows", e.nr), zap.Int("cols", e.nc))
		}
	}

	// Stage 3: search.
	if e.provenBy(e.bestCost) {
		e.proven = true
	} else {
		e.dfs(0)
	}
	if e.stopped {
		log.Debug("exact: search stopped before proof",
			zap.Int("nodes", e.steps), zap.Float64("incumbent", e.bestCost), zap.Error(ctx.Err()))
	}

	// Stage 4: materialise.
	edited := sub.CloneEmpty()
	for r, i := range e.rows {
		for c, k := range e.cols {
			if e.best[e.pair(r, c)] {
				if err := edited.SetEdge(i, k); err != nil {
					return bipartite.SubSolution{}, err
				}
			}
		}
	}
	cost, err := bipartite.EditCost(w, sub, edited)
	if err != nil {
		return bipartite.SubSolution{}, err
	}

	return bipartite.SubSolution{Graph: edited, Cost: cost, Optimal: !e.stopped}, nil
}

// costOf returns the edit cost of state s relative to the instance.
func (e *engine) costOf(s []bool) float64 {
	total := 0.0
	for p := range s {
		if s[p] != e.orig[p] {
			total += e.flip[p]
		}
	}
	return total
}

// halt reports whether the search must unwind: the incumbent is proven
// optimal, or the budget ran out. The budget is polled on every node; a node
// costs a full conflict scan, next to which the clock read is negligible.
func (e *engine) halt() bool {
	if e.stopped || e.proven {
		return true
	}
	e.steps++

	return e.expired()
}

// expired polls ctx and the deadline and latches stopped.
func (e *engine) expired() bool {
	if e.ctx.Err() != nil || (e.useDeadline && !time.Now().Before(e.deadline)) {
		e.stopped = true
	}
	return e.stopped
}

// record commits the current state as the new incumbent.
func (e *engine) record(cost float64) {
	copy(e.best, e.present)
	e.bestCost = cost
	if e.provenBy(cost) {
		e.proven = true
	}
}

// provenBy reports whether cost meets the (already relaxed) root bound.
func (e *engine) provenBy(cost float64) bool {
	return e.haveLB && cost <= e.rootLB
}

// safeBound relaxes an LP value by lpSlack (relative, at least lpSlack
// absolute) so that solver round-off cannot certify a suboptimal incumbent.
func safeBound(lb float64) float64 {
	return lb - lpSlack*math.Max(1, math.Abs(lb))
}

// dfs explores the subtree of the current state, whose edit cost is cost.
func (e *engine) dfs(cost float64) {
	if e.halt() {
		return
	}
	conf, found, dead, pack := e.scan()
	if dead || e.stopped {
		return
	}
	if !found {
		if cost < e.bestCost-eps {
			e.record(cost)
		}
		return
	}
	if cost+pack >= e.bestCost-eps {
		return
	}

	var fixedHere []int
	for _, p := range conf {
		if e.fixed[p] {
			continue
		}
		// Child: change p and freeze it.
		e.present[p] = !e.present[p]
		e.fixed[p] = true
		e.dfs(cost + e.flip[p])
		e.present[p] = !e.present[p]
		if e.stopped || e.proven {
			e.fixed[p] = false
			break
		}
		// Later siblings keep p unchanged.
		fixedHere = append(fixedHere, p)
	}
	for _, p := range fixedHere {
		e.fixed[p] = false
	}
}
