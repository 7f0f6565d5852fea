// SPDX-License-Identifier: MIT

package exact

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// lpBound solves the LP relaxation of the forbidden-pattern model in standard
// form (one slack per constraint, one per upper bound) and returns a lower
// bound on the optimal edit cost. ok is false when the model exceeds maxRows
// or the simplex fails.
//
// Variables x_p ∈ [0,1] say whether pair p is an edge in the solution; the
// cost Σ_{w>0} w·(1−x) + Σ_{w≤0} (−w)·x equals Σ −w·x + Σ max(w,0).
func lpBound(e *engine, maxRows int) (float64, bool) {
	P := e.nr * e.nc
	K := e.nr * (e.nr - 1) * e.nc * (e.nc - 1)
	rows := K + P
	if rows == 0 || rows > maxRows {
		return 0, false
	}
	cols := P + K + P

	A := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	constant := 0.0
	for p := 0; p < P; p++ {
		c[p] = -e.wt[p]
		constant += math.Max(0, e.wt[p])
	}

	q := 0
	for i := 0; i < e.nr; i++ {
		for j := 0; j < e.nr; j++ {
			if i == j {
				continue
			}
			for k := 0; k < e.nc; k++ {
				for l := 0; l < e.nc; l++ {
					if k == l {
						continue
					}
					A.Set(q, e.pair(i, k), 1)
					A.Set(q, e.pair(i, l), 1)
					A.Set(q, e.pair(j, k), 1)
					A.Set(q, e.pair(j, l), -1)
					A.Set(q, P+q, 1)
					b[q] = 2
					q++
				}
			}
		}
	}
	for p := 0; p < P; p++ {
		A.Set(K+p, p, 1)
		A.Set(K+p, P+K+p, 1)
		b[K+p] = 1
	}

	opt, _, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		return 0, false
	}

	return opt + constant, true
}

// scan enumerates the conflicts of the current state once and reports:
//   - best: the conflict with the fewest free pairs (first on ties),
//   - found: whether any conflict exists,
//   - dead: whether some conflict has no free pair left (infeasible node),
//   - pack: the greedy packing bound over conflicts with disjoint free pairs.
//
// If the budget expires mid-scan, e.stopped is set and the partial result
// must be discarded by the caller.
func (e *engine) scan() (best [4]int, found, dead bool, pack float64) {
	for p := range e.used {
		e.used[p] = false
	}
	bestFree := 5
	for i := 0; i < e.nr; i++ {
		// One row costs O(nr·nc²); large components would overrun the
		// deadline by whole scans without this poll.
		if e.expired() {
			return best, found, false, pack
		}
		for j := 0; j < e.nr; j++ {
			if i == j {
				continue
			}
			for k := 0; k < e.nc; k++ {
				if !e.present[e.pair(i, k)] || !e.present[e.pair(j, k)] {
					continue
				}
				for l := 0; l < e.nc; l++ {
					if l == k || !e.present[e.pair(i, l)] || e.present[e.pair(j, l)] {
						continue
					}
					conf := [4]int{e.pair(i, k), e.pair(i, l), e.pair(j, k), e.pair(j, l)}
					found = true

					free, disjoint, cheapest := 0, true, math.Inf(1)
					for _, p := range conf {
						if e.fixed[p] {
							continue
						}
						free++
						if e.used[p] {
							disjoint = false
						}
						cheapest = math.Min(cheapest, e.flip[p])
					}
					if free == 0 {
						return conf, true, true, 0
					}
					if free < bestFree {
						best, bestFree = conf, free
					}
					if disjoint {
						for _, p := range conf {
							if !e.fixed[p] {
								e.used[p] = true
							}
						}
						pack += cheapest
					}
				}
			}
		}
	}

	return best, found, false, pack
}
