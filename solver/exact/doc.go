// SPDX-License-Identifier: MIT

// Package exact solves bi-cluster editing on one subgraph to proven optimality
// by branch-and-bound over forbidden patterns, within an optional time limit.
//
// A conflict is a pair of rows i,j and a pair of columns k,l with edges
// (i,k),(i,l),(j,k) and non-edge (j,l). A graph is bi-transitive iff it has no
// conflict, so every solution changes at least one of the four pairs.
//
// Search:
//
//  1. Upper bound (UB): the deterministic constructive heuristic.
//  2. Optional root bound (Options.Tune): LP relaxation of
//     x_ik + x_il + x_jk − x_jl ≤ 2,  0 ≤ x ≤ 1,
//     minimising Σ −w·x + Σ max(w,0), solved with gonum's simplex.
//     The LP value is lowered by a relative margin (lpSlack) before use, so
//     simplex round-off cannot certify a suboptimal UB. UB ≤ relaxed LP
//     proves optimality immediately.
//  3. DFS branching on the most constrained conflict. Child t flips the t-th
//     pair and fixes the pairs before it unchanged, which partitions the
//     search space; fixed pairs never flip again.
//  4. Lower bound: cost so far + greedy packing of conflicts with disjoint
//     free pairs, each contributing its cheapest free flip. Prune when
//     LB ≥ UB − eps.
//  5. Time limit: the clock starts when Run is entered, so the incumbent
//     heuristic counts against it. Deadline and context are polled on every
//     node and once per row inside the conflict scan, bounding the overrun
//     by one row of one scan. A stop returns the incumbent with
//     Optimal=false.
//
// Complexity: exponential in the number of pairs in the worst case; per node
// O(nr²·nc²) for the conflict scan.
package exact
