// SPDX-License-Identifier: MIT

// Package solver selects the strategy used on the hard subgraphs of a
// bi-cluster editing instance and dispatches a uniform Run call to it.
//
// A Variant is a closed tagged union:
//
//	Exact{TimeLimit, Tune}   → solver/exact   (Optimal only when proven)
//	Heuristic{Bias, Seed}    → solver/heuristic (never Optimal)
//
// Variants are built directly or parsed from their names with ParseVariant
// ("exact"/"ilp", "heuristic"/"ch", case-insensitive). Unknown names are a
// configuration error (ErrUnknownVariant) reported before any solving starts.
//
// Example:
//
//	sel, err := solver.NewSelector(solver.Heuristic{Bias: 1, Seed: solver.Seed(42)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := sel.Run(ctx, w, sub)
package solver
