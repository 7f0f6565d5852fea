// SPDX-License-Identifier: MIT

// Random sources for the heuristic.
//
// Goals:
//   - Determinism: a seed reproduces the run on every platform.
//   - Explicit handles: the solver draws only from the *rand.Rand it is given;
//     the global math/rand source is never touched.
//   - Independent streams: concurrent subgraphs each get their own generator
//     derived from one base seed (DeriveSeed).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across goroutines.

package heuristic

import (
	"math/rand"
	"time"
)

// NewRand returns a deterministic *rand.Rand for seed.
//
// math/rand.Rand is NOT goroutine-safe; give each concurrent run its own
// stream (see DeriveSeed).
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ProcessSeed returns a seed drawn from the wall clock, for runs that asked
// for no reproducibility.
func ProcessSeed() int64 {
	return time.Now().UnixNano()
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed.
//
// Rationale:
//   - solver.Selector solves many subgraphs from one user seed; each subgraph
//     needs its own stream, keyed by a stable id (its smallest node id), so
//     results do not depend on solve order or worker count.
//   - Adjacent stream ids (0, 1, 2, ...) must not yield correlated
//     generators, so the pair is passed through a SplitMix64 finaliser.
//
// Notes:
//   - The constants are the canonical SplitMix64 increment and multipliers;
//     a one-bit change in either input flips about half the output bits.
//   - The mapping is a pure function: equal inputs give equal seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
