// SPDX-License-Identifier: MIT

package heuristic

import (
	"errors"
	"math/rand"
)

// ErrBadBias is returned when Bias lies outside [0,1].
var ErrBadBias = errors.New("heuristic: bias must lie in [0,1]")

// DefaultMaxPasses bounds the local search when Options.MaxPasses is zero.
const DefaultMaxPasses = 64

// Options configures a heuristic run.
//
// Bias        – in [0,1]; 1.0 is fully greedy and deterministic, lower values
//
//	widen the restricted candidate list and let Rand choose.
//
// Rand        – random source; nil means a process-seeded stream.
// MaxPasses   – local search pass limit; 0 means DefaultMaxPasses, negative disables it.
type Options struct {
	Bias      float64
	Rand      *rand.Rand
	MaxPasses int
}

// DefaultOptions returns greedy, deterministic options.
func DefaultOptions() Options {
	return Options{Bias: 1.0, MaxPasses: DefaultMaxPasses}
}

func (o Options) validate() error {
	if o.Bias < 0 || o.Bias > 1 {
		return ErrBadBias
	}
	return nil
}
