// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Variant names.
const (
	NameExact     = "exact"
	NameHeuristic = "heuristic"
)

// Defaults applied by ParseVariant.
const (
	DefaultTimeLimit = 60 * time.Second
	DefaultBias      = 1.0
)

// Sentinel errors for strategy selection.
var (
	// ErrUnknownVariant indicates an unrecognised variant name.
	ErrUnknownVariant = errors.New("solver: unknown algorithm")

	// ErrInvalidVariant indicates a variant with out-of-range parameters.
	ErrInvalidVariant = errors.New("solver: invalid algorithm parameters")
)

// Variant is one of Exact or Heuristic.
type Variant interface {
	// Name returns NameExact or NameHeuristic.
	Name() string
	isVariant()
}

// Exact selects the branch-and-bound solver.
// TimeLimit ≤ 0 means no limit; Tune enables the LP root bound.
type Exact struct {
	TimeLimit time.Duration
	Tune      bool
}

// Name implements Variant.
func (Exact) Name() string { return NameExact }
func (Exact) isVariant()   {}

// Heuristic selects the randomised constructive heuristic.
// Bias ∈ [0,1]; 1.0 is deterministic. A nil Seed asks for a process-seeded
// random source.
type Heuristic struct {
	Bias float64
	Seed *int64
}

// Name implements Variant.
func (Heuristic) Name() string { return NameHeuristic }
func (Heuristic) isVariant()   {}

// Seed returns a pointer to s, for Heuristic literals.
func Seed(s int64) *int64 { return &s }

// ParseVariant returns the variant called name with default parameters.
// "ilp" and "ch" are accepted as aliases; matching ignores case and spaces.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameExact, "ilp":
		return Exact{TimeLimit: DefaultTimeLimit}, nil
	case NameHeuristic, "ch":
		return Heuristic{Bias: DefaultBias}, nil
	default:
		return nil, fmt.Errorf("%w %q: options are %q and %q", ErrUnknownVariant, name, NameExact, NameHeuristic)
	}
}

// validateVariant checks the parameters of v.
func validateVariant(v Variant) error {
	switch x := v.(type) {
	case Exact:
		return nil
	case Heuristic:
		if x.Bias < 0 || x.Bias > 1 {
			return fmt.Errorf("%w: heuristic bias %v not in [0,1]", ErrInvalidVariant, x.Bias)
		}
		return nil
	case nil:
		return fmt.Errorf("%w: no variant selected", ErrInvalidVariant)
	default:
		return fmt.Errorf("%w %T: options are %q and %q", ErrUnknownVariant, v, NameExact, NameHeuristic)
	}
}
