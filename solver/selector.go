// SPDX-License-Identifier: MIT

package solver

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/biclust/bipartite"
	"github.com/katalvlaran/biclust/solver/exact"
	"github.com/katalvlaran/biclust/solver/heuristic"
)

// Option configures a Selector.
type Option func(*Selector)

// WithLogger passes a logger to the delegated solvers.
func WithLogger(l *zap.Logger) Option {
	return func(s *Selector) {
		if l != nil {
			s.log = l
		}
	}
}

// Selector holds a validated Variant and dispatches Run to its solver.
// A Selector is safe for concurrent use: every Run builds its own state and
// random stream.
type Selector struct {
	variant  Variant
	log      *zap.Logger
	baseSeed int64
}

// NewSelector validates v and returns a Selector for it.
//
// Errors: ErrInvalidVariant (nil variant, bias out of range), ErrUnknownVariant.
func NewSelector(v Variant, opts ...Option) (*Selector, error) {
	if err := validateVariant(v); err != nil {
		return nil, err
	}
	s := &Selector{variant: v, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if h, ok := v.(Heuristic); ok {
		if h.Seed != nil {
			s.baseSeed = *h.Seed
		} else {
			s.baseSeed = heuristic.ProcessSeed()
		}
	}

	return s, nil
}

// Variant returns the selected variant.
func (s *Selector) Variant() Variant { return s.variant }

// Name returns the selected variant's name.
func (s *Selector) Name() string { return s.variant.Name() }

// Run renders sub bi-transitive with the selected solver.
//
// For Heuristic the random stream is derived from the base seed and the
// smallest node id of sub, so a seeded run does not depend on the order in
// which subgraphs are solved.
func (s *Selector) Run(ctx context.Context, w *bipartite.Weights, sub *bipartite.Graph) (bipartite.SubSolution, error) {
	switch v := s.variant.(type) {
	case Exact:
		return exact.Run(ctx, w, sub, exact.Options{
			TimeLimit: v.TimeLimit,
			Tune:      v.Tune,
			Logger:    s.log,
		})
	case Heuristic:
		var stream uint64
		if nodes := sub.Nodes(); len(nodes) > 0 {
			stream = uint64(sub.Layout().ID(nodes[0]))
		}
		return heuristic.Run(ctx, w, sub, heuristic.Options{
			Bias: v.Bias,
			Rand: heuristic.NewRand(heuristic.DeriveSeed(s.baseSeed, stream)),
		})
	default:
		// NewSelector rejects anything else.
		return bipartite.SubSolution{}, validateVariant(s.variant)
	}
}
