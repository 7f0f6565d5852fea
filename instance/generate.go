// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/biclust/bipartite"
)

// Generator errors.
var (
	ErrBadDimensions  = errors.New("instance: rows and cols must be at least 1")
	ErrBadClusters    = errors.New("instance: clusters must be at least 1")
	ErrBadNoise       = errors.New("instance: noise must lie in [0,1]")
	ErrBadMaxWeight   = errors.New("instance: max weight must be at least 1")
	ErrNeedRandSource = errors.New("instance: random source is required")
)

// DefaultMaxWeight is the upper bound of sampled magnitudes.
const DefaultMaxWeight = 10.0

// GenOptions describes a planted-partition instance.
//
// Every row and column is assigned to one of Clusters hidden groups. An entry
// is positive when its row and column share a group and negative otherwise;
// each sign is then flipped with probability Noise. Magnitudes are uniform in
// [1, MaxWeight] (MaxWeight 0 means DefaultMaxWeight).
type GenOptions struct {
	Rows, Cols int
	Clusters   int
	Noise      float64
	MaxWeight  float64
}

// Planted is a generated instance together with its hidden partition.
type Planted struct {
	Weights   *bipartite.Weights
	RowGroups []int // group of each row
	ColGroups []int // group of each column
}

// Cost is the editing cost of the planted partition, an upper bound on the
// optimum.
func (p *Planted) Cost() float64 {
	total := 0.0
	for i, gi := range p.RowGroups {
		for k, gk := range p.ColGroups {
			if p.Weights.HasEdge(i, k) != (gi == gk) {
				total += p.Weights.FlipCost(i, k)
			}
		}
	}
	return total
}

// Generate samples an instance. Draw order is fixed (row groups, column
// groups, then entries row-major), so a seeded rng reproduces the instance.
//
// Complexity: O(Rows·Cols).
func Generate(opts GenOptions, rng *rand.Rand) (*Planted, error) {
	switch {
	case opts.Rows < 1 || opts.Cols < 1:
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, opts.Rows, opts.Cols)
	case opts.Clusters < 1:
		return nil, fmt.Errorf("%w: %d", ErrBadClusters, opts.Clusters)
	case opts.Noise < 0 || opts.Noise > 1:
		return nil, fmt.Errorf("%w: %g", ErrBadNoise, opts.Noise)
	case rng == nil:
		return nil, ErrNeedRandSource
	}
	maxW := opts.MaxWeight
	if maxW == 0 {
		maxW = DefaultMaxWeight
	}
	if maxW < 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadMaxWeight, maxW)
	}

	p := &Planted{
		RowGroups: make([]int, opts.Rows),
		ColGroups: make([]int, opts.Cols),
	}
	for i := range p.RowGroups {
		p.RowGroups[i] = rng.Intn(opts.Clusters)
	}
	for k := range p.ColGroups {
		p.ColGroups[k] = rng.Intn(opts.Clusters)
	}

	rows := make([][]float64, opts.Rows)
	for i := range rows {
		rows[i] = make([]float64, opts.Cols)
		for k := range rows[i] {
			v := 1 + rng.Float64()*(maxW-1)
			same := p.RowGroups[i] == p.ColGroups[k]
			if rng.Float64() < opts.Noise {
				same = !same
			}
			if !same {
				v = -v
			}
			rows[i][k] = v
		}
	}

	w, err := bipartite.NewWeights(rows)
	if err != nil {
		return nil, err
	}
	p.Weights = w

	return p, nil
}
