// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Weights is the immutable n×m weight matrix of an instance.
//
// Positive entries are present edges, non-positive entries are absent edges.
// The backing gonum matrix is private; Weights never hands it out mutable.
type Weights struct {
	m      *mat.Dense
	layout Layout
}

// NewWeights validates rows and copies them into a Weights value.
//
// Stage 1 (Validate): non-empty, rectangular, all entries finite.
// Stage 2 (Copy): pack rows into a row-major backing slice.
//
// Errors: ErrEmptyMatrix, ErrRaggedMatrix, ErrNonFiniteWeight (wrapped with position).
// Complexity: O(n·m) time and memory.
func NewWeights(rows [][]float64) (*Weights, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	n, m := len(rows), len(rows[0])
	data := make([]float64, 0, n*m)
	for i, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("NewWeights: row %d has %d entries, want %d: %w", i, len(row), m, ErrRaggedMatrix)
		}
		for k, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewWeights: w[%d][%d]=%v: %w", i, k, v, ErrNonFiniteWeight)
			}
		}
		data = append(data, row...)
	}

	return &Weights{m: mat.NewDense(n, m, data), layout: Layout{Rows: n, Cols: m}}, nil
}

// FromMatrix copies any gonum matrix into a Weights value.
// Same validation as NewWeights.
func FromMatrix(src mat.Matrix) (*Weights, error) {
	if src == nil {
		return nil, ErrEmptyMatrix
	}
	n, m := src.Dims()
	if n == 0 || m == 0 {
		return nil, ErrEmptyMatrix
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, m)
		for k := 0; k < m; k++ {
			rows[i][k] = src.At(i, k)
		}
	}

	return NewWeights(rows)
}

// MustWeights is NewWeights for fixtures and examples; it panics on error.
func MustWeights(rows [][]float64) *Weights {
	w, err := NewWeights(rows)
	if err != nil {
		panic(err)
	}
	return w
}

// At returns w[i][k]. It panics when out of range, like gonum.
func (w *Weights) At(i, k int) float64 { return w.m.At(i, k) }

// Dims returns (rows, cols).
func (w *Weights) Dims() (int, int) { return w.layout.Rows, w.layout.Cols }

// Rows returns n.
func (w *Weights) Rows() int { return w.layout.Rows }

// Cols returns m.
func (w *Weights) Cols() int { return w.layout.Cols }

// Layout returns the node layout of the full graph over w.
func (w *Weights) Layout() Layout { return w.layout }

// HasEdge reports whether (i,k) is an edge of the unedited instance.
func (w *Weights) HasEdge(i, k int) bool { return w.m.At(i, k) > 0 }

// FlipCost is the cost of changing the state of pair (i,k): deleting a
// present edge costs w, inserting an absent one costs −w.
func (w *Weights) FlipCost(i, k int) float64 { return math.Abs(w.m.At(i, k)) }

// Dense returns an independent copy of the backing matrix.
func (w *Weights) Dense() *mat.Dense { return mat.DenseCopyOf(w.m) }

// RawRow returns a copy of row i.
func (w *Weights) RawRow(i int) []float64 {
	out := make([]float64, w.layout.Cols)
	mat.Row(out, i, w.m)
	return out
}
