// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Immutable, validated weight matrix backing every shortest-path query.
//   - Row-major N×N int64 storage in one flat slice; zero means "no edge".

package matrix

import (
	"fmt"
	"strings"
)

// weightsErrorf wraps an underlying error with Weights method context.
func weightsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Weights.%s(%d,%d): %w", method, row, col, err)
}

// Weights is a symmetric, non-negative, zero-diagonal weight matrix.
// It is never mutated after NewWeights returns, so it is safe for
// concurrent readers without locking.
type Weights struct {
	n     int     // order (number of vertices)
	edges int     // number of undirected edges (non-zero upper-triangle entries)
	data  []int64 // flat backing storage, length == n*n
}

// NewWeights validates rows and copies them into a new Weights.
// Stage 1 (Validate): structural checks via Validate.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): copy entries and count edges.
// Complexity: O(n²) time and memory.
func NewWeights(rows [][]int64) (*Weights, error) {
	if err := Validate(rows); err != nil {
		return nil, err
	}

	n := len(rows)
	w := &Weights{n: n, data: make([]int64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		copy(w.data[i*n:(i+1)*n], rows[i])
		for j = i + 1; j < n; j++ {
			if rows[i][j] > 0 {
				w.edges++
			}
		}
	}

	return w, nil
}

// MustWeights is like NewWeights but panics on error.
// Intended for package-level literals and tests only.
func MustWeights(rows [][]int64) *Weights {
	w, err := NewWeights(rows)
	if err != nil {
		panic(err)
	}

	return w
}

// Order returns the number of vertices.
// Complexity: O(1).
func (w *Weights) Order() int {
	return w.n
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (w *Weights) EdgeCount() int {
	return w.edges
}

// Contains reports whether i is a valid vertex index.
func (w *Weights) Contains(i int) bool {
	return i >= 0 && i < w.n
}

// At returns weight[row][col] or ErrOutOfRange.
// Complexity: O(1).
func (w *Weights) At(row, col int) (int64, error) {
	if w == nil {
		return 0, weightsErrorf("At", row, col, ErrNilMatrix)
	}
	if !w.Contains(row) || !w.Contains(col) {
		return 0, weightsErrorf("At", row, col, ErrOutOfRange)
	}

	return w.data[row*w.n+col], nil
}

// Weight returns weight[row][col] without bounds checks beyond the slice's own.
// Hot path for the shortest-path loops; callers guarantee valid indices.
func (w *Weights) Weight(row, col int) int64 {
	return w.data[row*w.n+col]
}

// HasEdge reports whether row and col are directly connected.
func (w *Weights) HasEdge(row, col int) bool {
	return w.Weight(row, col) > 0
}

// Neighbors returns the indices adjacent to i in ascending order.
// Complexity: O(n).
func (w *Weights) Neighbors(i int) []int {
	out := make([]int, 0)
	row := w.data[i*w.n : (i+1)*w.n]
	for j, wt := range row {
		if wt > 0 {
			out = append(out, j)
		}
	}

	return out
}

// Rows returns a deep copy of the matrix as a slice of rows.
// Complexity: O(n²).
func (w *Weights) Rows() [][]int64 {
	out := make([][]int64, w.n)
	for i := range out {
		out[i] = make([]int64, w.n)
		copy(out[i], w.data[i*w.n:(i+1)*w.n])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (w *Weights) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < w.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < w.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", w.data[i*w.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
