// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest distances (Floyd–Warshall) over Weights.
//   - Independent of the single-source engine; serves as its reference oracle
//     and as the fallback for whole-map distance tables.
//
// Contract:
//   - Result[i][j] is the shortest distance, NoPath when j is unreachable
//     from i, and 0 on the diagonal.

package matrix

import "math"

// NoPath marks an unreachable pair in the result of FloydWarshall.
const NoPath int64 = math.MaxInt64

// FloydWarshall computes all-pairs shortest distances over w.
//
// Loop order is fixed (k → i → j) and only strict improvements are stored.
// Sums cannot overflow: every weight is ≤ MaxWeight and a simple path has
// fewer than n edges.
//
// Complexity: Time O(n³), Space O(n²) for the result.
func FloydWarshall(w *Weights) ([][]int64, error) {
	if w == nil {
		return nil, ErrNilMatrix
	}
	n := w.n

	// Stage 1: initialise distances from the adjacency (0 -> NoPath off-diagonal).
	dist := make([]int64, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := w.data[i*n+j]
			if i != j && v == 0 {
				v = NoPath
			}
			dist[i*n+j] = v
		}
	}

	// Stage 2: relax through every intermediate vertex.
	var (
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = dist[i*n+k]
			if ik == NoPath {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if kj == NoPath {
					continue
				}
				cand = ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
				}
			}
		}
	}

	// Stage 3: split into rows.
	out := make([][]int64, n)
	for i = 0; i < n; i++ {
		out[i] = dist[i*n : (i+1)*n : (i+1)*n]
	}

	return out, nil
}
