package bfs_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/matrix"
)

// chain builds a path graph 0-1-...-(n-1) with unit weights.
func chain(n int) *matrix.Weights {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
	}
	for i := 0; i+1 < n; i++ {
		rows[i][i+1], rows[i+1][i] = 1, 1
	}

	return matrix.MustWeights(rows)
}

// BenchmarkComponents_Chain measures component detection on a 512-vertex chain.
func BenchmarkComponents_Chain(b *testing.B) {
	w := chain(512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(w)
	}
}
