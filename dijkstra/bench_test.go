package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/campusnav/dijkstra"
)

// benchmarkStrategy measures one corner-to-corner query on a random graph of size n.
func benchmarkStrategy(b *testing.B, s dijkstra.Strategy, n int, density float64) {
	rng := rand.New(rand.NewSource(1))
	rows := randomRows(rng, n, density, 100)
	e, err := dijkstra.New(rows, dijkstra.WithStrategy(s))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.FindPath(0, n-1)
	}
}

func BenchmarkFindPath_Linear_Dense64(b *testing.B) {
	benchmarkStrategy(b, dijkstra.LinearScan, 64, 0.5)
}

func BenchmarkFindPath_Heap_Dense64(b *testing.B) {
	benchmarkStrategy(b, dijkstra.BinaryHeap, 64, 0.5)
}

func BenchmarkFindPath_Linear_Sparse1024(b *testing.B) {
	benchmarkStrategy(b, dijkstra.LinearScan, 1024, 0.004)
}

func BenchmarkFindPath_Heap_Sparse1024(b *testing.B) {
	benchmarkStrategy(b, dijkstra.BinaryHeap, 1024, 0.004)
}
