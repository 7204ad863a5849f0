// Package dijkstra_test contains unit tests for the shortest-path engine.
// These tests validate construction errors, query validation, the reference
// campus scenario, deterministic tie-breaking, unreachable destinations,
// agreement between strategies, and minimality against brute force.
package dijkstra_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/matrix"
	"github.com/stretchr/testify/require"
)

// campusRows is the six-location reference campus:
// A-B:10, B-D:12, C-D:10, D-E:2, E-F:8.
func campusRows() [][]int64 {
	return [][]int64{
		{0, 10, 0, 0, 0, 0},
		{10, 0, 0, 12, 0, 0},
		{0, 0, 0, 10, 0, 0},
		{0, 12, 10, 0, 2, 0},
		{0, 0, 0, 2, 0, 8},
		{0, 0, 0, 0, 8, 0},
	}
}

var strategies = []dijkstra.Strategy{dijkstra.LinearScan, dijkstra.BinaryHeap}

func newEngine(t *testing.T, rows [][]int64, s dijkstra.Strategy) *dijkstra.Engine {
	t.Helper()
	e, err := dijkstra.New(rows, dijkstra.WithStrategy(s))
	require.NoError(t, err)

	return e
}

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNew_InvalidGraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rows  [][]int64
		cause error
	}{
		{"empty", [][]int64{}, matrix.ErrEmpty},
		{"not square", [][]int64{{0, 1, 0}, {1, 0, 0}}, matrix.ErrNonSquare},
		{"negative", [][]int64{{0, -3}, {-3, 0}}, matrix.ErrNegativeWeight},
		{"asymmetric", [][]int64{{0, 1}, {0, 0}}, matrix.ErrAsymmetry},
		{"self loop", [][]int64{{2}}, matrix.ErrSelfLoop},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dijkstra.New(tc.rows)
			require.ErrorIs(t, err, dijkstra.ErrInvalidGraph)
			require.ErrorIs(t, err, tc.cause)
		})
	}
}

func TestNewFromWeights_Nil(t *testing.T) {
	t.Parallel()

	_, err := dijkstra.NewFromWeights(nil)
	require.ErrorIs(t, err, dijkstra.ErrInvalidGraph)
}

func TestNew_BadStrategy(t *testing.T) {
	t.Parallel()

	_, err := dijkstra.New(campusRows(), dijkstra.WithStrategy(dijkstra.Strategy(7)))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		got, err := dijkstra.ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := dijkstra.ParseStrategy("")
	require.NoError(t, err)
	require.Equal(t, dijkstra.LinearScan, got)

	_, err = dijkstra.ParseStrategy("fibonacci")
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Query validation
// ------------------------------------------------------------------------

func TestFindPath_InvalidNode(t *testing.T) {
	t.Parallel()

	e := newEngine(t, campusRows(), dijkstra.LinearScan)
	for _, q := range [][2]int{{99, 0}, {0, 99}, {-1, 2}, {2, -1}, {6, 0}} {
		_, err := e.FindPath(q[0], q[1])
		require.ErrorIsf(t, err, dijkstra.ErrInvalidNode, "query %v", q)
	}

	_, err := e.Tree(context.Background(), 6)
	require.ErrorIs(t, err, dijkstra.ErrInvalidNode)

	_, err = e.Weight(0, 6)
	require.ErrorIs(t, err, dijkstra.ErrInvalidNode)
	w, err := e.Weight(3, 4)
	require.NoError(t, err)
	require.Equal(t, int64(2), w)
}

func TestFindPath_SameNodeIsInvalidQuery(t *testing.T) {
	t.Parallel()

	e := newEngine(t, campusRows(), dijkstra.LinearScan)
	_, err := e.FindPath(3, 3)
	require.ErrorIs(t, err, dijkstra.ErrInvalidQuery)
	require.False(t, errors.Is(err, dijkstra.ErrInvalidNode))

	// range check wins over the equality check
	_, err = e.FindPath(40, 40)
	require.ErrorIs(t, err, dijkstra.ErrInvalidNode)
}

// ------------------------------------------------------------------------
// 3. Reference campus
// ------------------------------------------------------------------------

func TestFindPath_ReferenceCampus(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		e := newEngine(t, campusRows(), s)

		res, err := e.FindPath(0, 5)
		require.NoError(t, err)
		require.Equal(t, dijkstra.Found, res.Status)
		require.Equal(t, []int{0, 1, 3, 4, 5}, res.Path, s.String())
		require.Equal(t, int64(32), res.Cost, s.String())
		require.Equal(t, 4, res.Hops())
		require.NoError(t, res.Err())

		// reverse direction is the mirror image
		back, err := e.FindPath(5, 0)
		require.NoError(t, err)
		require.Equal(t, []int{5, 4, 3, 1, 0}, back.Path)
		require.Equal(t, int64(32), back.Cost)
	}
}

func TestTree_ReferenceCampus(t *testing.T) {
	t.Parallel()

	e := newEngine(t, campusRows(), dijkstra.LinearScan)
	tree, err := e.Tree(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 10, 32, 22, 24, 32}, tree.Dist)
	require.Equal(t, []int{dijkstra.NoParent, 0, 3, 1, 3, 4}, tree.Parent)

	p, ok := tree.PathTo(0)
	require.True(t, ok)
	require.Equal(t, []int{0}, p)

	_, ok = tree.PathTo(17)
	require.False(t, ok)
}

// ------------------------------------------------------------------------
// 4. Determinism & unreachable
// ------------------------------------------------------------------------

func TestFindPath_TieBreakLowestIndex(t *testing.T) {
	t.Parallel()

	// Diamond: 0-1(1), 0-2(1), 1-3(1), 2-3(1). Both routes cost 2; the one
	// through the lower index is settled first and must win.
	rows := [][]int64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	}
	for _, s := range strategies {
		res, err := newEngine(t, rows, s).FindPath(0, 3)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 3}, res.Path, s.String())
		require.Equal(t, int64(2), res.Cost)

		res, err = newEngine(t, rows, s).FindPath(3, 0)
		require.NoError(t, err)
		require.Equal(t, []int{3, 1, 0}, res.Path, s.String())
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	t.Parallel()

	// Two components: {0,1} and {2,3}.
	rows := [][]int64{
		{0, 4, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 7},
		{0, 0, 7, 0},
	}
	for _, s := range strategies {
		res, err := newEngine(t, rows, s).FindPath(0, 3)
		require.NoError(t, err, "unreachable is a result, not an error")
		require.Equal(t, dijkstra.Unreachable, res.Status)
		require.False(t, res.Reachable())
		require.Nil(t, res.Path)
		require.Equal(t, dijkstra.Infinity, res.Cost)
		require.Zero(t, res.Hops())
		require.ErrorIs(t, res.Err(), dijkstra.ErrUnreachable)
	}
}

func TestFindPath_Idempotent(t *testing.T) {
	t.Parallel()

	e := newEngine(t, campusRows(), dijkstra.LinearScan)
	first, err := e.FindPath(2, 5)
	require.NoError(t, err)
	second, err := e.FindPath(2, 5)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// mutating a returned path must not leak into later queries
	first.Path[0] = 42
	third, err := e.FindPath(2, 5)
	require.NoError(t, err)
	require.Equal(t, second, third)
}

func TestFindPathContext_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range strategies {
		_, err := newEngine(t, campusRows(), s).FindPathContext(ctx, 0, 5)
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestFindPath_Concurrent(t *testing.T) {
	t.Parallel()

	e := newEngine(t, campusRows(), dijkstra.BinaryHeap)
	var wg sync.WaitGroup
	const workers = 32
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			res, err := e.FindPath(0, 5)
			require.NoError(t, err)
			require.Equal(t, int64(32), res.Cost)
		}()
	}
	wg.Wait()
}

// ------------------------------------------------------------------------
// 5. Properties on random graphs
// ------------------------------------------------------------------------

// randomRows builds a symmetric n×n matrix with the given edge density and
// weights in [1, maxW].
func randomRows(rng *rand.Rand, n int, density float64, maxW int64) [][]int64 {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				w := rng.Int63n(maxW) + 1
				rows[i][j], rows[j][i] = w, w
			}
		}
	}

	return rows
}

// bruteForce returns the minimum cost over all simple paths src→dst,
// or -1 if none exists.
func bruteForce(rows [][]int64, src, dst int) int64 {
	best := int64(-1)
	seen := make([]bool, len(rows))
	var walk func(u int, cost int64)
	walk = func(u int, cost int64) {
		if u == dst {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		seen[u] = true
		for v, w := range rows[u] {
			if w > 0 && !seen[v] {
				walk(v, cost+w)
			}
		}
		seen[u] = false
	}
	walk(src, 0)

	return best
}

func TestFindPath_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(20241018))
	for round := 0; round < 60; round++ {
		n := 2 + rng.Intn(6)
		rows := randomRows(rng, n, 0.45, 20)
		lin := newEngine(t, rows, dijkstra.LinearScan)
		hp := newEngine(t, rows, dijkstra.BinaryHeap)

		for src := 0; src < n; src++ {
			tree, err := lin.Tree(context.Background(), src)
			require.NoError(t, err)
			require.Zero(t, tree.Dist[src])
			require.Equal(t, dijkstra.NoParent, tree.Parent[src])

			for dst := 0; dst < n; dst++ {
				if dst == src {
					continue
				}
				want := bruteForce(rows, src, dst)
				res, err := lin.FindPath(src, dst)
				require.NoError(t, err)

				other, err := hp.FindPath(src, dst)
				require.NoError(t, err)
				require.Equal(t, res, other, "strategies disagree on %v %d→%d", rows, src, dst)

				if want < 0 {
					require.Equal(t, dijkstra.Unreachable, res.Status)
					continue
				}
				require.Equal(t, dijkstra.Found, res.Status)
				require.Equal(t, want, res.Cost, "rows=%v %d→%d", rows, src, dst)
				require.Equal(t, src, res.Path[0])
				require.Equal(t, dst, res.Path[len(res.Path)-1])

				var sum int64
				for i := 0; i+1 < len(res.Path); i++ {
					w := rows[res.Path[i]][res.Path[i+1]]
					require.Positive(t, w, "path uses a non-edge")
					sum += w
				}
				require.Equal(t, res.Cost, sum)
			}
		}
	}
}

func TestTree_MatchesFloydWarshall(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		n := 5 + rng.Intn(20)
		w := matrix.MustWeights(randomRows(rng, n, 0.2, 50))
		e, err := dijkstra.NewFromWeights(w)
		require.NoError(t, err)
		apsp, err := matrix.FloydWarshall(w)
		require.NoError(t, err)

		for src := 0; src < n; src++ {
			tree, err := e.Tree(context.Background(), src)
			require.NoError(t, err)
			for dst, d := range tree.Dist {
				if d == dijkstra.Infinity {
					require.Equal(t, matrix.NoPath, apsp[src][dst])
					continue
				}
				require.Equal(t, apsp[src][dst], d, "n=%d %d→%d", n, src, dst)
			}
		}
	}
}
