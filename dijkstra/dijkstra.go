// Package dijkstra implements the single-source shortest-path engine.
//
// Dijkstra settles vertices in order of increasing distance from the source,
// relaxing edges of each newly settled vertex. Ties between equal distances
// are broken by the lower vertex index, so results are fully deterministic.
//
// Complexity:
//
//   - LinearScan: O(N²) time, O(N) space per query.
//   - BinaryHeap: O((N + E) log N) time, O(N + E) space per query.
//
// Notes on implementation choices:
//
//   - The graph is validated once at construction; queries never re-check it.
//   - Adjacency lists are precomputed from the matrix so relaxation touches
//     only real edges; the matrix keeps O(1) weight lookup.
//   - Per-query state (dist, parent, visited) lives in a runner that is
//     discarded on return, so concurrent queries need no locking.
//   - Cancellation is checked once per settled vertex.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/campusnav/matrix"
)

// Engine answers shortest-path queries over an immutable weight matrix.
// An Engine is safe for concurrent use by multiple goroutines.
type Engine struct {
	w    *matrix.Weights
	adj  [][]int // adj[u] = neighbours of u, ascending
	opts Options
}

// New validates rows and builds an Engine over them.
// Returns an error matching ErrInvalidGraph (and the precise matrix cause)
// for a malformed matrix, or ErrOptionViolation for a bad option.
// Complexity: O(N²).
func New(rows [][]int64, opts ...Option) (*Engine, error) {
	w, err := matrix.NewWeights(rows)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	return NewFromWeights(w, opts...)
}

// NewFromWeights builds an Engine over an already validated matrix.
// Complexity: O(N²) to precompute adjacency.
func NewFromWeights(w *matrix.Weights, opts ...Option) (*Engine, error) {
	if w == nil {
		return nil, fmt.Errorf("dijkstra: %w: %w", ErrInvalidGraph, matrix.ErrNilMatrix)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	n := w.Order()
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		adj[u] = w.Neighbors(u)
	}

	return &Engine{w: w, adj: adj, opts: cfg}, nil
}

// Order returns the number of vertices.
func (e *Engine) Order() int {
	return e.w.Order()
}

// Weights returns the underlying immutable matrix.
func (e *Engine) Weights() *matrix.Weights {
	return e.w
}

// Weight returns the road weight between i and j (0 = no road).
// Out-of-range indices yield ErrInvalidNode.
func (e *Engine) Weight(i, j int) (int64, error) {
	if err := e.checkNode("node", i); err != nil {
		return 0, err
	}
	if err := e.checkNode("node", j); err != nil {
		return 0, err
	}
	return e.w.Weight(i, j), nil
}

// Strategy returns the configured selection strategy.
func (e *Engine) Strategy() Strategy {
	return e.opts.Strategy
}

// FindPath returns the shortest path from source to destination.
// It is FindPathContext with context.Background().
func (e *Engine) FindPath(source, destination int) (Result, error) {
	return e.FindPathContext(context.Background(), source, destination)
}

// FindPathContext returns the shortest path from source to destination.
//
// Preconditions and validation (in order):
//  1. source and destination must be in [0, N) (ErrInvalidNode).
//  2. source != destination (ErrInvalidQuery).
//
// An unreachable destination is not an error: the Result carries
// Status == Unreachable, a nil Path and Cost == Infinity.
// If ctx is cancelled mid-run, ctx.Err() is returned.
func (e *Engine) FindPathContext(ctx context.Context, source, destination int) (Result, error) {
	if err := e.checkNode("source", source); err != nil {
		return Result{}, err
	}
	if err := e.checkNode("destination", destination); err != nil {
		return Result{}, err
	}
	if source == destination {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidQuery, source)
	}

	t, err := e.run(ctx, source)
	if err != nil {
		return Result{}, err
	}

	res := Result{Source: source, Destination: destination, Cost: Infinity, Status: Unreachable}
	if path, ok := t.PathTo(destination); ok {
		res.Path = path
		res.Cost = t.Dist[destination]
		res.Status = Found
	}

	return res, nil
}

// Tree computes the full shortest-path tree rooted at source.
// Returns ErrInvalidNode for an out-of-range source, or ctx.Err().
func (e *Engine) Tree(ctx context.Context, source int) (*Tree, error) {
	if err := e.checkNode("source", source); err != nil {
		return nil, err
	}

	return e.run(ctx, source)
}

func (e *Engine) checkNode(role string, v int) error {
	if !e.w.Contains(v) {
		return fmt.Errorf("%w: %s=%d, valid range [0,%d)", ErrInvalidNode, role, v, e.w.Order())
	}

	return nil
}

// run executes one Dijkstra pass from source with the configured strategy.
func (e *Engine) run(ctx context.Context, source int) (*Tree, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	r := newRunner(e, source)
	var err error
	switch e.opts.Strategy {
	case BinaryHeap:
		err = r.processHeap(ctx)
	default:
		err = r.processLinear(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &Tree{Source: source, Dist: r.dist, Parent: r.parent}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	source  int
	w       *matrix.Weights // read-only
	adj     [][]int         // read-only
	dist    []int64         // current best distance from source
	parent  []int           // predecessor on the shortest path
	visited []bool          // settled flags
	pq      nodePQ          // used by BinaryHeap only
}

// newRunner initialises dist=+∞, parent=none, visited=false, dist[source]=0.
func newRunner(e *Engine, source int) *runner {
	n := e.w.Order()
	r := &runner{
		source:  source,
		w:       e.w,
		adj:     e.adj,
		dist:    make([]int64, n),
		parent:  make([]int, n),
		visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Infinity
		r.parent[v] = NoParent
	}
	r.dist[source] = 0

	return r
}

// processLinear settles at most N vertices, each time picking the unvisited
// vertex with the smallest finite distance by a full scan.
func (r *runner) processLinear(ctx context.Context) error {
	n := len(r.dist)
	for settled := 0; settled < n; settled++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u := r.nextLinear()
		if u == NoParent {
			break // everything left is unreachable
		}
		r.visited[u] = true
		r.relax(u, false)
	}

	return nil
}

// nextLinear returns the unvisited vertex with minimum finite distance,
// lowest index first on ties, or NoParent if none is finite.
func (r *runner) nextLinear() int {
	best, idx := Infinity, NoParent
	for v, d := range r.dist {
		// strict "<" keeps the first (lowest-index) vertex among ties
		if !r.visited[v] && d < best {
			best, idx = d, v
		}
	}

	return idx
}

// processHeap is the lazy decrease-key variant: improved distances are pushed
// as new heap entries and stale entries are skipped when popped.
func (r *runner) processHeap(ctx context.Context) error {
	r.pq = make(nodePQ, 0, len(r.dist))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})

	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] || item.dist > r.dist[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.relax(u, true)
	}

	return nil
}

// relax tries to improve every unvisited neighbour of the settled vertex u.
// Only strictly shorter routes replace the current parent, so the first
// route found at a given cost wins.
func (r *runner) relax(u int, push bool) {
	du := r.dist[u]
	var v int
	var nd int64
	for _, v = range r.adj[u] {
		if r.visited[v] {
			continue
		}
		nd = du + r.w.Weight(u, v)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.parent[v] = u
		if push {
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}
}
