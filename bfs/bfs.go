// Package bfs provides breadth-first search over a matrix.Weights,
// returning hop distances, parent links, and visit order, plus the
// connected-component split of a map.
//
// Edge weights are ignored: any non-zero entry is an edge of length one hop.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/matrix"
)

// walker encapsulates mutable BFS state.
type walker struct {
	w     *matrix.Weights
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on w starting from start.
// Neighbours are expanded in ascending index order.
// Returns ErrNilGraph or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any error returned by the OnVisit hook.
// Complexity: O(N²) on the dense matrix.
func BFS(w *matrix.Weights, start int, opts ...Option) (*Result, error) {
	if w == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !w.Contains(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}

	n := w.Order()
	wk := &walker{
		w:     w,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		wk.res.Depth[v] = Unvisited
		wk.res.Parent[v] = Unvisited
	}

	wk.enqueue(start, 0, Unvisited)

	return wk.res, wk.loop()
}

// enqueue marks v seen at depth d with the given parent.
func (wk *walker) enqueue(v, d, parent int) {
	wk.res.Depth[v] = d
	wk.res.Parent[v] = parent
	wk.queue = append(wk.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (wk *walker) loop() error {
	for len(wk.queue) > 0 {
		select {
		case <-wk.opts.Ctx.Done():
			return wk.opts.Ctx.Err()
		default:
		}

		u := wk.queue[0]
		wk.queue = wk.queue[1:]
		d := wk.res.Depth[u]

		wk.res.Order = append(wk.res.Order, u)
		if err := wk.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}

		if wk.opts.MaxDepth > 0 && d+1 > wk.opts.MaxDepth {
			continue
		}
		for _, v := range wk.w.Neighbors(u) {
			if wk.res.Depth[v] == Unvisited {
				wk.enqueue(v, d+1, u)
			}
		}
	}

	return nil
}

// Components partitions the vertices of w into connected components.
// Each component is sorted ascending and components are ordered by their
// smallest vertex, so the output is deterministic.
// Complexity: O(N²).
func Components(w *matrix.Weights) ([][]int, error) {
	if w == nil {
		return nil, ErrNilGraph
	}

	n := w.Order()
	seen := make([]bool, n)
	var out [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		res, err := BFS(w, s)
		if err != nil {
			return nil, err
		}
		comp := make([]int, 0, len(res.Order))
		for v := 0; v < n; v++ {
			if res.Visited(v) {
				seen[v] = true
				comp = append(comp, v)
			}
		}
		out = append(out, comp)
	}

	return out, nil
}

// Connected reports whether every vertex of w is reachable from every other.
func Connected(w *matrix.Weights) (bool, error) {
	comps, err := Components(w)
	if err != nil {
		return false, err
	}

	return len(comps) == 1, nil
}
