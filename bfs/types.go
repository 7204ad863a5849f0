// Package bfs provides tunable options and error definitions
// for breadth-first search over a matrix.Weights.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrNilGraph is returned if a nil matrix is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unvisited marks Depth and Parent entries of vertices BFS never reached.
const Unvisited = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit
//   - no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration to depth ≤ d hops. Negative d is a violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be ≥ 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal.
//
// Order  – vertices in visit order.
// Depth  – hop count from the start per vertex, Unvisited if not reached.
// Parent – BFS-tree parent per vertex, Unvisited for the start and unreached vertices.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unvisited
}

// PathTo returns the fewest-hop path from Start to v, or nil if v was not reached.
func (r *Result) PathTo(v int) []int {
	if !r.Visited(v) {
		return nil
	}
	path := make([]int, r.Depth[v]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = v
		v = r.Parent[v]
	}

	return path
}
