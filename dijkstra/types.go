// Package dijkstra defines core types and configuration options
// for the shortest-path engine.
//
// Options:
//
//	– Strategy: how the next vertex to settle is chosen (LinearScan or BinaryHeap).
//
// Errors (sentinel):
//
//	– ErrInvalidGraph    if the weight matrix is malformed (alias of matrix.ErrInvalidGraph).
//	– ErrInvalidNode     if a source or destination index is out of range.
//	– ErrInvalidQuery    if source == destination.
//	– ErrOptionViolation if an Option received an invalid argument.
//	– ErrUnreachable     only via Result.Err(); unreachable is a result, not a failure.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/matrix"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidGraph indicates a malformed weight matrix at construction.
	// It is the same value as matrix.ErrInvalidGraph so either name matches.
	ErrInvalidGraph = matrix.ErrInvalidGraph

	// ErrInvalidNode indicates a source or destination index outside [0, N).
	ErrInvalidNode = errors.New("dijkstra: node index out of range")

	// ErrInvalidQuery indicates a degenerate query where source == destination.
	ErrInvalidQuery = errors.New("dijkstra: source and destination are the same node")

	// ErrOptionViolation indicates that an Option was given an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrUnreachable is returned by Result.Err when no path exists.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")
)

// Infinity is the distance of a vertex not (yet) reached from the source.
const Infinity int64 = math.MaxInt64

// NoParent marks a vertex without predecessor: the source itself, or any
// vertex the source cannot reach.
const NoParent = -1

// Strategy selects how the next unvisited vertex is picked.
type Strategy int

const (
	// LinearScan scans all vertices for the minimum finite distance.
	// O(N²) per query, no allocations beyond the per-call arrays.
	// This is the default and the right choice for small, dense maps.
	LinearScan Strategy = iota

	// BinaryHeap keeps candidates in a min-heap ordered by (distance, index).
	// O((N+E) log N) per query; preferable for large sparse maps.
	BinaryHeap
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear"
	case BinaryHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "linear" or "heap" (as produced by String) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "linear":
		return LinearScan, nil
	case "heap":
		return BinaryHeap, nil
	default:
		return LinearScan, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Options configures an Engine.
type Options struct {
	Strategy Strategy // vertex selection strategy

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring an Engine.
// Invalid arguments are recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns the engine defaults: LinearScan.
func DefaultOptions() Options {
	return Options{Strategy: LinearScan}
}

// WithStrategy sets the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != LinearScan && s != BinaryHeap {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// Status is the outcome of a valid query.
type Status int

const (
	// Found means a path exists; Result.Path and Result.Cost are meaningful.
	Found Status = iota

	// Unreachable means the destination lies in another component.
	Unreachable
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of a single FindPath query. It is a plain value,
// owned by the caller; the engine keeps no reference to it.
type Result struct {
	Source      int
	Destination int

	// Path lists vertex indices from Source to Destination inclusive.
	// Nil when Status == Unreachable.
	Path []int

	// Cost is the sum of edge weights along Path.
	// Infinity when Status == Unreachable.
	Cost int64

	Status Status
}

// Reachable reports whether a path was found.
func (r Result) Reachable() bool {
	return r.Status == Found
}

// Hops returns the number of edges on the path, or 0 when unreachable.
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Err returns nil for a found path and a wrapped ErrUnreachable otherwise,
// for callers that prefer to treat unreachability as an error.
func (r Result) Err() error {
	if r.Reachable() {
		return nil
	}

	return fmt.Errorf("%w: %d → %d", ErrUnreachable, r.Source, r.Destination)
}

// Tree is the single-source shortest-path tree produced by one run.
//
// Dist[v]   – minimal cost from Source to v, or Infinity if unreachable.
// Parent[v] – predecessor of v on its shortest path, or NoParent.
type Tree struct {
	Source int
	Dist   []int64
	Parent []int
}

// Reachable reports whether v was reached from Source.
func (t *Tree) Reachable(v int) bool {
	return v >= 0 && v < len(t.Dist) && t.Dist[v] != Infinity
}

// PathTo walks Parent pointers back from dst and returns the path in
// Source→dst order. ok is false when dst is unreachable or out of range.
// Complexity: O(path length).
func (t *Tree) PathTo(dst int) (path []int, ok bool) {
	if !t.Reachable(dst) {
		return nil, false
	}
	if dst == t.Source {
		return []int{dst}, true
	}
	if t.Parent[dst] == NoParent {
		return nil, false
	}

	// Walk backwards; a simple path never has more than len(Dist) vertices.
	for v := dst; v != NoParent; v = t.Parent[v] {
		path = append(path, v)
		if len(path) > len(t.Dist) {
			return nil, false
		}
	}

	// Reverse into Source→dst order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
