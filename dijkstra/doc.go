// Package dijkstra provides the shortest-path engine behind campusnav: a
// precise implementation of Dijkstra's algorithm over an immutable, undirected,
// non-negatively weighted matrix.
//
// Overview:
//
//   - An Engine is built once from an N×N weight matrix and then answers any
//     number of FindPath(source, destination) queries.
//   - Each query returns a Result: the ordered vertex path, its total cost and a
//     Status (Found or Unreachable).
//   - Tree exposes the whole single-source tree (Dist and Parent per vertex).
//
// Key behaviours:
//
//   - Deterministic: when several unvisited vertices share the minimum distance
//     the lowest index is settled first, and a parent is only replaced by a
//     strictly cheaper route. Repeated queries return identical results.
//   - Pure: no state survives a query; the Engine is safe for concurrent use.
//   - source == destination is rejected with ErrInvalidQuery.
//   - An unreachable destination is a valid outcome, not an error.
//
// Strategies:
//
//   - LinearScan (default): O(N²), minimal overhead, ideal for small maps.
//   - BinaryHeap: O((N + E) log N) with lazy decrease-key. Heap entries are
//     ordered by (distance, index) so both strategies settle vertices in the
//     same order and return the same paths.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidGraph:    malformed matrix at construction (see package matrix for causes).
//   - ErrInvalidNode:     source or destination outside [0, N).
//   - ErrInvalidQuery:    source == destination.
//   - ErrOptionViolation: an Option received an invalid argument.
//   - ErrUnreachable:     returned only by Result.Err.
//   - ctx.Err():          FindPathContext / Tree observed cancellation.
//
// API reference:
//
//	func New(rows [][]int64, opts ...Option) (*Engine, error)
//	func (e *Engine) FindPath(source, destination int) (Result, error)
//	func (e *Engine) FindPathContext(ctx context.Context, source, destination int) (Result, error)
//	func (e *Engine) Tree(ctx context.Context, source int) (*Tree, error)
//	func (e *Engine) Weight(i, j int) (int64, error)
//
// See also:
//
//   - matrix.Weights: validated storage and invariants.
//   - campus.Router: name-based queries on top of an Engine.
package dijkstra
