// Package matrix holds the dense weight matrix that every campusnav query runs on.
//
// What:
//
//   - Weights: an immutable N×N int64 matrix, row-major, zero meaning "no edge".
//   - Validate and friends: structural checks applied before construction.
//   - FloydWarshall: dense all-pairs distances, NoPath for unreachable pairs.
//
// Invariants enforced by NewWeights:
//
//   - N ≥ 1 and every row has N entries (square).
//   - 0 ≤ weight[i][j] ≤ MaxWeight.
//   - weight[i][i] == 0 (no self-loops).
//   - weight[i][j] == weight[j][i] (undirected).
//
// Errors:
//
//   - ErrInvalidGraph is joined with one of ErrEmpty, ErrNonSquare,
//     ErrNegativeWeight, ErrWeightTooLarge, ErrSelfLoop, ErrAsymmetry.
//   - ErrOutOfRange / ErrNilMatrix from the checked indexer At.
//
// Complexity:
//
//   - Construction O(N²); At, Weight, HasEdge O(1); Neighbors O(N);
//     FloydWarshall O(N³).
//
// Thread safety:
//
//   - Weights has no mutators; share one value across goroutines freely.
package matrix
