// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every validation failure is reported as ErrInvalidGraph joined with the
// specific cause below, so callers may match either the broad kind or the
// precise violation via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// empty -> non-square -> negative -> too large -> self-loop -> asymmetry.

var (
	// ErrInvalidGraph is the umbrella kind for any malformed weight matrix.
	ErrInvalidGraph = errors.New("matrix: invalid graph")

	// ErrEmpty signals a matrix with zero rows.
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrNonSquare signals that some row length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeWeight signals an entry below zero.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrWeightTooLarge signals an entry above MaxWeight.
	ErrWeightTooLarge = errors.New("matrix: weight exceeds MaxWeight")

	// ErrSelfLoop signals a non-zero diagonal entry.
	ErrSelfLoop = errors.New("matrix: non-zero diagonal (self-loop)")

	// ErrAsymmetry signals weight[i][j] != weight[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Checked indexers (At) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Weights was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
