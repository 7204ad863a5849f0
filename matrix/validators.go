// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the structural checks a weight
//    matrix must pass before any shortest-path query may run on it.
//  - Return ErrInvalidGraph joined with the precise cause and the offending
//    coordinates, so call sites can match either.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Validate runs the individual checks in the documented priority order.
//  - Validators that index across rows check squareness themselves, so each
//    is safe to call on its own.

package matrix

import "fmt"

// MaxWeight is the largest admissible edge weight. Keeping weights within
// 31 bits guarantees that the cost of any simple path over fewer than 2^32
// vertices fits in an int64.
const MaxWeight int64 = 1<<31 - 1

// invalidf joins ErrInvalidGraph with cause and a located message.
func invalidf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrInvalidGraph, cause}, args...)...)
}

// Validate runs every structural check on rows in priority order and
// returns the first violation.
// Complexity: O(n²).
func Validate(rows [][]int64) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, ErrEmpty)
	}
	if err := ValidateSquare(rows); err != nil {
		return err
	}
	if err := ValidateNonNegative(rows); err != nil {
		return err
	}
	if err := ValidateBounds(rows); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(rows); err != nil {
		return err
	}

	return ValidateSymmetric(rows)
}

// ValidateSquare checks that every row has exactly len(rows) entries.
// Complexity: O(n).
func ValidateSquare(rows [][]int64) error {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return invalidf(ErrNonSquare, "row %d has %d entries, want %d", i, len(row), n)
		}
	}

	return nil
}

// ValidateNonNegative checks that no entry is below zero.
// Assumes a square matrix.
// Complexity: O(n²).
func ValidateNonNegative(rows [][]int64) error {
	for i, row := range rows {
		for j, w := range row {
			if w < 0 {
				return invalidf(ErrNegativeWeight, "weight[%d][%d]=%d", i, j, w)
			}
		}
	}

	return nil
}

// ValidateBounds checks that no entry exceeds MaxWeight.
// Complexity: O(n²).
func ValidateBounds(rows [][]int64) error {
	for i, row := range rows {
		for j, w := range row {
			if w > MaxWeight {
				return invalidf(ErrWeightTooLarge, "weight[%d][%d]=%d", i, j, w)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks that weight[i][i] == 0 for all i.
// A non-square matrix is reported as ErrNonSquare.
// Complexity: O(n).
func ValidateZeroDiagonal(rows [][]int64) error {
	if err := ValidateSquare(rows); err != nil {
		return err
	}
	for i := range rows {
		if rows[i][i] != 0 {
			return invalidf(ErrSelfLoop, "weight[%d][%d]=%d", i, i, rows[i][i])
		}
	}

	return nil
}

// ValidateSymmetric checks weight[i][j] == weight[j][i] on the upper triangle.
// A non-square matrix is reported as ErrNonSquare.
// Complexity: O(n²/2).
func ValidateSymmetric(rows [][]int64) error {
	if err := ValidateSquare(rows); err != nil {
		return err
	}
	n := len(rows)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return invalidf(ErrAsymmetry, "weight[%d][%d]=%d, weight[%d][%d]=%d",
					i, j, rows[i][j], j, i, rows[j][i])
			}
		}
	}

	return nil
}
