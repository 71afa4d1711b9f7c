// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface accepted by every kernel.
//
// Rationale:
//   - Kernels accept Matrix and return *Dense ("accept interfaces, return
//     structs"), so callers can feed their own storage without conversion.
//   - The interface carries no Set: values are immutable after construction,
//     which is what makes shared read-only use across goroutines safe.
//
// Complexity notes: all methods are expected O(1).
package matrix

// Matrix represents a two-dimensional read-only array of float64 values.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}
