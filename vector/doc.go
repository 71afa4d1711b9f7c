// SPDX-License-Identifier: MIT

// Package vector provides a fixed-dimension float64 vector and the Sequence
// interface shared with package matrix.
//
// What & Why:
//
//	Vector is the leaf of the blueberrymath stack. Package matrix materialises
//	rows and columns as Vectors and multiplies matrices through Dot, while
//	vector itself never imports matrix: conversions in the other direction go
//	through the read-only Sequence interface (matrix.FromRowVector,
//	matrix.FromColumnVector). That layering keeps the import graph acyclic.
//
// Ownership:
//
//   - New copies its arguments; Elements returns a copy.
//   - Set mutates in place and is bounds-checked.
//   - Every arithmetic operation (Add, Sub, Scale, Map, Cross, Unit) returns a
//     fresh Vector and leaves the receiver untouched.
//
// Errors:
//
//	ErrOutOfRange for bad indices, ErrDimensionMismatch for operands of
//	different dimension, ErrZeroMagnitude when normalising the zero vector.
//	All are sentinels matched with errors.Is; messages carry the offending
//	dimensions or index.
//
// Complexity:
//
//	At/Set/Dim are O(1); everything else is O(n) in the dimension.
package vector
