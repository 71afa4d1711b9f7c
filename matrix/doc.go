// SPDX-License-Identifier: MIT

// Package matrix provides a dense, immutable-by-default matrix type and the
// classical kernels of introductory linear algebra.
//
// The package offers:
//
//   - Dense: row-major storage over a flat []float64 with bounds-checked
//     accessors (At, Row, Col) and deep copies on the way in and out.
//   - Element-wise arithmetic: Add, Sub, AddScalar, SubScalar, Scale,
//     DivScalar, Map; comparison via AllClose and Equal.
//   - Structure: Transpose, Augment, SubMatrix, RowReduce (reduced
//     row-echelon form with partial pivoting).
//   - Cofactor kernels: Determinant, Minors, Cofactors, Adjugate, Inverse.
//   - Products: Mul (row·column dot products through package vector) and
//     MulAll for left-to-right chains.
//   - Factories and conversions: Zeros, Identity, Random, FromRowVector,
//     FromColumnVector.
//
// Every kernel accepts the read-only Matrix interface and returns a freshly
// allocated *Dense; inputs are never mutated and results never alias them.
//
// Errors are package sentinels (ErrBadShape, ErrNonSquare, ErrSingular, ...)
// wrapped with the operation name and the offending shapes, so callers match
// with errors.Is and still get a readable message:
//
//	_, err := matrix.Mul(a, b)
//	// Mul: ValidateMulCompatible: 2x3 by 2x2: matrix: dimension mismatch
//
// Determinant and everything built on it use cofactor expansion, which is
// O(n!) and meant for small matrices (n ≤ ~10).
package matrix
