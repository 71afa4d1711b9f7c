// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (wrapped with an operation
// tag and the offending shapes/indices) and tests MUST check them via
// errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Kernels wrap
// with matrixErrorf(op, err) around a validatorErrorf cause so the message tells
// the caller WHICH shapes or indices were incompatible; errors.Is still matches.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> square -> dimension mismatch -> singular.

var (
	// ErrBadShape is returned for ragged input rows, empty input, or a
	// structurally invalid request such as the sub-matrix of a 1×1 matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	// It wraps ErrBadShape, so errors.Is(err, ErrBadShape) also holds.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrBadShape)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub of
	// different shapes, Augment with different row counts, Mul with
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Minors, Cofactors, Adjugate, Inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is zero
	// (within the configured singular tolerance).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivisionByZero is returned by DivScalar(m, 0).
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrArity is returned by MulAll when fewer than two matrices are supplied.
	ErrArity = errors.New("matrix: at least two matrices required")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy
	// (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunction indicates a nil callback passed to Map.
	ErrNilFunction = errors.New("matrix: nil function")
)
