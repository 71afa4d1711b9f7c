// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Operations return these sentinels wrapped with the operation name and the
// offending dimensions/index; callers match them with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an element index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different dimension, or an
	// operation that is defined only for a specific dimension (Cross, Angle).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroMagnitude is returned by Unit for the zero vector.
	ErrZeroMagnitude = errors.New("vector: zero magnitude")

	// ErrInvalidDimension indicates a negative requested dimension.
	ErrInvalidDimension = errors.New("vector: dimension must be >= 0")

	// ErrNilVector indicates a nil Sequence operand, including a typed nil *Vector.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNilFunction indicates a nil callback passed to Map.
	ErrNilFunction = errors.New("vector: nil function")
)

// Operation tags used in error wrapping.
const (
	opAt     = "At"
	opSet    = "Set"
	opDot    = "Dot"
	opAdd    = "Add"
	opSub    = "Sub"
	opCross  = "Cross"
	opAngle  = "Angle"
	opUnit   = "Unit"
	opOneHot = "OneHot"
	opZeros  = "Zeros"
	opRandom = "Random"
	opEqual  = "Equal"
	opMap    = "Map"
	opFrom   = "FromSequence"
)

// mismatchErrorf reports the two dimensions that failed to line up.
func mismatchErrorf(op string, left, right int) error {
	return fmt.Errorf("Vector.%s: dim %d vs %d: %w", op, left, right, ErrDimensionMismatch)
}

// indexErrorf reports the offending index together with the valid bound.
func indexErrorf(op string, i, dim int) error {
	return fmt.Errorf("Vector.%s(%d): dim %d: %w", op, i, dim, ErrOutOfRange)
}
