// SPDX-License-Identifier: MIT
// Package matrix: conversions between vector sequences and matrices.
// Both directions go through vector.Sequence, so neither package needs the
// other's concrete type to build a row or column matrix.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blueberrymath/vector"
)

// FromRowVector returns the 1×n matrix holding the elements of s.
// Errors: ErrBadShape for a nil or empty sequence.
func FromRowVector(s vector.Sequence) (*Dense, error) {
	elems, err := sequenceElements(s)
	if err != nil {
		return nil, matrixErrorf(opFromRow, err)
	}

	return &Dense{r: 1, c: len(elems), data: elems}, nil
}

// FromColumnVector returns the n×1 matrix holding the elements of s.
// Errors: ErrBadShape for a nil or empty sequence.
func FromColumnVector(s vector.Sequence) (*Dense, error) {
	elems, err := sequenceElements(s)
	if err != nil {
		return nil, matrixErrorf(opFromCol, err)
	}

	return &Dense{r: len(elems), c: 1, data: elems}, nil
}

// sequenceElements copies the elements of s, rejecting nil and empty input.
func sequenceElements(s vector.Sequence) ([]float64, error) {
	if s == nil {
		return nil, fmt.Errorf("nil sequence: %w", ErrBadShape)
	}
	if v, ok := s.(*vector.Vector); ok && v == nil {
		return nil, fmt.Errorf("nil sequence: %w", ErrBadShape)
	}
	elems := s.Elements()
	if len(elems) == 0 {
		return nil, fmt.Errorf("empty sequence: %w", ErrBadShape)
	}
	out := make([]float64, len(elems))
	copy(out, elems)

	return out, nil
}
