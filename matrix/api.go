// SPDX-License-Identifier: MIT
// Package matrix: factories and thin public facades.
//
// Purpose:
//   - Intention-revealing constructors (Zeros, Identity, Random) on top of NewDense.
//   - Facades only compose or forward; validation lives in the kernels.

package matrix

import (
	"fmt"
	"math/rand"
)

// Zeros returns a new zero-initialized rows×cols matrix.
// Errors: ErrInvalidDimensions.
func Zeros(rows, cols int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return d, nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Random returns a rows×cols matrix with entries uniform in [0, 1).
// Without WithSeed/WithRand the package-level math/rand source is used.
// Errors: ErrInvalidDimensions.
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	draw := rand.Float64
	if o.rng != nil {
		draw = o.rng.Float64
	}
	for idx := range d.data {
		d.data[idx] = draw()
	}

	return d, nil
}

// MustNew is New for static literals; it panics on error.
// Intended for tests, examples and package-level tables only.
func MustNew(rows [][]float64, opts ...Option) *Dense {
	d, err := New(rows, opts...)
	if err != nil {
		panic(fmt.Sprintf("matrix.MustNew: %v", err))
	}

	return d
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return Zeros(m.Rows(), m.Cols())
}

// IdentityLike returns I_n for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity(m.Rows())
}

// CloneMatrix returns an independent *Dense copy of any Matrix.
func CloneMatrix(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}

	return d.Clone(), nil
}
