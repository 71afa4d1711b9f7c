// SPDX-License-Identifier: MIT
// Package matrix: structural and product kernels over any Matrix implementation:
// Transpose, Augment, Mul and MulAll. All functions perform strict fail-fast
// validation and return a newly allocated *Dense; operands are never mutated.
//
// Purpose:
//   - Define operation tags shared by every kernel for uniform error reporting.
//   - Keep the product on top of vector.Dot so row/column semantics live in one place.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blueberrymath/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opAddScalar   = "AddScalar"
	opSubScalar   = "SubScalar"
	opScale       = "Scale"
	opDivScalar   = "DivScalar"
	opMap         = "Map"
	opAllClose    = "AllClose"
	opMul         = "Mul"
	opMulAll      = "MulAll"
	opTranspose   = "Transpose"
	opAugment     = "Augment"
	opSubMatrix   = "SubMatrix"
	opDeterminant = "Determinant"
	opMinors      = "Minors"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opRowReduce   = "RowReduce"
	opIdentity    = "Identity"
	opZeros       = "Zeros"
	opRandom      = "Random"
	opFromRow     = "FromRowVector"
	opFromCol     = "FromColumnVector"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns the n×m matrix Mᵀ with Mᵀ[i][j] = M[j][i].
//
// Implementation:
//   - Stage 1: normalize via asDense; allocate a cols×rows result.
//   - Stage 2: walk the full source grid i→j, writing out[j*r+i].
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Fixed nested loops; Transpose(Transpose(M)) equals M bit for bit.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := d.r, d.c
	out := &Dense{r: c, c: r, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[j*r+i] = d.data[i*c+j] // (i,j) → (j,i)
		}
	}

	return out, nil
}

// Augment concatenates b to the right of a.
// Requires a.Rows() == b.Rows(); the result has a.Cols()+b.Cols() columns, with
// the right block copied from b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts named).
// Complexity: Time O(r*(ca+cb)), Space the same.
func Augment(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err = ValidateSameRows(da, db); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	cols := da.c + db.c
	out := &Dense{r: da.r, c: cols, data: make([]float64, da.r*cols)}
	for i := 0; i < da.r; i++ {
		copy(out.data[i*cols:i*cols+da.c], da.data[i*da.c:(i+1)*da.c])   // left block
		copy(out.data[i*cols+da.c:(i+1)*cols], db.data[i*db.c:(i+1)*db.c]) // right block
	}

	return out, nil
}

// Mul computes the matrix product a×b.
// MAIN DESCRIPTION:
//   - out[i][j] is the dot product of row i of a with column j of b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: extract the p columns of b once as vectors.
//   - Stage 3: for each row i of a, take Row(i) and Dot it with every cached column.
//
// Behavior highlights:
//   - Shapes: (m×n)·(n×p) → m×p.
//   - Result is always a fresh *Dense.
//
// Inputs:
//   - a (m×n), b (n×p).
//
// Returns:
//   - *Dense: the m×p product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch with both shapes ("2x3 by 2x2").
//
// Determinism:
//   - Fixed i→j order and left-to-right summation inside Dot.
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p + n*p).
//
// Notes:
//   - Transpose(Mul(A,B)) equals Mul(Transpose(B), Transpose(A)) exactly: both
//     sides sum the same products in the same order.
func Mul(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = ValidateMulCompatible(da, db); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	m, p := da.r, db.c
	out := &Dense{r: m, c: p, data: make([]float64, m*p)}

	// Stage 2: columns of b, extracted once.
	bCols := make([]*vector.Vector, p)
	for j := 0; j < p; j++ {
		if bCols[j], err = db.Col(j); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}

	// Stage 3: row · column.
	var v float64
	for i := 0; i < m; i++ {
		row, rerr := da.Row(i)
		if rerr != nil {
			return nil, matrixErrorf(opMul, rerr)
		}
		for j := 0; j < p; j++ {
			if v, err = row.Dot(bCols[j]); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			out.data[i*p+j] = v
		}
	}

	return out, nil
}

// MulAll multiplies two or more matrices left to right: ((m0×m1)×m2)×...
// Errors: ErrArity when fewer than two matrices are given; any Mul error,
// tagged with the position of the failing factor.
func MulAll(ms ...Matrix) (*Dense, error) {
	if len(ms) < 2 {
		return nil, matrixErrorf(opMulAll, fmt.Errorf("got %d: %w", len(ms), ErrArity))
	}
	acc, err := Mul(ms[0], ms[1])
	if err != nil {
		return nil, matrixErrorf(opMulAll, fmt.Errorf("factor 1: %w", err))
	}
	for k := 2; k < len(ms); k++ {
		if acc, err = Mul(acc, ms[k]); err != nil {
			return nil, matrixErrorf(opMulAll, fmt.Errorf("factor %d: %w", k, err))
		}
	}

	return acc, nil
}
