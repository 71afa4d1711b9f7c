// SPDX-License-Identifier: MIT
// Package matrix: cofactor-expansion kernels.
//
// Purpose:
//   - SubMatrix, Determinant, Minors, Cofactors, Adjugate and the adjugate-based Inverse.
//
// Complexity:
//   - Determinant is exponential (O(n!)) by cofactor expansion along row 0.
//     Minors/Cofactors/Adjugate/Inverse multiply that by n². Intended for small
//     matrices (n ≤ ~10); larger systems belong to an LU-based solver.

package matrix

import (
	"fmt"
	"math"
)

// subMatrix removes row r and column c from d without validation.
// Callers guarantee d is at least 2×2 and r, c are in range.
func subMatrix(d *Dense, r, c int) *Dense {
	out := &Dense{r: d.r - 1, c: d.c - 1, data: make([]float64, 0, (d.r-1)*(d.c-1))}
	var i, j int
	for i = 0; i < d.r; i++ {
		if i == r {
			continue
		}
		for j = 0; j < d.c; j++ {
			if j == c {
				continue
			}
			out.data = append(out.data, d.data[i*d.c+j])
		}
	}

	return out
}

// SubMatrix returns m with row r and column c removed.
// Errors:
//   - ErrBadShape when m has a single row or a single column (nothing would remain).
//   - ErrOutOfRange when r or c is outside m.
//
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func SubMatrix(m Matrix, r, c int) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if d.r <= 1 || d.c <= 1 {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("%dx%d: %w", d.r, d.c, ErrBadShape))
	}
	if _, err = d.indexOf(r, c); err != nil {
		return nil, matrixErrorf(opSubMatrix, denseErrorf(opSubMatrix, r, c, err))
	}

	return subMatrix(d, r, c), nil
}

// determinant is the recursive core of Determinant; d must be square.
func determinant(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2] // ad − bc
	}

	var sum, sign float64 = 0, 1
	for j := 0; j < d.c; j++ {
		if a := d.data[j]; a != 0 { // zero entries contribute nothing
			sum += sign * a * determinant(subMatrix(d, 0, j))
		}
		sign = -sign
	}

	return sum
}

// Determinant returns det(m) for a square matrix.
// MAIN DESCRIPTION:
//   - 1×1: the single element. 2×2: ad − bc.
//   - n>2: Σ_j (−1)^j · m[0][j] · det(SubMatrix(m, 0, j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed expansion along row 0, columns left to right.
//
// Complexity:
//   - Time O(n!), Space O(n²) of live sub-matrices along the recursion path.
//
// Notes:
//   - Zero entries in row 0 are skipped; sparse first rows are much cheaper.
func Determinant(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err = ValidateSquare(d); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d), nil
}

// minors builds the minors matrix of a square d.
// A 1×1 matrix has the single minor det(∅) = 1.
func minors(d *Dense) *Dense {
	n := d.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	if n == 1 {
		out.data[0] = 1

		return out
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = determinant(subMatrix(d, i, j))
		}
	}

	return out
}

// Minors returns the matrix M[i][j] = det(SubMatrix(m, i, j)).
// Errors: ErrNilMatrix, ErrNonSquare.
func Minors(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinors, err)
	}
	if err = ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opMinors, err)
	}

	return minors(d), nil
}

// cofactors flips the sign of minors where i+j is odd, in place on a fresh matrix.
func cofactors(d *Dense) *Dense {
	out := minors(d)
	n := out.c
	for idx := range out.data {
		if (idx/n+idx%n)%2 == 1 {
			out.data[idx] = -out.data[idx]
		}
	}

	return out
}

// Cofactors returns the minors matrix with each entry scaled by (−1)^(i+j).
// Errors: ErrNilMatrix, ErrNonSquare.
func Cofactors(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if err = ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return cofactors(d), nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (*Dense, error) {
	c, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return Transpose(c)
}

// Inverse returns m⁻¹ = Adjugate(m) / det(m).
// MAIN DESCRIPTION:
//   - Closed-form inverse through the classical adjoint.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: det(m); |det| ≤ singular tolerance → ErrSingular.
//   - Stage 3: Adjugate(m) scaled by 1/det through DivScalar.
//
// Inputs:
//   - opts: WithSingularTolerance(tol) widens the singularity test; the default
//     (DefaultSingularTolerance) rejects only an exactly zero determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (determinant reported in the message).
//
// Complexity:
//   - Time O(n²·n!), Space O(n²).
//
// Notes:
//   - Mul(m, Inverse(m)) ≈ Identity within floating-point tolerance; compare with AllClose.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := determinant(d)
	if math.Abs(det) <= o.singularTol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	adj, err := Transpose(cofactors(d))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return DivScalar(adj, det)
}
