// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and scalar kernels: Add, Sub, AddScalar, SubScalar, Scale,
//     DivScalar, Map, plus the AllClose/Equal comparators.
//   - Every kernel normalizes its operands through asDense and walks one flat
//     row-major buffer; results are always freshly allocated.
//
// Determinism & Performance:
//   - Fixed loop order 0..r*c-1; O(r*c) time and O(r*c) space for the result.

package matrix

import "math"

// ewUnary applies f to every element of m and returns a new Dense.
func ewUnary(m Matrix, opTag string, f func(v float64) float64) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	for idx, v := range d.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b), then normalize both via asDense.
//   - Stage 2: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes named in the message).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for idx := range out.data {
		out.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return out, nil
}

// Add returns a + b for equally shaped matrices.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b for equally shaped matrices.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// AddScalar returns m with s added to every element.
func AddScalar(m Matrix, s float64) (*Dense, error) {
	return ewUnary(m, opAddScalar, func(v float64) float64 { return v + s })
}

// SubScalar returns m with s subtracted from every element.
func SubScalar(m Matrix, s float64) (*Dense, error) {
	return ewUnary(m, opSubScalar, func(v float64) float64 { return v - s })
}

// Scale returns alpha·m.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return ewUnary(m, opScale, func(v float64) float64 { return v * alpha })
}

// DivScalar returns m with every element divided by s.
// Errors: ErrDivisionByZero when s == 0.
func DivScalar(m Matrix, s float64) (*Dense, error) {
	if s == 0 {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}

	return ewUnary(m, opDivScalar, func(v float64) float64 { return v / s })
}

// Map applies f to every element and returns the result as a new matrix.
// f must not retain or mutate shared state; it is called in row-major order.
func Map(m Matrix, f func(v float64) float64) (*Dense, error) {
	if f == nil {
		return nil, matrixErrorf(opMap, ErrNilFunction)
	}

	return ewUnary(m, opMap, f)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal elements.
// A nil operand is only equal to another nil operand.
func Equal(a, b Matrix) bool {
	na, nb := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if na || nb {
		return na && nb
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, errA := asDense(a)
	db, errB := asDense(b)
	if errA != nil || errB != nil {
		return false
	}
	for idx := range da.data {
		if da.data[idx] != db.data[idx] {
			return false
		}
	}

	return true
}
