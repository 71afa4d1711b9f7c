// SPDX-License-Identifier: MIT

// Package vector - arithmetic.
//
// Every operation here is pure: the receiver and the argument are read only
// and a freshly allocated Vector (or scalar) is returned.

package vector

import (
	"fmt"
	"math"
)

// r3 is the only dimension for which the cross product is defined here.
const r3 = 3

// r2 is the dimension required by Angle.
const r2 = 2

// Magnitude returns the Euclidean norm √(Σ xᵢ²).
// Complexity: O(n).
func (v *Vector) Magnitude() float64 {
	var sum float64
	for _, x := range v.elems {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Unit returns v / |v|.
// Errors: ErrZeroMagnitude for the zero vector (and the 0-dimensional vector).
// Complexity: O(n).
func (v *Vector) Unit() (*Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return nil, fmt.Errorf("Vector.%s: %w", opUnit, ErrZeroMagnitude)
	}

	return v.Scale(1 / mag), nil
}

// Angle returns atan2(y, x) for a 2-dimensional vector, in radians.
// Errors: ErrDimensionMismatch when Dim() != 2.
// Complexity: O(1).
func (v *Vector) Angle() (float64, error) {
	if len(v.elems) != r2 {
		return 0, mismatchErrorf(opAngle, len(v.elems), r2)
	}

	return math.Atan2(v.elems[1], v.elems[0]), nil
}

// Dot returns Σ vᵢ·wᵢ.
// Implementation:
//   - Stage 1: reject operands of different dimension.
//   - Stage 2: accumulate products in index order.
//
// Inputs:
//   - w: any Sequence of the same dimension (a *Vector, or a matrix row/column).
//
// Errors:
//   - ErrDimensionMismatch naming both dimensions.
//   - ErrNilVector for a nil w (also reported by Add, Sub and Cross; Equal returns false).
//
// Determinism:
//   - Fixed i=0..n-1 accumulation order, so results are bit-reproducible.
//
// Complexity:
//   - Time O(n), Space O(n) for the copy of w when w is not a *Vector.
func (v *Vector) Dot(w Sequence) (float64, error) {
	other, err := elementsOf(opDot, w)
	if err != nil {
		return 0, err
	}
	if len(other) != len(v.elems) {
		return 0, mismatchErrorf(opDot, len(v.elems), len(other))
	}
	var sum float64
	for i, x := range v.elems {
		sum += x * other[i]
	}

	return sum, nil
}

// Add returns v + w element-wise.
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func (v *Vector) Add(w Sequence) (*Vector, error) { return v.combine(w, +1, opAdd) }

// Sub returns v − w element-wise.
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func (v *Vector) Sub(w Sequence) (*Vector, error) { return v.combine(w, -1, opSub) }

// combine computes v + sign*w into a fresh vector; shared by Add and Sub.
func (v *Vector) combine(w Sequence, sign float64, op string) (*Vector, error) {
	other, err := elementsOf(op, w)
	if err != nil {
		return nil, err
	}
	if len(other) != len(v.elems) {
		return nil, mismatchErrorf(op, len(v.elems), len(other))
	}
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = x + sign*other[i]
	}

	return &Vector{elems: out}, nil
}

// Scale returns alpha·v. It has no failure mode.
// Complexity: O(n).
func (v *Vector) Scale(alpha float64) *Vector {
	return v.apply(func(x float64) float64 { return alpha * x })
}

// Map returns a new vector whose i-th element is f(vᵢ).
// f must be pure: it sees each element once, in index order.
// Errors: ErrNilFunction for a nil f.
// Complexity: O(n) calls to f.
func (v *Vector) Map(f func(float64) float64) (*Vector, error) {
	if f == nil {
		return nil, fmt.Errorf("Vector.%s: %w", opMap, ErrNilFunction)
	}

	return v.apply(f), nil
}

// apply maps a non-nil f over the elements into a new Vector.
func (v *Vector) apply(f func(float64) float64) *Vector {
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = f(x)
	}

	return &Vector{elems: out}
}

// Cross returns the cross product v × w in R³:
//
//	(v₂w₃ − v₃w₂, v₃w₁ − v₁w₃, v₁w₂ − v₂w₁)
//
// Errors: ErrDimensionMismatch unless both operands are 3-dimensional.
// Complexity: O(1).
func (v *Vector) Cross(w Sequence) (*Vector, error) {
	other, err := elementsOf(opCross, w)
	if err != nil {
		return nil, err
	}
	if len(v.elems) != r3 {
		return nil, mismatchErrorf(opCross, len(v.elems), r3)
	}
	if len(other) != r3 {
		return nil, mismatchErrorf(opCross, r3, len(other))
	}
	a, b := v.elems, other

	return &Vector{elems: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Equal reports whether w has the same dimension and identical elements.
func (v *Vector) Equal(w Sequence) bool {
	other, err := elementsOf(opEqual, w)
	if err != nil {
		return false
	}
	if len(other) != len(v.elems) {
		return false
	}
	for i, x := range v.elems {
		if x != other[i] {
			return false
		}
	}

	return true
}

// elementsOf reads w without copying when it is a *Vector.
// The result is treated as read-only by every caller.
// Errors: ErrNilVector for a nil Sequence or a typed nil *Vector.
func elementsOf(op string, w Sequence) ([]float64, error) {
	if w == nil {
		return nil, fmt.Errorf("Vector.%s: %w", op, ErrNilVector)
	}
	if vv, ok := w.(*Vector); ok {
		if vv == nil {
			return nil, fmt.Errorf("Vector.%s: %w", op, ErrNilVector)
		}

		return vv.elems, nil
	}

	return w.Elements(), nil
}
