// SPDX-License-Identifier: MIT

// Package vector - storage, constructors and element access.
//
// Purpose:
//   - Own a contiguous []float64 whose length is fixed at construction.
//   - Keep the public surface panic-free: At/Set return errors instead.
//   - Expose Sequence so matrix can convert vectors without importing this
//     package's concrete type in reverse.

package vector

import (
	"fmt"
	"math/rand"
	"strings"
)

// Formatting literals.
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Sequence is the read-only numeric sequence shared by vector and matrix.
// Elements must return a copy; callers may mutate the returned slice freely.
type Sequence interface {
	// Dim returns the number of elements.
	Dim() int

	// Elements returns a copy of the elements in order.
	Elements() []float64
}

// Vector is an ordered, fixed-dimension sequence of float64 values.
// The zero value is a valid 0-dimensional vector.
type Vector struct {
	elems []float64 // owned storage, len == dimension
}

// Compile-time assertions.
var (
	_ Sequence     = (*Vector)(nil)
	_ fmt.Stringer = (*Vector)(nil)
)

// New builds a vector holding a copy of elems.
// Complexity: O(n).
func New(elems ...float64) *Vector {
	buf := make([]float64, len(elems)) // own the storage; never alias the caller
	copy(buf, elems)

	return &Vector{elems: buf}
}

// FromSequence copies any Sequence into a new Vector.
// Errors: ErrNilVector for a nil Sequence.
// Complexity: O(n).
func FromSequence(s Sequence) (*Vector, error) {
	elems, err := elementsOf(opFrom, s)
	if err != nil {
		return nil, err
	}

	return New(elems...), nil
}

// Zeros returns the n-dimensional zero vector.
// Errors: ErrInvalidDimension for n < 0.
// Complexity: O(n).
func Zeros(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opZeros, n, ErrInvalidDimension)
	}

	return &Vector{elems: make([]float64, n)}, nil
}

// OneHot returns an n-dimensional vector of zeros with a single 1 at pos.
// Errors: ErrInvalidDimension for n < 0; ErrOutOfRange when pos ∉ [0, n).
// Complexity: O(n).
func OneHot(n, pos int) (*Vector, error) {
	v, err := Zeros(n)
	if err != nil {
		return nil, err
	}
	if pos < 0 || pos >= n {
		return nil, indexErrorf(opOneHot, pos, n)
	}
	v.elems[pos] = 1

	return v, nil
}

// Random returns an n-dimensional vector with entries uniform in [0, 1).
// A nil rng falls back to the package-level math/rand source; pass a seeded
// *rand.Rand for reproducible output.
// Errors: ErrInvalidDimension for n < 0.
// Complexity: O(n).
func Random(n int, rng *rand.Rand) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opRandom, n, ErrInvalidDimension)
	}
	draw := rand.Float64 // global source
	if rng != nil {
		draw = rng.Float64
	}
	v := &Vector{elems: make([]float64, n)}
	for i := range v.elems {
		v.elems[i] = draw()
	}

	return v, nil
}

// Dim returns the number of elements. Complexity: O(1).
func (v *Vector) Dim() int { return len(v.elems) }

// At returns the element at index i.
// Errors: ErrOutOfRange when i ∉ [0, Dim()).
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elems) {
		return 0, indexErrorf(opAt, i, len(v.elems))
	}

	return v.elems[i], nil
}

// Set stores x at index i in place.
// Errors: ErrOutOfRange when i ∉ [0, Dim()); the vector is unchanged then.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.elems) {
		return indexErrorf(opSet, i, len(v.elems))
	}
	v.elems[i] = x

	return nil
}

// Elements returns a copy of the elements. Complexity: O(n).
func (v *Vector) Elements() []float64 {
	out := make([]float64, len(v.elems))
	copy(out, v.elems)

	return out
}

// Clone returns an independent copy. Complexity: O(n).
func (v *Vector) Clone() *Vector { return New(v.elems...) }

// String renders the vector as "[a, b, c]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.elems {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
