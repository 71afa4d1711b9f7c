// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Own the storage outright: constructors copy, accessors copy, nothing aliases.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) copy; NewDense: O(r*c) zero-init; At: O(1); Row/Col/Clone/ToRows: O(r*c) worst.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/blueberrymath/vector"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxNew = "New" // constructor tag
	ctxRow = "Row" // method tag for Dense.Row
	ctxCol = "Col" // method tag for Dense.Col
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for every public constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// New builds a matrix from a rectangular sequence of rows, copying every value.
// MAIN DESCRIPTION:
//   - Primary constructor: validates shape and numeric policy, then owns a copy.
//
// Implementation:
//   - Stage 1: reject empty input or an empty first row (ErrBadShape).
//   - Stage 2: every row i must have len(rows[0]) elements, else ErrBadShape naming i.
//   - Stage 3: copy into a flat row-major buffer, rejecting NaN/Inf when the policy is on.
//
// Inputs:
//   - rows: rows[i][j] is the element at (i, j).
//   - opts: WithValidateNaNInf (default) / WithNoValidateNaNInf.
//
// Errors:
//   - ErrBadShape (empty or ragged), ErrNaNInf (policy violation, with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Later mutation of rows by the caller never affects the returned matrix.
func New(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %d rows: %w", ctxNew, len(rows), ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, row 0 has %d: %w",
				ctxNew, i, len(rows[i]), c, ErrBadShape)
		}
	}

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// Errors: ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Size is an alias of Shape.
func (m *Dense) Size() (rows, cols int) { return m.Shape() }

// IsSquare reports Rows() == Cols(). Complexity: O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Unwrapped on purpose: public callers attach method name and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Row returns row r as a new Vector (a copy, not a view).
// Errors: ErrOutOfRange when r ∉ [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(r int) (*vector.Vector, error) {
	if r < 0 || r >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %d rows: %w", ctxRow, r, m.r, ErrOutOfRange)
	}

	return vector.New(m.data[r*m.c : (r+1)*m.c]...), nil // New copies
}

// Col returns column c as a new Vector (a copy, not a view).
// Errors: ErrOutOfRange when c ∉ [0, Cols()).
// Complexity: O(r).
func (m *Dense) Col(c int) (*vector.Vector, error) {
	if c < 0 || c >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %d cols: %w", ctxCol, c, m.c, ErrOutOfRange)
	}
	col := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+c] // stride by row length
	}

	return vector.New(col...), nil
}

// Clone returns a deep copy (new buffer).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows returns the elements as a freshly allocated [][]float64.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Intended for debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At. Callers MUST treat the result as read-only.
// Errors: ErrNilMatrix for nil; ErrBadShape for non-positive dimensions;
// At errors from foreign implementations.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil // fast path: no copy
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}
