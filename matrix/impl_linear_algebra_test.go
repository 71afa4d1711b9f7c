// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/blueberrymath/matrix"
	"github.com/katalvlaran/blueberrymath/vector"
	"github.com/stretchr/testify/require"
)

// TestTranspose covers non-square shapes and the double-transpose identity.
func TestTranspose(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	for seed := int64(1); seed <= 5; seed++ {
		r, err := matrix.Random(int(seed), int(seed)+2, matrix.WithSeed(seed))
		require.NoError(t, err)
		once, err := matrix.Transpose(hide{r})
		require.NoError(t, err)
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		require.True(t, matrix.Equal(r, twice))
	}
}

// TestAugment covers the documented scenario and the row-count mismatch.
func TestAugment(t *testing.T) {
	got, err := matrix.Augment(MustNew(t, [][]float64{{1}, {2}}), MustNew(t, [][]float64{{3}, {4}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, got.ToRows())

	got, err = matrix.Augment(MustNew(t, [][]float64{{1, 2}, {3, 4}}), hide{MustNew(t, [][]float64{{5, 6, 7}, {8, 9, 10}})})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 5, 6, 7}, {3, 4, 8, 9, 10}}, got.ToRows())

	_, err = matrix.Augment(MustNew(t, [][]float64{{1}}), MustNew(t, [][]float64{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul covers values, shape, and the mismatch message.
func TestMul(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, got.ToRows())

	_, err = matrix.Mul(a, MustNew(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "2x3 by 2x2")
}

// TestMul_Properties checks shape m×p and (AB)ᵀ == BᵀAᵀ exactly.
func TestMul_Properties(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		m, n, p := int(seed%3)+1, int(seed%4)+1, int(seed%5)+1
		a, err := matrix.Random(m, n, matrix.WithSeed(seed))
		require.NoError(t, err)
		b, err := matrix.Random(n, p, matrix.WithSeed(seed+100))
		require.NoError(t, err)

		ab, err := matrix.Mul(a, b)
		require.NoError(t, err)
		require.Equal(t, m, ab.Rows())
		require.Equal(t, p, ab.Cols())

		abT, err := matrix.Transpose(ab)
		require.NoError(t, err)
		bT, _ := matrix.Transpose(b)
		aT, _ := matrix.Transpose(a)
		bTaT, err := matrix.Mul(bT, aT)
		require.NoError(t, err)
		require.True(t, matrix.Equal(abT, bTaT))
	}
}

// TestMul_Identity checks I·M == M·I == M.
func TestMul_Identity(t *testing.T) {
	m := RandomSquare(t, 4, 3)
	id, err := matrix.Identity(4)
	require.NoError(t, err)
	left, err := matrix.Mul(id, m)
	require.NoError(t, err)
	right, err := matrix.Mul(m, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, left))
	require.True(t, matrix.Equal(m, right))
}

// TestMulAll covers chaining and the arity guard.
func TestMulAll(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}})
	b := MustNew(t, [][]float64{{1, 0}, {0, 1}})
	c := MustNew(t, [][]float64{{3}, {4}})

	got, err := matrix.MulAll(a, b, c)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11}}, got.ToRows())

	_, err = matrix.MulAll(a)
	require.ErrorIs(t, err, matrix.ErrArity)
	_, err = matrix.MulAll()
	require.ErrorIs(t, err, matrix.ErrArity)

	_, err = matrix.MulAll(a, b, b, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "factor 3")
}

// TestVectorConversions covers FromRowVector/FromColumnVector.
func TestVectorConversions(t *testing.T) {
	v := vector.New(1, 2, 3)

	row, err := matrix.FromRowVector(v)
	require.NoError(t, err)
	require.True(t, row.IsRowVector())
	require.Equal(t, [][]float64{{1, 2, 3}}, row.ToRows())

	col, err := matrix.FromColumnVector(v)
	require.NoError(t, err)
	require.True(t, col.IsColumnVector())
	require.Equal(t, [][]float64{{1}, {2}, {3}}, col.ToRows())

	require.NoError(t, v.Set(0, 42))
	require.Equal(t, 1.0, MustAt(t, row, 0, 0))

	_, err = matrix.FromRowVector(vector.New())
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromColumnVector(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
