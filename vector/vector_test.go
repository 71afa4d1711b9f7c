// Package vector_test contains unit tests for the Vector type.
package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/blueberrymath/vector"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestNewCopiesInput ensures New never aliases the caller's slice.
func TestNewCopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	v := vector.New(src...)
	src[0] = 99 // mutate the caller's slice after construction

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x) // vector keeps its own copy
	require.Equal(t, 3, v.Dim())
}

// TestElementsIsCopy ensures Elements returns an independent slice.
func TestElementsIsCopy(t *testing.T) {
	v := vector.New(4, 5)
	els := v.Elements()
	els[1] = -1

	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 5.0, x)
}

// TestAtSetOutOfRange checks bounds on both accessors.
func TestAtSetOutOfRange(t *testing.T) {
	v := vector.New(1, 2)

	_, err := v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	err = v.Set(2, 7)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.Equal(t, []float64{1, 2}, v.Elements()) // unchanged after failure

	require.NoError(t, v.Set(1, 7))
	require.Equal(t, []float64{1, 7}, v.Elements())
}

func TestMagnitude(t *testing.T) {
	require.Equal(t, 5.0, vector.New(3, 4).Magnitude())
	require.Equal(t, 0.0, vector.New().Magnitude())
}

func TestUnit(t *testing.T) {
	u, err := vector.New(3, 4).Unit()
	require.NoError(t, err)
	require.InDelta(t, 0.6, mustAt(t, u, 0), tol)
	require.InDelta(t, 0.8, mustAt(t, u, 1), tol)
	require.InDelta(t, 1.0, u.Magnitude(), tol)

	_, err = vector.New(0, 0).Unit()
	require.ErrorIs(t, err, vector.ErrZeroMagnitude)
}

func TestAngle(t *testing.T) {
	a, err := vector.New(0, 2).Angle()
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, a, tol)

	_, err = vector.New(1, 2, 3).Angle()
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestDot(t *testing.T) {
	d, err := vector.New(1, 2, 3).Dot(vector.New(4, -5, 6))
	require.NoError(t, err)
	require.Equal(t, 12.0, d)

	_, err = vector.New(1, 2).Dot(vector.New(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "dim 2 vs 3") // message names both dimensions
}

func TestAddSub(t *testing.T) {
	a := vector.New(1, 2, 3)
	b := vector.New(10, 20, 30)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33}, sum.Elements())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27}, diff.Elements())

	// operands untouched
	require.Equal(t, []float64{1, 2, 3}, a.Elements())

	_, err = a.Add(vector.New(1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.Sub(vector.New(1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestScaleAndMap(t *testing.T) {
	v := vector.New(1, -2)
	require.Equal(t, []float64{2.5, -5}, v.Scale(2.5).Elements())
	sq, err := v.Map(func(x float64) float64 { return x * x })
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4}, sq.Elements())
	require.Equal(t, []float64{1, -2}, v.Elements())

	_, err = v.Map(nil)
	require.ErrorIs(t, err, vector.ErrNilFunction)
}

// TestNilOperands checks that nil and typed-nil operands are reported, not dereferenced.
func TestNilOperands(t *testing.T) {
	v := vector.New(1, 2, 3)
	var typed *vector.Vector

	for _, w := range []vector.Sequence{nil, typed} {
		_, err := v.Dot(w)
		require.ErrorIs(t, err, vector.ErrNilVector)
		_, err = v.Add(w)
		require.ErrorIs(t, err, vector.ErrNilVector)
		_, err = v.Sub(w)
		require.ErrorIs(t, err, vector.ErrNilVector)
		_, err = v.Cross(w)
		require.ErrorIs(t, err, vector.ErrNilVector)
		require.False(t, v.Equal(w))
		_, err = vector.FromSequence(w)
		require.ErrorIs(t, err, vector.ErrNilVector)
	}
}

func TestCross(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"i×j=k", []float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 1}},
		{"j×i=-k", []float64{0, 1, 0}, []float64{1, 0, 0}, []float64{0, 0, -1}},
		{"general", []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{-3, 6, -3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.New(tc.a...).Cross(vector.New(tc.b...))
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Elements())
		})
	}

	_, err := vector.New(1, 2).Cross(vector.New(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.New(1, 2, 3).Cross(vector.New(1, 2))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestCrossOrthogonal checks (a×b)·a == 0 and (a×b)·b == 0 on random inputs.
func TestCrossOrthogonal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		a, err := vector.Random(3, rng)
		require.NoError(t, err)
		b, err := vector.Random(3, rng)
		require.NoError(t, err)

		c, err := a.Cross(b)
		require.NoError(t, err)
		da, err := c.Dot(a)
		require.NoError(t, err)
		db, err := c.Dot(b)
		require.NoError(t, err)
		require.InDelta(t, 0, da, tol)
		require.InDelta(t, 0, db, tol)
	}
}

func TestFactories(t *testing.T) {
	z, err := vector.Zeros(3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, z.Elements())

	_, err = vector.Zeros(-1)
	require.ErrorIs(t, err, vector.ErrInvalidDimension)

	h, err := vector.OneHot(4, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 0}, h.Elements())

	_, err = vector.OneHot(4, 4)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	r1, err := vector.Random(5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	r2, err := vector.Random(5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.True(t, r1.Equal(r2)) // same seed, same draw
	for _, x := range r1.Elements() {
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

func TestCloneAndString(t *testing.T) {
	v := vector.New(1, 2.5)
	c := v.Clone()
	require.NoError(t, c.Set(0, 9))
	require.Equal(t, "[1, 2.5]", v.String())
	require.Equal(t, "[9, 2.5]", c.String())
	fs, err := vector.FromSequence(v)
	require.NoError(t, err)
	require.True(t, fs.Equal(v))
	require.NoError(t, fs.Set(1, 7))
	require.Equal(t, "[1, 2.5]", v.String(), "FromSequence must copy")
}

// mustAt reads v[i] or fails the test.
func mustAt(t *testing.T, v *vector.Vector, i int) float64 {
	t.Helper()
	x, err := v.At(i)
	require.NoError(t, err)

	return x
}
