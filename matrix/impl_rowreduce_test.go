// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/blueberrymath/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowReduce(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want [][]float64
	}{
		{
			name: "invertible 2x2",
			rows: [][]float64{{2, 1}, {4, 3}},
			want: [][]float64{{1, 0}, {0, 1}},
		},
		{
			name: "rank deficient 3x3",
			rows: [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}},
			want: [][]float64{{1, 0, -1}, {0, 1, 2}, {0, 0, 0}},
		},
		{
			name: "zero leading column",
			rows: [][]float64{{0, 2, 4}, {0, 1, 1}},
			want: [][]float64{{0, 1, 0}, {0, 0, 1}},
		},
		{
			name: "augmented system",
			rows: [][]float64{{1, 1, 3}, {1, -1, 1}},
			want: [][]float64{{1, 0, 2}, {0, 1, 1}},
		},
		{
			name: "tiny scaled identity",
			rows: [][]float64{{1e-13, 0}, {0, 1e-13}},
			want: [][]float64{{1, 0}, {0, 1}},
		},
		{
			name: "tiny full rank",
			rows: [][]float64{{2e-13, 1e-13}, {4e-13, 3e-13}},
			want: [][]float64{{1, 0}, {0, 1}},
		},
		{
			name: "tiny rank deficient",
			rows: [][]float64{{1e-14, 2e-14}, {2e-14, 4e-14}},
			want: [][]float64{{1, 2}, {0, 0}},
		},
		{
			name: "all zeros",
			rows: [][]float64{{0, 0}, {0, 0}},
			want: [][]float64{{0, 0}, {0, 0}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := MustNew(t, tc.rows)
			got, err := matrix.RowReduce(in)
			require.NoError(t, err)
			RequireClose(t, MustNew(t, tc.want), got, 1e-12)
			require.Equal(t, tc.rows, in.ToRows(), "input must stay untouched")
		})
	}

	_, err := matrix.RowReduce(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRowReduce_Idempotent checks rref(rref(M)) == rref(M) exactly.
func TestRowReduce_Idempotent(t *testing.T) {
	inputs := []*matrix.Dense{
		MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}),
		MustNew(t, [][]float64{{0, 3, -6, 6, 4, -5}, {3, -7, 8, -5, 8, 9}, {3, -9, 12, -9, 6, 15}}),
		MustNew(t, [][]float64{{1e-3, 1}, {1, 1}}),
	}
	for seed := int64(1); seed <= 4; seed++ {
		r, err := matrix.Random(3, 5, matrix.WithSeed(seed))
		require.NoError(t, err)
		inputs = append(inputs, r)
	}
	for _, in := range inputs {
		once, err := matrix.RowReduce(hide{in})
		require.NoError(t, err)
		twice, err := matrix.RowReduce(once)
		require.NoError(t, err)
		require.Truef(t, matrix.Equal(once, twice), "once\n%v\ntwice\n%v", once, twice)
	}
}

// TestRowReduce_Epsilon shows the pivot tolerance at work.
func TestRowReduce_Epsilon(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 1}, {1, 1 + 1e-9}})

	strict, err := matrix.RowReduce(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, strict.ToRows())

	loose, err := matrix.RowReduce(m, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1}, {0, 0}}, loose.ToRows())
}

// TestRowReduce_ScaleInvariant checks that RowReduce(s·M) == RowReduce(M) and
// that it agrees with Inverse on tiny well-conditioned input.
func TestRowReduce_ScaleInvariant(t *testing.T) {
	base := MustNew(t, [][]float64{{2, 1, 0}, {4, 3, 1}, {0, 1, 5}})
	want, err := matrix.RowReduce(base)
	require.NoError(t, err)

	for _, s := range []float64{1e-15, 1e-13, 1e-6, 1e6} {
		scaled, err := matrix.Scale(base, s)
		require.NoError(t, err)
		got, err := matrix.RowReduce(scaled)
		require.NoError(t, err)
		RequireClose(t, want, got, 1e-9)

		_, err = matrix.Inverse(scaled)
		require.NoError(t, err, "scale %g", s)
	}
}
