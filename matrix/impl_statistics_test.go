// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		sparsity float64
		isSparse bool
		isDense  bool
	}{
		{"all zeros", [][]float64{{0, 0}, {0, 0}}, 1, true, false},
		{"identity 2", [][]float64{{1, 0}, {0, 1}}, 0.5, true, true},
		{"one zero", [][]float64{{1, 2}, {0, 4}}, 0.25, false, true},
		{"no zeros", [][]float64{{1, 2, 3}}, 0, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustNew(t, tc.rows)
			require.InDelta(t, tc.sparsity, m.Sparsity(), 1e-15)
			require.InDelta(t, 1-tc.sparsity, m.Density(), 1e-15)
			require.Equal(t, tc.isSparse, m.IsSparse())
			require.Equal(t, tc.isDense, m.IsDense())
		})
	}

	row := MustNew(t, [][]float64{{1, 2, 3}})
	col := MustNew(t, [][]float64{{1}, {2}})
	one := MustNew(t, [][]float64{{1}})
	require.True(t, row.IsRowVector())
	require.False(t, row.IsColumnVector())
	require.True(t, col.IsColumnVector())
	require.False(t, col.IsRowVector())
	require.True(t, one.IsRowVector() && one.IsColumnVector())
}
