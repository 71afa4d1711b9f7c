// SPDX-License-Identifier: MIT
// Package matrix: structural diagnostics on Dense.
//
// Purpose:
//   - Sparsity/Density report the fraction of exact zeros (non-zeros) in the buffer.
//   - IsSparse/IsDense use the 0.5 threshold; a matrix with exactly half zeros is both.
//   - IsRowVector/IsColumnVector classify 1×n and n×1 shapes.

package matrix

// sparseThreshold is the fraction at or above which a matrix counts as sparse (or dense).
const sparseThreshold = 0.5

// Sparsity returns the fraction of entries that are exactly zero.
// Complexity: O(r*c).
func (m *Dense) Sparsity() float64 {
	zeros := 0
	m.Do(func(_, _ int, v float64) bool {
		if v == 0 {
			zeros++
		}

		return true
	})

	return float64(zeros) / float64(len(m.data))
}

// IsSparse reports Sparsity() ≥ 0.5.
func (m *Dense) IsSparse() bool { return m.Sparsity() >= sparseThreshold }

// Density returns 1 − Sparsity().
func (m *Dense) Density() float64 { return 1 - m.Sparsity() }

// IsDense reports Density() ≥ 0.5.
func (m *Dense) IsDense() bool { return m.Density() >= sparseThreshold }

// IsColumnVector reports a single column.
func (m *Dense) IsColumnVector() bool { return m.c == 1 }

// IsRowVector reports a single row.
func (m *Dense) IsRowVector() bool { return m.r == 1 }
