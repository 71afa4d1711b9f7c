// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan elimination to reduced row-echelon form.

package matrix

import "math"

// RowReduce returns the reduced row-echelon form of m; m is untouched.
// MAIN DESCRIPTION:
//   - Gauss-Jordan elimination with partial pivoting on a private clone.
//
// Implementation:
//   - Stage 1: clone m; tol = ε·max|m[i][j]|; pivot row h = 0, pivot column k = 0.
//   - Stage 2: i_max = argmax_{i ∈ [h, r)} |a[i][k]|.
//   - Stage 3: |a[i_max][k]| ≤ tol → column has no pivot: k++ only.
//   - Stage 4: swap rows h and i_max, divide row h by its pivot (pivot := 1 exactly),
//     subtract multiples of row h from every other row (column k := 0 exactly), h++, k++.
//   - Stage 5: stop when h == r or k == c.
//
// Behavior highlights:
//   - Pivot and eliminated entries are snapped to exact 1 and 0, so
//     RowReduce(RowReduce(m)) equals RowReduce(m) exactly.
//
// Inputs:
//   - opts: WithEpsilon(ε) sets the relative pivot tolerance (DefaultEpsilon).
//     The threshold scales with the largest entry, so 1e-13·I reduces to I
//     just like I does; WithEpsilon(0) accepts any non-zero pivot.
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Ties in the pivot search keep the first (lowest) row index.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r*c).
func RowReduce(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}
	a := d.Clone()
	r, c := a.r, a.c
	tol := o.eps * maxAbs(a.data)

	var h, k, i, j, iMax int
	var best, pivot, factor float64
	for h < r && k < c {
		// Stage 2: partial pivot search.
		iMax, best = h, math.Abs(a.data[h*c+k])
		for i = h + 1; i < r; i++ {
			if v := math.Abs(a.data[i*c+k]); v > best {
				iMax, best = i, v
			}
		}
		// Stage 3: no usable pivot in this column.
		if best <= tol {
			for i = h; i < r; i++ {
				a.data[i*c+k] = 0 // flush residue below the pivot row
			}
			k++
			continue
		}
		// Stage 4: swap, normalize, eliminate.
		if iMax != h {
			a.swapRows(h, iMax)
		}
		pivot = a.data[h*c+k]
		for j = k; j < c; j++ {
			a.data[h*c+j] /= pivot
		}
		a.data[h*c+k] = 1
		for i = 0; i < r; i++ {
			if i == h {
				continue
			}
			factor = a.data[i*c+k]
			if factor == 0 {
				continue
			}
			for j = k; j < c; j++ {
				a.data[i*c+j] -= factor * a.data[h*c+j]
			}
			a.data[i*c+k] = 0
		}
		h++
		k++
	}

	return a, nil
}

// maxAbs returns max |x| over xs (0 for an all-zero buffer).
func maxAbs(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if v := math.Abs(x); v > m {
			m = v
		}
	}

	return m
}

// swapRows exchanges rows p and q in place; both must be valid.
func (m *Dense) swapRows(p, q int) {
	rp := m.data[p*m.c : (p+1)*m.c]
	rq := m.data[q*m.c : (q+1)*m.c]
	for j := range rp {
		rp[j], rq[j] = rq[j], rp[j]
	}
}
