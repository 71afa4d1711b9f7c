// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"slices"
)

// outlierFence is the Tukey multiplier applied to the IQR.
const outlierFence = 1.5

// QuartileSet holds the three quartiles of a sample; Q2 is the median.
type QuartileSet struct {
	Q1, Q2, Q3 float64
}

// Range returns max − min.
// Errors: ErrEmpty.
func Range(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opRange, ErrEmpty)
	}

	return slices.Max(xs) - slices.Min(xs), nil
}

// sumSquaredDeviations returns Σ(x − mean)² for a non-empty sample.
func sumSquaredDeviations(xs []float64) float64 {
	mean := Sum(xs) / float64(len(xs))
	var ss, d float64
	for _, x := range xs {
		d = x - mean
		ss += d * d
	}

	return ss
}

// PopVariance returns the population variance Σ(x−μ)²/n.
// Errors: ErrEmpty.
func PopVariance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opPopVariance, ErrEmpty)
	}

	return sumSquaredDeviations(xs) / float64(len(xs)), nil
}

// SampleVariance returns the unbiased sample variance Σ(x−x̄)²/(n−1).
// Errors: ErrEmpty, ErrInsufficientData for a single value.
func SampleVariance(xs []float64) (float64, error) {
	if err := needAtLeast(opSampleVariance, len(xs), 2); err != nil {
		return 0, err
	}

	return sumSquaredDeviations(xs) / float64(len(xs)-1), nil
}

// PopStdDev returns √PopVariance.
func PopStdDev(xs []float64) (float64, error) {
	v, err := PopVariance(xs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// SampleStdDev returns √SampleVariance.
func SampleStdDev(xs []float64) (float64, error) {
	v, err := SampleVariance(xs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// quartilesSorted computes quartiles of a sorted slice with n ≥ 2.
// Odd n: the median is excluded from both halves.
func quartilesSorted(s []float64) QuartileSet {
	n := len(s)
	lower := s[:n/2]
	upper := s[(n+1)/2:]

	return QuartileSet{Q1: medianSorted(lower), Q2: medianSorted(s), Q3: medianSorted(upper)}
}

// Quartiles returns Q1, Q2 and Q3 by the median-of-halves method:
// Q1 and Q3 are the medians of the lower and upper halves of the sorted
// sample, with the overall median excluded from both halves when n is odd.
// Errors: ErrEmpty, ErrInsufficientData for n < 2.
//
// Example: [1 2 3 4 5 6 7 8 9] → Q1 = 2.5, Q2 = 5, Q3 = 7.5.
func Quartiles(xs []float64) (QuartileSet, error) {
	if err := needAtLeast(opQuartiles, len(xs), 2); err != nil {
		return QuartileSet{}, err
	}

	return quartilesSorted(sortedCopy(xs)), nil
}

// IQR returns Q3 − Q1.
func IQR(xs []float64) (float64, error) {
	q, err := Quartiles(xs)
	if err != nil {
		return 0, err
	}

	return q.Q3 - q.Q1, nil
}

// Outliers returns the distinct values below Q1 − 1.5·IQR or above
// Q3 + 1.5·IQR, ascending. A sample without outliers yields an empty slice.
// Errors: as Quartiles.
func Outliers(xs []float64) ([]float64, error) {
	if err := needAtLeast(opOutliers, len(xs), 2); err != nil {
		return nil, err
	}
	s := sortedCopy(xs)
	q := quartilesSorted(s)
	iqr := q.Q3 - q.Q1
	lo, hi := q.Q1-outlierFence*iqr, q.Q3+outlierFence*iqr

	out := make([]float64, 0)
	for i, x := range s {
		if (x < lo || x > hi) && (i == 0 || s[i-1] != x) {
			out = append(out, x) // s is sorted, so duplicates are adjacent
		}
	}

	return out, nil
}
