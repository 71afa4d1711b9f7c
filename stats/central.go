// SPDX-License-Identifier: MIT

package stats

import (
	"slices"
)

// Sum returns Σxs; the sum of an empty sample is 0.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}

// Mean returns the arithmetic mean.
// Errors: ErrEmpty.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opMean, ErrEmpty)
	}

	return Sum(xs) / float64(len(xs)), nil
}

// sortedCopy returns an ascending copy of xs; xs is left untouched.
func sortedCopy(xs []float64) []float64 {
	s := slices.Clone(xs)
	slices.Sort(s)

	return s
}

// medianSorted is the median of an already sorted, non-empty slice.
// Even lengths average the two central elements.
func medianSorted(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

// Median returns the middle value of the sorted sample, or the mean of the
// two middle values for an even count.
// Errors: ErrEmpty.
// Complexity: O(n log n) for the private sort.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opMedian, ErrEmpty)
	}

	return medianSorted(sortedCopy(xs)), nil
}

// Frequency counts occurrences of each distinct value.
// An empty sample yields an empty, non-nil map.
func Frequency(xs []float64) map[float64]int {
	freq := make(map[float64]int, len(xs))
	for _, x := range xs {
		freq[x]++
	}

	return freq
}

// Mode returns every value sharing the highest frequency, ascending.
// A sample of distinct values is multimodal: every value is returned.
// Errors: ErrEmpty.
func Mode(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, statsErrorf(opMode, ErrEmpty)
	}
	freq := Frequency(xs)
	best := 0
	for _, n := range freq {
		best = max(best, n)
	}
	modes := make([]float64, 0, len(freq))
	for v, n := range freq {
		if n == best {
			modes = append(modes, v)
		}
	}
	slices.Sort(modes) // map order is random; fix the output order

	return modes, nil
}
