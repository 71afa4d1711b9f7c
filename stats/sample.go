// SPDX-License-Identifier: MIT

package stats

import "math"

// Sample is an immutable, sorted snapshot of a dataset.
// Methods forward to the package functions; Variance and StdDev use the
// unbiased (n−1) estimators.
//
// Build samples with NewSample. The zero value is an empty sample: Min, Max,
// Mean, Median and Range return NaN, Mode returns nil, the probabilities are 0,
// and the error-returning methods report ErrEmpty.
type Sample struct {
	sorted []float64
}

// NewSample copies and sorts values.
// Errors: ErrEmpty.
func NewSample(values ...float64) (*Sample, error) {
	if len(values) == 0 {
		return nil, statsErrorf(opNewSample, ErrEmpty)
	}

	return &Sample{sorted: sortedCopy(values)}, nil
}

// Values returns the sorted values (a copy).
func (s *Sample) Values() []float64 { return sortedCopy(s.sorted) }

// Len returns the number of values.
func (s *Sample) Len() int { return len(s.sorted) }

// Min returns the smallest value.
func (s *Sample) Min() float64 {
	if len(s.sorted) == 0 {
		return math.NaN()
	}

	return s.sorted[0]
}

// Max returns the largest value.
func (s *Sample) Max() float64 {
	if len(s.sorted) == 0 {
		return math.NaN()
	}

	return s.sorted[len(s.sorted)-1]
}

// Sum returns Σx.
func (s *Sample) Sum() float64 { return Sum(s.sorted) }

// Mean returns the arithmetic mean.
func (s *Sample) Mean() float64 {
	if len(s.sorted) == 0 {
		return math.NaN()
	}

	return Sum(s.sorted) / float64(len(s.sorted))
}

// Median returns the median; the snapshot is already sorted.
func (s *Sample) Median() float64 {
	if len(s.sorted) == 0 {
		return math.NaN()
	}

	return medianSorted(s.sorted)
}

// Mode returns the most frequent values, ascending.
func (s *Sample) Mode() []float64 {
	m, _ := Mode(s.sorted) // nil for the zero value

	return m
}

// Frequency returns the occurrence count of each distinct value.
func (s *Sample) Frequency() map[float64]int { return Frequency(s.sorted) }

// Range returns Max − Min.
func (s *Sample) Range() float64 { return s.Max() - s.Min() }

// Variance returns the sample variance. Errors: ErrInsufficientData for one value.
func (s *Sample) Variance() (float64, error) { return SampleVariance(s.sorted) }

// StdDev returns the sample standard deviation. Errors: ErrInsufficientData for one value.
func (s *Sample) StdDev() (float64, error) { return SampleStdDev(s.sorted) }

// Quartiles returns Q1, Q2, Q3. Errors: ErrInsufficientData for one value.
func (s *Sample) Quartiles() (QuartileSet, error) {
	if err := needAtLeast(opQuartiles, len(s.sorted), 2); err != nil {
		return QuartileSet{}, err
	}

	return quartilesSorted(s.sorted), nil
}

// IQR returns Q3 − Q1.
func (s *Sample) IQR() (float64, error) { return IQR(s.sorted) }

// Outliers returns the distinct values outside the 1.5·IQR fences.
func (s *Sample) Outliers() ([]float64, error) { return Outliers(s.sorted) }

// Probability returns count(v)/Len().
func (s *Sample) Probability(v float64) float64 {
	p, _ := Probability(s.sorted, v) // 0 for the zero value

	return p
}

// ProbabilityAny returns the probability of drawing any distinct member of set.
func (s *Sample) ProbabilityAny(set ...float64) float64 {
	p, _ := ProbabilityAny(s.sorted, set...)

	return p
}
