// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a statistic is requested on an empty sample.
	ErrEmpty = errors.New("stats: empty sample")

	// ErrInsufficientData is returned when an estimator needs more points
	// than supplied (SampleVariance and Quartiles need at least two).
	ErrInsufficientData = errors.New("stats: insufficient data")
)

// Operation tags used in error messages.
const (
	opMean           = "Mean"
	opMedian         = "Median"
	opMode           = "Mode"
	opRange          = "Range"
	opPopVariance    = "PopVariance"
	opSampleVariance = "SampleVariance"
	opQuartiles      = "Quartiles"
	opOutliers       = "Outliers"
	opProbability    = "Probability"
	opNewSample      = "NewSample"
)

// statsErrorf wraps err with an operation tag.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// needAtLeast reports ErrInsufficientData (or ErrEmpty for n == 0) when n < want.
func needAtLeast(op string, n, want int) error {
	if n == 0 {
		return statsErrorf(op, ErrEmpty)
	}
	if n < want {
		return statsErrorf(op, fmt.Errorf("need %d values, got %d: %w", want, n, ErrInsufficientData))
	}

	return nil
}
