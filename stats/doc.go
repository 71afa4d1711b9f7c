// SPDX-License-Identifier: MIT

// Package stats provides descriptive statistics over float64 samples.
//
// All functions are stateless and never reorder their input: order
// statistics (Median, Quartiles, Outliers) sort a private copy.
//
//   - Central tendency: Sum, Mean, Median, Mode, Frequency.
//   - Spread: Range, PopVariance, SampleVariance, PopStdDev, SampleStdDev,
//     Quartiles, IQR, Outliers.
//   - Empirical probability: Probability, ProbabilityAny.
//   - Sample: a sorted snapshot with Min/Max that forwards to the functions above.
//
// Variance follows the textbook definitions: population Σ(x−μ)²/n and
// sample Σ(x−x̄)²/(n−1). Empty input fails with ErrEmpty; estimators that
// need more points fail with ErrInsufficientData.
package stats
