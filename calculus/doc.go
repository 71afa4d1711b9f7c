// SPDX-License-Identifier: MIT

// Package calculus provides numerical derivatives, definite integrals and
// monotonicity tests for scalar functions f: ℝ → ℝ.
//
//   - NDeriv: central difference (f(x+h) − f(x−h)) / 2h, h = DefaultStep.
//   - FnInt: composite trapezoidal rule whose sub-interval count grows with
//     the interval length (DefaultSamplesPerUnitLength per unit plus a floor
//     of DefaultMinSubdivisions), capped at MaxSubdivisions.
//   - IsIncreasing / IsDecreasing: sign of NDeriv sampled DefaultMonotoneSamples
//     times per unit length across [a, b].
//
// Tuning goes through functional options (WithStep, WithSubdivisions,
// WithSamplesPerUnit). Functions are evaluated sequentially; f need not be
// safe for concurrent use.
package calculus
