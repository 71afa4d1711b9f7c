// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies user options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only through an
//     explicit source (WithSeed / WithRand) or the documented global fallback.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Which entry points read which option:
//   - New:       validateNaNInf.
//   - Random:    rng.
//   - RowReduce: eps (pivot tolerance, relative to the largest entry).
//   - Inverse:   singularTol (|det| ≤ singularTol ⇒ ErrSingular).
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative pivot tolerance of RowReduce: a candidate
	// pivot with |p| ≤ DefaultEpsilon·max|m[i][j]| is treated as zero and its
	// column is skipped. It keeps round-off residue (≈1e-16 relative) from being
	// promoted to a pivot while staying independent of the matrix scale.
	DefaultEpsilon = 1e-12

	// DefaultSingularTolerance is the |det| threshold of Inverse. Zero means an
	// exact-zero determinant is required to report ErrSingular.
	DefaultSingularTolerance = 0.0

	// DefaultValidateNaNInf toggles finite-value validation in New.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
	panicRandSourceIsNil = "matrix: WithRand: rng must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64    // >= 0; DefaultEpsilon
	singularTol    float64    // >= 0; DefaultSingularTolerance
	validateNaNInf bool       // DefaultValidateNaNInf
	rng            *rand.Rand // nil ⇒ package-level math/rand source
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the relative pivot tolerance used by RowReduce.
// Panics when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - WithEpsilon(0) restores the textbook "pivot == 0" test; expect round-off
//     residue to be treated as a pivot on rank-deficient inputs.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularTolerance sets the |det| threshold below which Inverse reports
// ErrSingular. Panics when tol is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Scale-dependent: a tolerance that suits entries ~1 is far too coarse for
//     entries ~1e-6 (det of an n×n matrix scales with the n-th power).
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf makes New reject NaN and ±Inf entries with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets New accept NaN and ±Inf entries as-is.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRand makes Random draw from rng. Panics when rng is nil.
// The source is used, not copied: concurrent Random calls sharing one rng race.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandSourceIsNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithSeed makes Random draw from a fresh source seeded with seed.
// Same seed ⇒ same matrix, independent of other callers.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// NewMatrixOptions resolves opts over the defaults; exposed for callers that
// want to inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the effective RowReduce pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SingularTolerance returns the effective Inverse singularity threshold.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// ValidateNaNInf reports whether New rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		singularTol:    DefaultSingularTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order over the defaults (last wins).
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
