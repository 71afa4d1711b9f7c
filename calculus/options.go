// SPDX-License-Identifier: MIT

package calculus

import "math"

const (
	// DefaultStep is the central-difference half-width h of NDeriv.
	DefaultStep = 1e-10

	// DefaultSamplesPerUnitLength is the number of trapezoids FnInt adds per
	// unit of interval length.
	DefaultSamplesPerUnitLength = 100_000

	// DefaultMinSubdivisions is the trapezoid floor FnInt uses for any
	// non-empty interval.
	DefaultMinSubdivisions = 100_000

	// MaxSubdivisions caps the automatic trapezoid count so very long
	// intervals stay bounded in time. WithSubdivisions is not capped.
	MaxSubdivisions = 50_000_000

	// DefaultMonotoneSamples is the number of derivative probes per unit
	// length used by IsIncreasing and IsDecreasing.
	DefaultMonotoneSamples = 300

	// MaxMonotoneProbes bounds the probe count of IsIncreasing/IsDecreasing;
	// wider intervals (at the configured density) fail with ErrInterval.
	MaxMonotoneProbes = 50_000_000
)

const (
	panicStepInvalid         = "calculus: WithStep: h must be finite and > 0"
	panicSubdivisionsInvalid = "calculus: WithSubdivisions: n must be ≥ 1"
	panicSamplesInvalid      = "calculus: WithSamplesPerUnit: n must be ≥ 1"
)

// Option configures NDeriv, FnInt, IsIncreasing and IsDecreasing.
type Option func(*Options)

// Options is the resolved configuration; see the With* constructors.
type Options struct {
	step         float64 // NDeriv half-width
	subdivisions int     // 0 ⇒ interval-proportional count
	samples      int     // derivative probes per unit length
}

// WithStep sets the central-difference half-width h.
// Panics when h is NaN, ±Inf or ≤ 0.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// WithSubdivisions fixes the trapezoid count of FnInt, replacing the
// interval-proportional default. Panics when n < 1.
func WithSubdivisions(n int) Option {
	if n < 1 {
		panic(panicSubdivisionsInvalid)
	}

	return func(o *Options) { o.subdivisions = n }
}

// WithSamplesPerUnit sets the derivative probes per unit length of the
// monotonicity tests. Panics when n < 1.
func WithSamplesPerUnit(n int) Option {
	if n < 1 {
		panic(panicSamplesInvalid)
	}

	return func(o *Options) { o.samples = n }
}

// Step returns the effective NDeriv half-width.
func (o Options) Step() float64 { return o.step }

// Subdivisions returns the fixed trapezoid count, or 0 for the automatic count.
func (o Options) Subdivisions() int { return o.subdivisions }

// SamplesPerUnit returns the monotonicity probe density.
func (o Options) SamplesPerUnit() int { return o.samples }

// NewOptions resolves opts over the defaults (last wins, nil skipped).
func NewOptions(opts ...Option) Options {
	o := Options{step: DefaultStep, samples: DefaultMonotoneSamples}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
