// SPDX-License-Identifier: MIT

package calculus

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilFunc is returned when f is nil.
	ErrNilFunc = errors.New("calculus: nil function")

	// ErrNonFinite is returned for NaN/±Inf bounds or points, and when f
	// produces a non-finite value.
	ErrNonFinite = errors.New("calculus: non-finite value")

	// ErrInterval is returned by the monotonicity tests when a > b, or when
	// [a, b] needs more than MaxMonotoneProbes probes.
	ErrInterval = errors.New("calculus: invalid interval")
)

// Func is a scalar function of one real variable.
type Func func(x float64) float64

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// NDeriv approximates f'(x) by the central difference (f(x+h) − f(x−h)) / 2h.
// Errors: ErrNilFunc; ErrNonFinite for a non-finite x or result.
// Notes: the default h = 1e-10 trades truncation error for round-off; expect
// roughly six significant digits on well-scaled functions.
func NDeriv(f Func, x float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("NDeriv: %w", ErrNilFunc)
	}
	if !finite(x) {
		return 0, fmt.Errorf("NDeriv: x=%g: %w", x, ErrNonFinite)
	}
	o := NewOptions(opts...)

	d := (f(x+o.step) - f(x-o.step)) / (2 * o.step)
	if !finite(d) {
		return 0, fmt.Errorf("NDeriv: f'(%g)=%g: %w", x, d, ErrNonFinite)
	}

	return d, nil
}

// subdivisionsFor returns the trapezoid count for an interval of the given width.
func subdivisionsFor(o Options, width float64) int {
	if o.subdivisions > 0 {
		return o.subdivisions
	}
	n := math.Round(DefaultSamplesPerUnitLength*width) + DefaultMinSubdivisions

	return int(math.Min(n, MaxSubdivisions))
}

// FnInt approximates ∫_l^u f(x) dx with the composite trapezoidal rule.
//
// Implementation:
//   - Stage 1: l == u → 0; u < l → −FnInt(f, u, l).
//   - Stage 2: n = round(1e5·(u−l)) + 1e5 trapezoids (WithSubdivisions overrides).
//   - Stage 3: Δ·(f(l)/2 + Σ_{k=1}^{n−1} f(l+kΔ) + f(u)/2), with x computed from k
//     so the abscissae do not drift.
//
// Errors:
//   - ErrNilFunc, ErrNonFinite (bounds or an evaluated value).
//
// Complexity:
//   - n+1 evaluations of f.
func FnInt(f Func, l, u float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("FnInt: %w", ErrNilFunc)
	}
	if !finite(l, u) {
		return 0, fmt.Errorf("FnInt: [%g, %g]: %w", l, u, ErrNonFinite)
	}
	if l == u {
		return 0, nil
	}
	if u < l {
		v, err := FnInt(f, u, l, opts...)

		return -v, err
	}
	o := NewOptions(opts...)

	n := subdivisionsFor(o, u-l)
	dx := (u - l) / float64(n)
	sum := (f(l) + f(u)) / 2
	for k := 1; k < n; k++ {
		sum += f(l + float64(k)*dx)
	}
	area := sum * dx
	if !finite(area) {
		return 0, fmt.Errorf("FnInt: [%g, %g]: %w", l, u, ErrNonFinite)
	}

	return area, nil
}

// monotone probes f' at a, a+1/s, a+2/s, ... up to b and reports whether
// reject never fires.
func monotone(op string, f Func, a, b float64, reject func(d float64) bool, opts []Option) (bool, error) {
	if f == nil {
		return false, fmt.Errorf("%s: %w", op, ErrNilFunc)
	}
	if !finite(a, b) {
		return false, fmt.Errorf("%s: [%g, %g]: %w", op, a, b, ErrNonFinite)
	}
	if a > b {
		return false, fmt.Errorf("%s: a=%g > b=%g: %w", op, a, b, ErrInterval)
	}
	o := NewOptions(opts...)

	span := math.Floor((b - a) * float64(o.samples)) // +Inf when b−a overflows
	if !(span < MaxMonotoneProbes) {
		return false, fmt.Errorf("%s: [%g, %g] needs %g probes, max %d: %w",
			op, a, b, span+1, MaxMonotoneProbes, ErrInterval)
	}
	steps := int(span)
	for k := 0; k <= steps; k++ {
		d, err := NDeriv(f, a+float64(k)/float64(o.samples), opts...)
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		if reject(d) {
			return false, nil
		}
	}

	return true, nil
}

// IsIncreasing reports whether f' ≥ 0 at every probe in [a, b].
// Errors: ErrNilFunc, ErrNonFinite, ErrInterval (a > b or too many probes).
func IsIncreasing(f Func, a, b float64, opts ...Option) (bool, error) {
	return monotone("IsIncreasing", f, a, b, func(d float64) bool { return d < 0 }, opts)
}

// IsDecreasing reports whether f' ≤ 0 at every probe in [a, b].
// Errors: ErrNilFunc, ErrNonFinite, ErrInterval (a > b or too many probes).
func IsDecreasing(f Func, a, b float64, opts ...Option) (bool, error) {
	return monotone("IsDecreasing", f, a, b, func(d float64) bool { return d > 0 }, opts)
}
