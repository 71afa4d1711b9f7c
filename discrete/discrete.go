// SPDX-License-Identifier: MIT

// Package discrete provides exact integer combinatorics and finite series.
// Results are uint64; every overflow is reported instead of wrapping.
package discrete

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxFactorial is the largest n whose factorial fits in a uint64 (20! ≈ 2.4e18).
const MaxFactorial = 20

var (
	// ErrNegative is returned by Factorial for n < 0.
	ErrNegative = errors.New("discrete: negative argument")

	// ErrOverflow is returned when a result does not fit in a uint64.
	ErrOverflow = errors.New("discrete: uint64 overflow")

	// ErrInvalidChoose is returned by Choose for negative arguments or k > n.
	ErrInvalidChoose = errors.New("discrete: choose requires 0 ≤ k ≤ n")
)

// Factorial returns n!.
// Errors: ErrNegative (n < 0), ErrOverflow (n > MaxFactorial).
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrNegative)
	}
	if n > MaxFactorial {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
	}
	f := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		f *= i
	}

	return f, nil
}

// Choose returns the binomial coefficient C(n, k).
//
// Implementation:
//   - k is replaced by min(k, n−k).
//   - C accumulates as C(n−k+i, i) = C(n−k+i−1, i−1)·(n−k+i)/i; the product
//     is formed in 128 bits (bits.Mul64) so only a final result above
//     MaxUint64 overflows.
//
// Errors: ErrInvalidChoose, ErrOverflow.
func Choose(n, k int) (uint64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, fmt.Errorf("Choose(%d,%d): %w", n, k, ErrInvalidChoose)
	}
	k = min(k, n-k)
	c := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(c, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, fmt.Errorf("Choose(%d,%d): %w", n, k, ErrOverflow)
		}
		c, _ = bits.Div64(hi, lo, uint64(i)) // exact: i divides the product
	}

	return c, nil
}

// Series returns Σ_{i=start}^{end} f(i); an empty range (start > end) sums to 0.
func Series(start, end int, f func(i int) float64) float64 {
	var s float64
	for i := start; i <= end; i++ {
		s += f(i)
	}

	return s
}
