// Package blueberrymath is a small numeric toolkit for dense float64 work:
// vector algebra, matrix algebra, descriptive statistics and single-variable
// calculus approximations.
//
// Under the hood, everything is organized into focused subpackages:
//
//	vector/    fixed-dimension Vector and the Sequence interface shared with matrix
//	matrix/    row-major Dense matrix: Mul, Transpose, Augment, Determinant,
//	           Minors, Cofactors, Adjugate, Inverse, RowReduce, validators, options
//	coords/    polar, spherical and cylindrical coordinates of 2-D / 3-D vectors
//	stats/     mean, median, mode, variance, quartiles, outliers, Sample
//	calculus/  central-difference derivative, trapezoidal integral, monotonicity
//	discrete/  factorial, binomial coefficient, finite series
//	chart/     histogram and box plot of a sample (gonum/plot)
//
// The blueberry command (cmd/blueberry) exposes the kernels over TOML or YAML
// input files.
//
// Quick example:
//
//	m, _ := matrix.New([][]float64{{4, 7}, {2, 6}})
//	inv, _ := matrix.Inverse(m)
//	fmt.Print(inv) // [0.6, -0.7]
//	           [-0.2, 0.4]
//
// Every kernel returns a freshly allocated result; inputs are never mutated.
//
//	go get github.com/katalvlaran/blueberrymath
package blueberrymath
