// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blueberrymath/calculus"
)

// functions is the table of named functions the calc commands accept.
var functions = map[string]calculus.Func{
	"sin":    math.Sin,
	"cos":    math.Cos,
	"exp":    math.Exp,
	"log":    math.Log,
	"sqrt":   math.Sqrt,
	"square": func(x float64) float64 { return x * x },
	"cube":   func(x float64) float64 { return x * x * x },
}

func functionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func lookupFunc(name string) (calculus.Func, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("calc: unknown function %q (one of %s)", name, strings.Join(functionNames(), ", "))
	}

	return f, nil
}

func newCalcCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "calc",
		Short: "Numerical calculus on named functions (" + strings.Join(functionNames(), ", ") + ")",
	}
	c.AddCommand(newDerivCmd(a), newIntegrateCmd(a), newMonotoneCmd(a))

	return c
}

func newDerivCmd(a *app) *cobra.Command {
	var (
		name string
		x    float64
	)
	c := &cobra.Command{
		Use:     "deriv --func NAME --at X",
		Short:   "Central-difference derivative f'(x)",
		Example: `  blueberry calc deriv --func sin --at 0`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookupFunc(name)
			if err != nil {
				return err
			}
			d, err := calculus.NDeriv(f, x)
			if err != nil {
				return fmt.Errorf("calc deriv: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.num(d))

			return nil
		},
	}
	c.Flags().StringVar(&name, "func", "", "function name")
	c.Flags().Float64Var(&x, "at", 0, "abscissa")
	_ = c.MarkFlagRequired("func")

	return c
}

func newIntegrateCmd(a *app) *cobra.Command {
	var (
		name     string
		from, to float64
		n        int
	)
	c := &cobra.Command{
		Use:     "integrate --func NAME --from L --to U",
		Short:   "Trapezoidal integral of f over [L, U]",
		Example: `  blueberry calc integrate --func square --from 0 --to 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookupFunc(name)
			if err != nil {
				return err
			}
			var opts []calculus.Option
			if n > 0 {
				opts = append(opts, calculus.WithSubdivisions(n))
			}
			a.log.Debug("integrate", "func", name, "from", from, "to", to, "n", n)
			v, err := calculus.FnInt(f, from, to, opts...)
			if err != nil {
				return fmt.Errorf("calc integrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.num(v))

			return nil
		},
	}
	c.Flags().StringVar(&name, "func", "", "function name")
	c.Flags().Float64Var(&from, "from", 0, "lower bound")
	c.Flags().Float64Var(&to, "to", 1, "upper bound")
	c.Flags().IntVar(&n, "n", 0, "trapezoid count (default scales with the interval)")
	_ = c.MarkFlagRequired("func")

	return c
}

func newMonotoneCmd(_ *app) *cobra.Command {
	var (
		name     string
		from, to float64
	)
	c := &cobra.Command{
		Use:     "monotone --func NAME --from A --to B",
		Short:   "Report whether f is increasing or decreasing on [A, B]",
		Example: `  blueberry calc monotone --func exp --from -1 --to 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookupFunc(name)
			if err != nil {
				return err
			}
			inc, err := calculus.IsIncreasing(f, from, to)
			if err != nil {
				return fmt.Errorf("calc monotone: %w", err)
			}
			dec, err := calculus.IsDecreasing(f, from, to)
			if err != nil {
				return fmt.Errorf("calc monotone: %w", err)
			}

			verdict := "neither"
			switch {
			case inc && dec:
				verdict = "constant"
			case inc:
				verdict = "increasing"
			case dec:
				verdict = "decreasing"
			}
			fmt.Fprintln(cmd.OutOrStdout(), verdict)

			return nil
		},
	}
	c.Flags().StringVar(&name, "func", "", "function name")
	c.Flags().Float64Var(&from, "from", 0, "interval start")
	c.Flags().Float64Var(&to, "to", 1, "interval end")
	_ = c.MarkFlagRequired("func")

	return c
}
