// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blueberrymath/discrete"
)

func newDiscreteCmd(_ *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "discrete",
		Short: "Factorials and binomial coefficients",
	}

	factorial := &cobra.Command{
		Use:     "factorial N",
		Short:   "Print N!",
		Example: `  blueberry discrete factorial 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("discrete factorial: %w", err)
			}
			f, err := discrete.Factorial(n)
			if err != nil {
				return fmt.Errorf("discrete factorial: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)

			return nil
		},
	}

	choose := &cobra.Command{
		Use:     "choose N K",
		Short:   "Print the binomial coefficient C(N, K)",
		Example: `  blueberry discrete choose 5 2`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("discrete choose: %w", err)
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("discrete choose: %w", err)
			}
			v, err := discrete.Choose(n, k)
			if err != nil {
				return fmt.Errorf("discrete choose: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}

	c.AddCommand(factorial, choose)

	return c
}
