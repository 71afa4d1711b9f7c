// SPDX-License-Identifier: MIT
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blueberrymath/coords"
	"github.com/katalvlaran/blueberrymath/vector"
)

var errNoValues = errors.New("vector: --values is empty")

func newVectorCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "vector",
		Short: "Vector algebra on comma-separated components",
	}
	c.AddCommand(newVectorInfoCmd(a), newVectorPairCmd(a, "dot"), newVectorPairCmd(a, "cross"))

	return c
}

func newVectorInfoCmd(a *app) *cobra.Command {
	var values []float64
	c := &cobra.Command{
		Use:     "info --values X,Y[,Z...]",
		Short:   "Magnitude, unit vector and polar/spherical/cylindrical coordinates",
		Example: `  blueberry vector info --values 3,4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(values) == 0 {
				return errNoValues
			}

			return a.vectorInfo(cmd.OutOrStdout(), vector.New(values...))
		},
	}
	c.Flags().Float64SliceVar(&values, "values", nil, "components")

	return c
}

func (a *app) vectorInfo(w io.Writer, v *vector.Vector) error {
	fmt.Fprintf(w, "dim:         %d\n", v.Dim())
	fmt.Fprintf(w, "magnitude:   %s\n", a.num(v.Magnitude()))
	if u, err := v.Unit(); err == nil {
		fmt.Fprintf(w, "unit:        %s\n", a.nums(u.Elements()))
	} else {
		fmt.Fprintln(w, "unit:        n/a")
	}

	switch v.Dim() {
	case 2:
		p, err := coords.ToPolar(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "polar:       r=%s theta=%s\n", a.num(p.R), a.num(p.Theta))
	case 3:
		s, err := coords.ToSpherical(v)
		if err != nil {
			return err
		}
		cy, err := coords.ToCylindrical(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "spherical:   r=%s theta=%s phi=%s\n", a.num(s.R), a.num(s.Theta), a.num(s.Phi))
		fmt.Fprintf(w, "cylindrical: rho=%s phi=%s z=%s\n", a.num(cy.Rho), a.num(cy.Phi), a.num(cy.Z))
	}

	return nil
}

// newVectorPairCmd builds the dot and cross commands, which share their flags.
func newVectorPairCmd(a *app, op string) *cobra.Command {
	var left, right []float64
	c := &cobra.Command{
		Use:     op + " --a X,Y,... --b X,Y,...",
		Short:   "Compute the " + op + " product of two vectors",
		Example: "  blueberry vector " + op + " --a 1,0,0 --b 0,1,0",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(left) == 0 || len(right) == 0 {
				return errNoValues
			}
			va, vb := vector.New(left...), vector.New(right...)
			w := cmd.OutOrStdout()
			if op == "dot" {
				d, err := va.Dot(vb)
				if err != nil {
					return fmt.Errorf("vector dot: %w", err)
				}
				fmt.Fprintln(w, a.num(d))

				return nil
			}
			x, err := va.Cross(vb)
			if err != nil {
				return fmt.Errorf("vector cross: %w", err)
			}
			fmt.Fprintln(w, a.nums(x.Elements()))

			return nil
		},
	}
	c.Flags().Float64SliceVar(&left, "a", nil, "left operand components")
	c.Flags().Float64SliceVar(&right, "b", nil, "right operand components")

	return c
}
