// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blueberrymath/internal/document"
	"github.com/katalvlaran/blueberrymath/matrix"
)

// unaryMatrixOps maps an op name to a kernel producing a matrix.
var unaryMatrixOps = map[string]func(a *app, m *matrix.Dense) (*matrix.Dense, error){
	"inverse": func(a *app, m *matrix.Dense) (*matrix.Dense, error) {
		return matrix.Inverse(m, matrix.WithSingularTolerance(a.cfg.Numeric.SingularTolerance))
	},
	"rref": func(a *app, m *matrix.Dense) (*matrix.Dense, error) {
		return matrix.RowReduce(m, matrix.WithEpsilon(a.cfg.Numeric.Epsilon))
	},
	"transpose": func(_ *app, m *matrix.Dense) (*matrix.Dense, error) { return matrix.Transpose(m) },
	"adjugate":  func(_ *app, m *matrix.Dense) (*matrix.Dense, error) { return matrix.Adjugate(m) },
	"minors":    func(_ *app, m *matrix.Dense) (*matrix.Dense, error) { return matrix.Minors(m) },
	"cofactors": func(_ *app, m *matrix.Dense) (*matrix.Dense, error) { return matrix.Cofactors(m) },
}

func matrixOpNames() []string {
	names := []string{"det", "info", "multiply"}
	for name := range unaryMatrixOps {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newMatrixCmd(a *app) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "matrix <op> -f FILE",
		Short: "Run a matrix kernel on the matrix (or matrices) in FILE",
		Long: `Run a matrix kernel on a TOML or YAML document.

Operations: ` + strings.Join(matrixOpNames(), ", ") + `

"multiply" reads the "matrices" list and multiplies left to right; every other
operation reads "matrix" (or the first entry of "matrices").`,
		Example: `  blueberry matrix det -f m.toml
  blueberry matrix multiply -f pair.yaml`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: matrixOpNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(file)
			if err != nil {
				return err
			}

			return a.runMatrix(cmd.OutOrStdout(), args[0], doc)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "input document (.toml, .yaml)")
	_ = c.MarkFlagRequired("file")

	return c
}

func (a *app) runMatrix(w io.Writer, op string, doc *document.Document) error {
	if op == "multiply" {
		ms, err := doc.DenseMatrices()
		if err != nil {
			return err
		}
		factors := make([]matrix.Matrix, len(ms))
		for i, m := range ms {
			factors[i] = m
		}
		a.log.Debug("multiply", "factors", len(factors))
		out, err := matrix.MulAll(factors...)
		if err != nil {
			return fmt.Errorf("matrix multiply: %w", err)
		}
		a.printMatrix(w, out)

		return nil
	}

	m, err := doc.DenseMatrix()
	if err != nil {
		return err
	}
	a.log.Debug("matrix loaded", "op", op, "rows", m.Rows(), "cols", m.Cols())

	switch op {
	case "det":
		det, err := matrix.Determinant(m)
		if err != nil {
			return fmt.Errorf("matrix det: %w", err)
		}
		fmt.Fprintln(w, a.num(det))
	case "info":
		a.printInfo(w, m)
	default:
		kernel, ok := unaryMatrixOps[op]
		if !ok {
			return fmt.Errorf("matrix: unknown op %q", op)
		}
		out, err := kernel(a, m)
		if err != nil {
			return fmt.Errorf("matrix %s: %w", op, err)
		}
		a.printMatrix(w, out)
	}

	return nil
}

// printInfo reports shape and sparsity diagnostics, and the determinant of a square matrix.
func (a *app) printInfo(w io.Writer, m *matrix.Dense) {
	fmt.Fprintf(w, "shape:    %dx%d\n", m.Rows(), m.Cols())
	fmt.Fprintf(w, "square:   %t\n", m.IsSquare())
	fmt.Fprintf(w, "row:      %t\n", m.IsRowVector())
	fmt.Fprintf(w, "column:   %t\n", m.IsColumnVector())
	fmt.Fprintf(w, "sparsity: %s\n", a.num(m.Sparsity()))
	fmt.Fprintf(w, "sparse:   %t\n", m.IsSparse())
	if m.IsSquare() {
		if det, err := matrix.Determinant(m); err == nil {
			fmt.Fprintf(w, "det:      %s\n", a.num(det))
		}
	}
}
