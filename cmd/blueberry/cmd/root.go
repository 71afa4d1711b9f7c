// SPDX-License-Identifier: MIT

// Package cmd holds the cobra command tree of the blueberry CLI.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blueberrymath/internal/config"
	"github.com/katalvlaran/blueberrymath/internal/logging"
	"github.com/katalvlaran/blueberrymath/matrix"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg config.Config
	log *slog.Logger
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "blueberry",
		Short: "blueberry - small dense linear algebra, statistics and calculus toolkit",
		Long: `blueberry runs the blueberrymath kernels from the command line.

Commands:
  matrix    - determinant, inverse, rref, products of matrices read from a file
  stats     - descriptive statistics and charts of a sample
  calc      - numerical derivative, integral and monotonicity of named functions
  vector    - magnitude, direction and coordinates of a vector
  discrete  - factorials and binomial coefficients

Input files are TOML or YAML, chosen by extension.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text|json")

	root.AddCommand(
		newMatrixCmd(a),
		newStatsCmd(a),
		newCalcCmd(a),
		newVectorCmd(a),
		newDiscreteCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if a.log, err = logging.New(cmd.ErrOrStderr(), cfg.Log); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.cfgFile, "command", cmd.CommandPath())

	return nil
}

// num formats v with the configured precision.
func (a *app) num(v float64) string {
	if a.cfg.Output.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', a.cfg.Output.Precision, 64)
}

// nums formats xs as "[a, b, c]".
func (a *app) nums(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = a.num(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// printMatrix writes one bracketed row per line.
func (a *app) printMatrix(w io.Writer, m *matrix.Dense) {
	for _, row := range m.ToRows() {
		fmt.Fprintln(w, a.nums(row))
	}
}
