// SPDX-License-Identifier: MIT
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/katalvlaran/blueberrymath/chart"
	"github.com/katalvlaran/blueberrymath/internal/document"
	"github.com/katalvlaran/blueberrymath/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "stats",
		Short: "Descriptive statistics of the values in a document",
	}
	c.AddCommand(newStatsDescribeCmd(a), newStatsPlotCmd(a))

	return c
}

func newStatsDescribeCmd(a *app) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:     "describe -f FILE",
		Short:   "Print the summary statistics of the sample",
		Example: `  blueberry stats describe -f sample.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSample(file)
			if err != nil {
				return err
			}

			return a.describe(cmd.OutOrStdout(), s)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "input document with a values list")
	_ = c.MarkFlagRequired("file")

	return c
}

func newStatsPlotCmd(a *app) *cobra.Command {
	var (
		file  string
		kind  string
		out   string
		title string
		bins  int
	)

	c := &cobra.Command{
		Use:     "plot -f FILE -o OUT",
		Short:   "Render a histogram or box plot of the sample",
		Example: `  blueberry stats plot -f sample.toml --kind box -o box.svg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSample(file)
			if err != nil {
				return err
			}
			if bins <= 0 {
				bins = a.cfg.Plot.Bins
			}

			var p *plot.Plot
			switch kind {
			case "hist":
				p, err = chart.Histogram(s.Values(), bins, title)
			case "box":
				p, err = chart.BoxPlot(s.Values(), title)
			default:
				return fmt.Errorf("stats plot: unknown kind %q (hist|box)", kind)
			}
			if err != nil {
				return fmt.Errorf("stats plot: %w", err)
			}
			if err = chart.Save(p, a.cfg.Plot.Width, a.cfg.Plot.Height, out); err != nil {
				return fmt.Errorf("stats plot: %w", err)
			}
			a.log.Info("chart written", "kind", kind, "path", out, "n", s.Len())
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "input document with a values list")
	c.Flags().StringVar(&kind, "kind", "hist", "chart kind: hist|box")
	c.Flags().StringVarP(&out, "output", "o", "", "output image (.png, .svg, .pdf, ...)")
	c.Flags().StringVar(&title, "title", "", "chart title")
	c.Flags().IntVar(&bins, "bins", 0, "histogram bins (default from config)")
	_ = c.MarkFlagRequired("file")
	_ = c.MarkFlagRequired("output")

	return c
}

func loadSample(path string) (*stats.Sample, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}

	return doc.Sample()
}

// describe prints one "name: value" line per statistic. Statistics that need
// more points than the sample has are shown as n/a.
func (a *app) describe(w io.Writer, s *stats.Sample) error {
	fmt.Fprintf(w, "n:        %d\n", s.Len())
	fmt.Fprintf(w, "min:      %s\n", a.num(s.Min()))
	fmt.Fprintf(w, "max:      %s\n", a.num(s.Max()))
	fmt.Fprintf(w, "sum:      %s\n", a.num(s.Sum()))
	fmt.Fprintf(w, "mean:     %s\n", a.num(s.Mean()))
	fmt.Fprintf(w, "median:   %s\n", a.num(s.Median()))
	fmt.Fprintf(w, "mode:     %s\n", a.nums(s.Mode()))
	fmt.Fprintf(w, "range:    %s\n", a.num(s.Range()))

	optional := []struct {
		name string
		f    func() (float64, error)
	}{
		{"variance", s.Variance},
		{"stddev", s.StdDev},
		{"iqr", s.IQR},
	}
	for _, o := range optional {
		v, err := o.f()
		if err != nil {
			if !errors.Is(err, stats.ErrInsufficientData) {
				return err
			}
			fmt.Fprintf(w, "%-9s n/a\n", o.name+":")
			continue
		}
		fmt.Fprintf(w, "%-9s %s\n", o.name+":", a.num(v))
	}

	q, err := s.Quartiles()
	if errors.Is(err, stats.ErrInsufficientData) {
		fmt.Fprintln(w, "quartiles: n/a")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "quartiles: %s\n", a.nums([]float64{q.Q1, q.Q2, q.Q3}))
	outliers, err := s.Outliers()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "outliers: %s\n", a.nums(outliers))

	return nil
}
