// SPDX-License-Identifier: MIT

// Package chart renders sample distributions with gonum/plot: a frequency
// histogram and a Tukey box plot. Plots are built in memory and written as
// PNG, JPEG, SVG or PDF, chosen by file extension or explicit format.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/blueberrymath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultBins is the histogram bin count used when bins ≤ 0.
const DefaultBins = 10

// boxWidth is the drawn width of a box plot.
const boxWidth = vg.Length(40)

var (
	// ErrFormat is returned for an unsupported output format.
	ErrFormat = errors.New("chart: unsupported format")

	// ErrNonFinite is returned when a sample contains NaN or ±Inf.
	ErrNonFinite = errors.New("chart: non-finite value")
)

// formats lists the encoders gonum/plot ships with.
var formats = map[string]struct{}{"png": {}, "jpg": {}, "jpeg": {}, "svg": {}, "pdf": {}, "eps": {}, "tif": {}, "tiff": {}}

// checkValues rejects empty and non-finite samples.
func checkValues(op string, values []float64) (plotter.Values, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", op, stats.ErrEmpty)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: value %d is %g: %w", op, i, v, ErrNonFinite)
		}
	}
	vs := make(plotter.Values, len(values))
	copy(vs, values)

	return vs, nil
}

// Histogram builds a frequency histogram of values with the given bin count
// (DefaultBins when bins ≤ 0). The title carries n, mean and sample std-dev
// when they are defined.
// Errors: stats.ErrEmpty, ErrNonFinite.
func Histogram(values []float64, bins int, title string) (*plot.Plot, error) {
	vs, err := checkValues("Histogram", values)
	if err != nil {
		return nil, err
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	h, err := plotter.NewHist(vs, bins)
	if err != nil {
		return nil, fmt.Errorf("Histogram: %w", err)
	}

	p := plot.New()
	p.Title.Text = withSummary(title, values)
	p.X.Label.Text = "value"
	p.Y.Label.Text = "frequency"
	p.Add(h)

	return p, nil
}

// BoxPlot builds a single box plot (median, quartiles, 1.5·IQR whiskers,
// outliers as points).
// Errors: stats.ErrEmpty, ErrNonFinite.
func BoxPlot(values []float64, title string) (*plot.Plot, error) {
	vs, err := checkValues("BoxPlot", values)
	if err != nil {
		return nil, err
	}
	b, err := plotter.NewBoxPlot(boxWidth, 0, vs)
	if err != nil {
		return nil, fmt.Errorf("BoxPlot: %w", err)
	}

	p := plot.New()
	p.Title.Text = withSummary(title, values)
	p.Y.Label.Text = "value"
	p.Add(b)
	p.NominalX(title)

	return p, nil
}

// withSummary appends "(n=…, mean=…, sd=…)" to title.
func withSummary(title string, values []float64) string {
	mean, err := stats.Mean(values)
	if err != nil {
		return title
	}
	summary := fmt.Sprintf("n=%d, mean=%.4g", len(values), mean)
	if sd, err := stats.SampleStdDev(values); err == nil {
		summary += fmt.Sprintf(", sd=%.4g", sd)
	}
	if title == "" {
		return summary
	}

	return fmt.Sprintf("%s (%s)", title, summary)
}

// formatOf returns the lower-case format for a path's extension.
func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Save renders p to path; the extension selects the format.
// width and height are in points (1/72 inch).
// Errors: ErrFormat for an unknown extension, I/O errors from gonum/plot.
func Save(p *plot.Plot, width, height float64, path string) error {
	if _, ok := formats[formatOf(path)]; !ok {
		return fmt.Errorf("Save %q: %w", path, ErrFormat)
	}
	if err := p.Save(vg.Points(width), vg.Points(height), path); err != nil {
		return fmt.Errorf("Save %q: %w", path, err)
	}

	return nil
}

// Render writes p to w in the given format ("png", "svg", "pdf", ...).
func Render(p *plot.Plot, w io.Writer, width, height float64, format string) error {
	format = strings.ToLower(format)
	if _, ok := formats[format]; !ok {
		return fmt.Errorf("Render %q: %w", format, ErrFormat)
	}
	wt, err := p.WriterTo(vg.Points(width), vg.Points(height), format)
	if err != nil {
		return fmt.Errorf("Render %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Render %q: %w", format, err)
	}

	return nil
}
