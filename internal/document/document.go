// SPDX-License-Identifier: MIT

// Package document reads the CLI input files: a single matrix, a list of
// matrices, or a sample of values, encoded as TOML or YAML.
//
//	matrix = [[4.0, 7.0], [2.0, 6.0]]
//
//	matrices:
//	  - [[1, 2], [3, 4]]
//	  - [[5], [6]]
//	values: [1, 2, 2, 3, 9]
package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/blueberrymath/internal/config"
	"github.com/katalvlaran/blueberrymath/matrix"
	"github.com/katalvlaran/blueberrymath/stats"
)

var (
	// ErrNoMatrix is returned when the document carries neither matrix nor matrices.
	ErrNoMatrix = errors.New("document: no matrix")
	// ErrNoValues is returned when the document carries no values.
	ErrNoValues = errors.New("document: no values")
)

// Document is the decoded input file. All keys are optional.
type Document struct {
	Matrix   [][]float64   `toml:"matrix" yaml:"matrix"`
	Matrices [][][]float64 `toml:"matrices" yaml:"matrices"`
	Values   []float64     `toml:"values" yaml:"values"`
}

// Load reads and decodes path; the format follows the file extension.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document.Load: %w", err)
	}
	doc, err := Parse(content, config.DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("document.Load %s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes content in the given format.
func Parse(content []byte, format config.Format) (*Document, error) {
	var doc Document
	if err := config.Decode(content, format, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DenseMatrix builds the single matrix of the document. When only matrices is
// present, the first entry is used.
func (d *Document) DenseMatrix(opts ...matrix.Option) (*matrix.Dense, error) {
	switch {
	case len(d.Matrix) > 0:
		return matrix.New(d.Matrix, opts...)
	case len(d.Matrices) > 0:
		return matrix.New(d.Matrices[0], opts...)
	default:
		return nil, ErrNoMatrix
	}
}

// DenseMatrices builds every matrix of the document, in order. A lone matrix
// key yields a one-element slice.
func (d *Document) DenseMatrices(opts ...matrix.Option) ([]*matrix.Dense, error) {
	if len(d.Matrices) == 0 {
		m, err := d.DenseMatrix(opts...)
		if err != nil {
			return nil, err
		}

		return []*matrix.Dense{m}, nil
	}

	out := make([]*matrix.Dense, len(d.Matrices))
	var err error
	for i, rows := range d.Matrices {
		if out[i], err = matrix.New(rows, opts...); err != nil {
			return nil, fmt.Errorf("matrices[%d]: %w", i, err)
		}
	}

	return out, nil
}

// Sample wraps the values of the document.
func (d *Document) Sample() (*stats.Sample, error) {
	if len(d.Values) == 0 {
		return nil, ErrNoValues
	}

	return stats.NewSample(d.Values...)
}
