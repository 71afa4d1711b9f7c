// SPDX-License-Identifier: MIT
package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blueberrymath/discrete"
	"github.com/katalvlaran/blueberrymath/internal/config"
	"github.com/katalvlaran/blueberrymath/matrix"
	"github.com/katalvlaran/blueberrymath/vector"
)

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func parseNum(t *testing.T, out string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err, out)

	return v
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "blueberry dev\n"), out)
	require.Contains(t, out, "Go Version: ")
}

func TestMatrix(t *testing.T) {
	sq := writeDoc(t, "sq.toml", "matrix = [[4.0, 7.0], [2.0, 6.0]]\n")
	det := writeDoc(t, "det.toml", "matrix = [[1.0, 2.0], [3.0, 4.0]]\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"det", []string{"matrix", "det", "-f", det}, "-2\n"},
		{"inverse", []string{"matrix", "inverse", "-f", sq}, "[0.6, -0.7]\n[-0.2, 0.4]\n"},
		{"transpose", []string{"matrix", "transpose", "-f", sq}, "[4, 2]\n[7, 6]\n"},
		{"adjugate", []string{"matrix", "adjugate", "-f", sq}, "[6, -7]\n[-2, 4]\n"},
		{"minors", []string{"matrix", "minors", "-f", sq}, "[6, 2]\n[7, 4]\n"},
		{"cofactors", []string{"matrix", "cofactors", "-f", sq}, "[6, -2]\n[-7, 4]\n"},
		{"rref", []string{"matrix", "rref", "-f", sq}, "[1, 0]\n[0, 1]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestMatrix_Multiply(t *testing.T) {
	path := writeDoc(t, "pair.yaml", "matrices:\n  - [[1, 2], [3, 4]]\n  - [[5], [6]]\n")
	out, _, err := run(t, "matrix", "multiply", "-f", path)
	require.NoError(t, err)
	require.Equal(t, "[17]\n[39]\n", out)

	single := writeDoc(t, "one.yaml", "matrix: [[1, 2]]\n")
	_, _, err = run(t, "matrix", "multiply", "-f", single)
	require.ErrorIs(t, err, matrix.ErrArity)
}

func TestMatrix_Info(t *testing.T) {
	path := writeDoc(t, "m.yaml", "matrix: [[1, 0, 0], [0, 0, 0]]\n")
	out, _, err := run(t, "matrix", "info", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "shape:    2x3\n")
	require.Contains(t, out, "square:   false\n")
	require.Contains(t, out, "sparse:   true\n")
	require.NotContains(t, out, "det:")
}

func TestMatrix_Errors(t *testing.T) {
	singular := writeDoc(t, "s.toml", "matrix = [[1.0, 2.0], [2.0, 4.0]]\n")
	_, _, err := run(t, "matrix", "inverse", "-f", singular)
	require.ErrorIs(t, err, matrix.ErrSingular)

	rect := writeDoc(t, "r.toml", "matrix = [[1.0, 2.0]]\n")
	_, _, err = run(t, "matrix", "det", "-f", rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = run(t, "matrix", "explode", "-f", rect)
	require.Error(t, err)

	_, _, err = run(t, "matrix", "det")
	require.Error(t, err, "missing --file")
}

func TestPrecisionFromConfig(t *testing.T) {
	cfg := writeDoc(t, "cfg.toml", "[output]\nprecision = 2\n")
	det := writeDoc(t, "det.toml", "matrix = [[1.0, 2.0], [3.0, 4.0]]\n")

	out, _, err := run(t, "--config", cfg, "matrix", "det", "-f", det)
	require.NoError(t, err)
	require.Equal(t, "-2.00\n", out)
}

func TestLogging(t *testing.T) {
	det := writeDoc(t, "det.toml", "matrix = [[1.0, 2.0], [3.0, 4.0]]\n")

	_, errOut, err := run(t, "--log-level", "debug", "--log-format", "json", "matrix", "det", "-f", det)
	require.NoError(t, err)
	first := strings.SplitN(strings.TrimSpace(errOut), "\n", 2)[0]
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &rec))
	require.Equal(t, "DEBUG", rec["level"])

	_, _, err = run(t, "--log-level", "loud", "version")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestStatsDescribe(t *testing.T) {
	path := writeDoc(t, "s.yaml", "values: [1, 2, 2, 3, 9]\n")
	out, _, err := run(t, "stats", "describe", "-f", path)
	require.NoError(t, err)
	for _, line := range []string{
		"n:        5\n",
		"mean:     3.4\n",
		"median:   2\n",
		"mode:     [2]\n",
		"range:    8\n",
		"quartiles: [1.5, 2, 6]\n",
		"outliers: []\n",
	} {
		require.Contains(t, out, line)
	}

	one := writeDoc(t, "one.toml", "values = [4.0]\n")
	out, _, err = run(t, "stats", "describe", "-f", one)
	require.NoError(t, err)
	require.Contains(t, out, "variance: n/a\n")
	require.Contains(t, out, "quartiles: n/a\n")

	empty := writeDoc(t, "e.toml", "matrix = [[1.0]]\n")
	_, _, err = run(t, "stats", "describe", "-f", empty)
	require.Error(t, err)
}

func TestStatsPlot(t *testing.T) {
	in := writeDoc(t, "s.toml", "values = [1.0, 2.0, 2.0, 3.0, 5.0, 8.0]\n")
	dir := t.TempDir()

	for _, kind := range []string{"hist", "box"} {
		out := filepath.Join(dir, kind+".svg")
		stdout, _, err := run(t, "stats", "plot", "-f", in, "--kind", kind, "-o", out)
		require.NoError(t, err, kind)
		require.Equal(t, out+"\n", stdout)
		info, err := os.Stat(out)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}

	_, _, err := run(t, "stats", "plot", "-f", in, "--kind", "pie", "-o", filepath.Join(dir, "x.png"))
	require.Error(t, err)
}

func TestCalc(t *testing.T) {
	out, _, err := run(t, "calc", "deriv", "--func", "sin", "--at", "0")
	require.NoError(t, err)
	require.InDelta(t, 1.0, parseNum(t, out), 1e-5)

	out, _, err = run(t, "calc", "integrate", "--func", "square", "--from", "0", "--to", "3", "--n", "10000")
	require.NoError(t, err)
	require.InDelta(t, 9.0, parseNum(t, out), 1e-6)

	out, _, err = run(t, "calc", "integrate", "--func", "cube", "--from", "2", "--to", "0", "--n", "10000")
	require.NoError(t, err)
	require.InDelta(t, -4.0, parseNum(t, out), 1e-6)

	out, _, err = run(t, "calc", "monotone", "--func", "exp", "--from", "-1", "--to", "1")
	require.NoError(t, err)
	require.Equal(t, "increasing\n", out)

	out, _, err = run(t, "calc", "monotone", "--func", "cos", "--from", "0", "--to", "3")
	require.NoError(t, err)
	require.Equal(t, "decreasing\n", out)

	out, _, err = run(t, "calc", "monotone", "--func", "sin", "--from", "0", "--to", "6")
	require.NoError(t, err)
	require.Equal(t, "neither\n", out)

	_, _, err = run(t, "calc", "deriv", "--func", "tan")
	require.ErrorContains(t, err, "unknown function")
}

func TestVector(t *testing.T) {
	out, _, err := run(t, "vector", "info", "--values", "3,4")
	require.NoError(t, err)
	require.Contains(t, out, "dim:         2\n")
	require.Contains(t, out, "magnitude:   5\n")
	require.Contains(t, out, "polar:       r=5 ")

	out, _, err = run(t, "vector", "info", "--values", "0,0,1")
	require.NoError(t, err)
	require.Contains(t, out, "spherical:   r=1 theta=0 phi=0\n")
	require.Contains(t, out, "cylindrical: rho=0 phi=0 z=1\n")

	out, _, err = run(t, "vector", "info", "--values", "0,0")
	require.NoError(t, err)
	require.Contains(t, out, "unit:        n/a\n")

	out, _, err = run(t, "vector", "dot", "--a", "1,2,3", "--b", "4,5,6")
	require.NoError(t, err)
	require.Equal(t, "32\n", out)

	out, _, err = run(t, "vector", "cross", "--a", "1,0,0", "--b", "0,1,0")
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 1]\n", out)

	_, _, err = run(t, "vector", "dot", "--a", "1,2", "--b", "1,2,3")
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, _, err = run(t, "vector", "info")
	require.ErrorIs(t, err, errNoValues)
}

func TestDiscrete(t *testing.T) {
	out, _, err := run(t, "discrete", "factorial", "5")
	require.NoError(t, err)
	require.Equal(t, "120\n", out)

	out, _, err = run(t, "discrete", "choose", "5", "2")
	require.NoError(t, err)
	require.Equal(t, "10\n", out)

	_, _, err = run(t, "discrete", "factorial", "21")
	require.ErrorIs(t, err, discrete.ErrOverflow)

	_, _, err = run(t, "discrete", "choose", "2", "five")
	require.Error(t, err)
}
