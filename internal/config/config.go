// SPDX-License-Identifier: MIT

// Package config loads the blueberry CLI configuration from TOML or YAML,
// applies BLUEBERRY_* environment overrides, and validates the result.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides (BLUEBERRY_LOG_LEVEL, ...).
const EnvPrefix = "BLUEBERRY_"

// Format is the on-disk encoding of a configuration or input document.
type Format int

const (
	// FormatTOML is the default encoding.
	FormatTOML Format = iota
	// FormatYAML is chosen for .yaml and .yml files.
	FormatYAML
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension; unknown extensions are TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode unmarshals content in the given format into v.
func Decode(content []byte, format Format, v any) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), v); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, v); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	return nil
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Log configures the CLI logger.
type Log struct {
	Level  string `toml:"level" yaml:"level"`   // debug|info|warn|error
	Format string `toml:"format" yaml:"format"` // text|json
}

// Output configures how numbers are printed.
type Output struct {
	Precision int `toml:"precision" yaml:"precision"` // digits after the decimal point, -1 = shortest
}

// Numeric carries tolerances forwarded to the matrix kernels.
type Numeric struct {
	Epsilon           float64 `toml:"epsilon" yaml:"epsilon"`                       // RowReduce pivot tolerance, relative to the largest entry
	SingularTolerance float64 `toml:"singular_tolerance" yaml:"singular_tolerance"` // Inverse |det| threshold
}

// Plot configures chart rendering.
type Plot struct {
	Width  float64 `toml:"width" yaml:"width"`   // points
	Height float64 `toml:"height" yaml:"height"` // points
	Bins   int     `toml:"bins" yaml:"bins"`
}

// Config is the complete CLI configuration.
type Config struct {
	Log     Log     `toml:"log" yaml:"log"`
	Output  Output  `toml:"output" yaml:"output"`
	Numeric Numeric `toml:"numeric" yaml:"numeric"`
	Plot    Plot    `toml:"plot" yaml:"plot"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     Log{Level: "info", Format: "text"},
		Output:  Output{Precision: -1},
		Numeric: Numeric{Epsilon: 1e-12, SingularTolerance: 0},
		Plot:    Plot{Width: 480, Height: 360, Bins: 10},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path yields the defaults (plus environment overrides).
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
		format := DetectFormat(path)
		if err = Decode(content, format, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load %s (%s): %w", path, format, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides fields from BLUEBERRY_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvPrefix + "PRECISION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPRECISION=%q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.Output.Precision = n
	}
	if v, ok := lookup(EnvPrefix + "EPSILON"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sEPSILON=%q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.Numeric.Epsilon = f
	}

	return nil
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}
	if c.Output.Precision < -1 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision %d not in [-1, 17]: %w", c.Output.Precision, ErrInvalid)
	}
	if !nonNegative(c.Numeric.Epsilon) {
		return fmt.Errorf("numeric.epsilon %g: %w", c.Numeric.Epsilon, ErrInvalid)
	}
	if !nonNegative(c.Numeric.SingularTolerance) {
		return fmt.Errorf("numeric.singular_tolerance %g: %w", c.Numeric.SingularTolerance, ErrInvalid)
	}
	if !(c.Plot.Width > 0) || !(c.Plot.Height > 0) || math.IsInf(c.Plot.Width, 0) || math.IsInf(c.Plot.Height, 0) {
		return fmt.Errorf("plot size %gx%g: %w", c.Plot.Width, c.Plot.Height, ErrInvalid)
	}
	if c.Plot.Bins < 1 {
		return fmt.Errorf("plot.bins %d: %w", c.Plot.Bins, ErrInvalid)
	}

	return nil
}

func nonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
