// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sketchrule/logging"
	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/pattern"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Tolerance mirrors param.Tolerance in YAML.
type Tolerance struct {
	Absolute float64 `yaml:"absolute"`
	Relative float64 `yaml:"relative"`
}

// Log selects the slog level and handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full configuration.
type Config struct {
	Tolerance      Tolerance `yaml:"tolerance"`
	Patterns       []string  `yaml:"patterns"`
	Counts         []int     `yaml:"counts"`
	OperatorDepth  int       `yaml:"operator_depth"`
	SizePatternFit bool      `yaml:"size_pattern_fit"`
	Workers        int       `yaml:"workers"`
	Log            Log       `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	names := make([]string, len(param.AllKinds))
	for i, k := range param.AllKinds {
		names[i] = k.String()
	}

	return Config{
		Tolerance:      Tolerance{Absolute: param.DefaultTolerance.Absolute, Relative: param.DefaultTolerance.Relative},
		Patterns:       names,
		Counts:         []int{4},
		OperatorDepth:  param.DefaultMaxDepth,
		SizePatternFit: true,
		Workers:        runtime.GOMAXPROCS(0),
		Log:            Log{Level: "info", Format: logging.FormatText},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Tolerance.Absolute < 0 || c.Tolerance.Relative < 0 {
		bad("tolerance must be non-negative (%g, %g)", c.Tolerance.Absolute, c.Tolerance.Relative)
	}
	if len(c.Patterns) == 0 {
		bad("patterns must name at least one kind")
	}
	for _, name := range c.Patterns {
		if _, ok := param.ParseKind(name); !ok {
			bad("unknown pattern %q", name)
		}
	}
	for i, n := range c.Counts {
		if n < 0 {
			bad("counts[%d] is negative (%d)", i, n)
		}
	}
	if c.OperatorDepth <= 0 {
		bad("operator_depth must be positive (%d)", c.OperatorDepth)
	}
	if c.Workers <= 0 {
		bad("workers must be positive (%d)", c.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		bad("log level %q", c.Log.Level)
	}
	if !logging.ValidFormat(c.Log.Format) {
		bad("log format %q", c.Log.Format)
	}

	return errors.Join(errs...)
}

// ParamTolerance converts the tolerance section.
func (c Config) ParamTolerance() param.Tolerance {
	return param.Tolerance{Absolute: c.Tolerance.Absolute, Relative: c.Tolerance.Relative}
}

// Kinds resolves Patterns, skipping unknown names (Validate reports them).
func (c Config) Kinds() []param.Kind {
	kinds := make([]param.Kind, 0, len(c.Patterns))
	for _, name := range c.Patterns {
		if k, ok := param.ParseKind(name); ok {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// SearchOptions turns the search settings into pattern options.
func (c Config) SearchOptions(log *slog.Logger) []pattern.Option {
	return []pattern.Option{
		pattern.WithMaxDepth(c.OperatorDepth),
		pattern.WithSizePatternFit(c.SizePatternFit),
		pattern.WithLogger(log),
	}
}

// LogLevel parses Log.Level, falling back to info.
func (c Config) LogLevel() slog.Level {
	l, _ := logging.ParseLevel(c.Log.Level)
	return l
}
