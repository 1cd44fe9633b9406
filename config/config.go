// SPDX-License-Identifier: MIT

// Package config loads preprocessing settings from YAML and converts them to
// the functional options of frame, detect and preprocess.
//
// Example (YAML):
//
//	verbosity: 1
//	detect:
//	  min_categorical_distinct: 42
//	  categorical_fraction: 0.1
//	  dirty_float_threshold: 0.9
//	preprocess:
//	  dense_threshold: 0.9
//	  ignore_unknown: false
//	csv:
//	  date_columns: [signup]
//	  date_layout: "2006-01-02"
//	  null_values: ["", "NA"]
//	  comma: ","
//
// Omitted keys keep the package defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fml/detect"
	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/preprocess"
)

// ErrInvalidConfig is returned for values the option constructors would reject.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the file form of all tunables.
type Config struct {
	Verbosity  int        `yaml:"verbosity"`
	Detect     Detect     `yaml:"detect"`
	Preprocess Preprocess `yaml:"preprocess"`
	CSV        CSV        `yaml:"csv"`
}

// Detect holds the type detection thresholds.
type Detect struct {
	MinCategoricalDistinct int     `yaml:"min_categorical_distinct"`
	CategoricalFraction    float64 `yaml:"categorical_fraction"`
	DirtyFloatThreshold    float64 `yaml:"dirty_float_threshold"`
}

// Preprocess holds the pipeline settings.
type Preprocess struct {
	DenseThreshold float64 `yaml:"dense_threshold"`
	IgnoreUnknown  bool    `yaml:"ignore_unknown"`
}

// CSV holds the reader settings. A nil NullValues keeps frame.DefaultNullValues.
type CSV struct {
	DateColumns []string `yaml:"date_columns"`
	DateLayout  string   `yaml:"date_layout"`
	NullValues  []string `yaml:"null_values"`
	Comma       string   `yaml:"comma"`
}

// Default returns the configuration matching the package defaults.
func Default() Config {
	return Config{
		Verbosity: detect.DefaultVerbosity,
		Detect: Detect{
			MinCategoricalDistinct: detect.DefaultMinCategoricalDistinct,
			CategoricalFraction:    detect.DefaultCategoricalFraction,
			DirtyFloatThreshold:    detect.DefaultDirtyFloatThreshold,
		},
		Preprocess: Preprocess{DenseThreshold: preprocess.DefaultDenseThreshold},
		CSV:        CSV{DateLayout: frame.DefaultDateLayout, Comma: ","},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Config{}, fmt.Errorf("Load: empty path: %w", ErrInvalidConfig)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: read %s: %w", path, err)
	}

	return Parse(b)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected; empty input yields Default.
func Parse(b []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}

	return c, nil
}

// Validate checks every field against the option constructors' contracts.
func (c Config) Validate() error {
	switch {
	case c.Verbosity < 0:
		return fmt.Errorf("verbosity %d < 0: %w", c.Verbosity, ErrInvalidConfig)
	case c.Detect.MinCategoricalDistinct < 1:
		return fmt.Errorf("detect.min_categorical_distinct %d < 1: %w", c.Detect.MinCategoricalDistinct, ErrInvalidConfig)
	case !inRange(c.Detect.CategoricalFraction, 0, 1, true):
		return fmt.Errorf("detect.categorical_fraction %v not in [0, 1]: %w", c.Detect.CategoricalFraction, ErrInvalidConfig)
	case !inRange(c.Detect.DirtyFloatThreshold, 0, 1, false):
		return fmt.Errorf("detect.dirty_float_threshold %v not in [0, 1): %w", c.Detect.DirtyFloatThreshold, ErrInvalidConfig)
	case !inRange(c.Preprocess.DenseThreshold, 0, 1, true):
		return fmt.Errorf("preprocess.dense_threshold %v not in [0, 1]: %w", c.Preprocess.DenseThreshold, ErrInvalidConfig)
	case c.CSV.DateLayout == "":
		return fmt.Errorf("csv.date_layout is empty: %w", ErrInvalidConfig)
	case utf8.RuneCountInString(c.CSV.Comma) != 1:
		return fmt.Errorf("csv.comma %q must be a single character: %w", c.CSV.Comma, ErrInvalidConfig)
	}

	return nil
}

func inRange(v, lo, hi float64, closed bool) bool {
	if math.IsNaN(v) || v < lo || v > hi {
		return false
	}

	return closed || v < hi
}

// DetectOptions converts the detection settings. c must be valid.
func (c Config) DetectOptions() []detect.Option {
	return []detect.Option{
		detect.WithMinCategoricalDistinct(c.Detect.MinCategoricalDistinct),
		detect.WithCategoricalFraction(c.Detect.CategoricalFraction),
		detect.WithDirtyFloatThreshold(c.Detect.DirtyFloatThreshold),
		detect.WithVerbosity(c.Verbosity),
	}
}

// BuilderOptions converts the pipeline settings, detection included.
// c must be valid.
func (c Config) BuilderOptions() []preprocess.Option {
	opts := []preprocess.Option{
		preprocess.WithDenseThreshold(c.Preprocess.DenseThreshold),
		preprocess.WithVerbosity(c.Verbosity),
		preprocess.WithDetectOptions(c.DetectOptions()...),
	}
	if c.Preprocess.IgnoreUnknown {
		opts = append(opts, preprocess.WithIgnoreUnknown())
	}

	return opts
}

// CSVOptions converts the reader settings. c must be valid.
func (c Config) CSVOptions() []frame.CSVOption {
	comma, _ := utf8.DecodeRuneInString(c.CSV.Comma)
	opts := []frame.CSVOption{
		frame.WithDateLayout(c.CSV.DateLayout),
		frame.WithComma(comma),
	}
	if len(c.CSV.DateColumns) > 0 {
		opts = append(opts, frame.WithDateColumns(c.CSV.DateColumns...))
	}
	if c.CSV.NullValues != nil {
		opts = append(opts, frame.WithNullValues(c.CSV.NullValues...))
	}

	return opts
}
