// SPDX-License-Identifier: MIT

// Package detect: functional configuration of the detection thresholds and
// diagnostics. This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options,
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper (internal).
package detect

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinCategoricalDistinct is the floor of the cardinality threshold.
	// Integer and string columns with fewer distinct values than
	// max(DefaultMinCategoricalDistinct, n*DefaultCategoricalFraction) are
	// categorical. 42 keeps small tables from turning every short integer
	// code list into a continuous-only feature.
	DefaultMinCategoricalDistinct = 42

	// DefaultCategoricalFraction scales the cardinality threshold with the
	// row count, so large tables tolerate proportionally more categories.
	DefaultCategoricalFraction = 0.1

	// DefaultDirtyFloatThreshold is the share of numeric-looking values above
	// which a string column that is not entirely numeric is reported as a
	// dirty float string (needs manual cleaning).
	DefaultDirtyFloatThreshold = 0.9

	// DefaultVerbosity keeps detection silent.
	DefaultVerbosity = 0
)

// Verbosity levels.
const (
	// VerbositySummary logs counts per storage kind and semantic type.
	VerbositySummary = 1
	// VerbosityColumns additionally lists dirty-float-string and dropped columns.
	VerbosityColumns = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMinDistinctInvalid = "detect: WithMinCategoricalDistinct: n must be >= 1"
	panicFractionInvalid    = "detect: WithCategoricalFraction: fraction must be finite and in [0, 1]"
	panicDirtyInvalid       = "detect: WithDirtyFloatThreshold: threshold must be finite and in [0, 1)"
	panicVerbosityInvalid   = "detect: WithVerbosity: level must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	minDistinct         int
	categoricalFraction float64
	dirtyThreshold      float64
	verbosity           int
	logger              *zap.SugaredLogger
}

// WithMinCategoricalDistinct sets the floor of the cardinality threshold.
func WithMinCategoricalDistinct(n int) Option {
	if n < 1 {
		panic(panicMinDistinctInvalid)
	}

	return func(o *Options) { o.minDistinct = n }
}

// WithCategoricalFraction sets the row-count share of the cardinality threshold.
func WithCategoricalFraction(fraction float64) Option {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		panic(panicFractionInvalid)
	}

	return func(o *Options) { o.categoricalFraction = fraction }
}

// WithDirtyFloatThreshold sets the strict lower bound on the numeric-looking
// share for the dirty float string flag.
func WithDirtyFloatThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || threshold < 0 || threshold >= 1 {
		panic(panicDirtyInvalid)
	}

	return func(o *Options) { o.dirtyThreshold = threshold }
}

// WithVerbosity sets the diagnostics level (0 silent, 1 summary, 2 columns).
func WithVerbosity(level int) Option {
	if level < 0 {
		panic(panicVerbosityInvalid)
	}

	return func(o *Options) { o.verbosity = level }
}

// WithLogger routes diagnostics to logger. Without it, a verbose detection
// writes to a console logger on standard output.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Options) { o.logger = logger }
}

func defaultOptions() Options {
	return Options{
		minDistinct:         DefaultMinCategoricalDistinct,
		categoricalFraction: DefaultCategoricalFraction,
		dirtyThreshold:      DefaultDirtyFloatThreshold,
		verbosity:           DefaultVerbosity,
	}
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// cardinalityThreshold returns max(minDistinct, rows*categoricalFraction).
func (o Options) cardinalityThreshold(rows int) float64 {
	return math.Max(float64(o.minDistinct), float64(rows)*o.categoricalFraction)
}
