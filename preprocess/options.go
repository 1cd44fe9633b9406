// SPDX-License-Identifier: MIT

package preprocess

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/fml/detect"
)

// DefaultDenseThreshold is the output density above which a pipeline with a
// one-hot block returns a Dense matrix; at or below it the output is Sparse.
// Pipelines without a categorical block always return Dense.
const DefaultDenseThreshold = 0.9

const panicDenseThresholdInvalid = "preprocess: WithDenseThreshold: threshold must be finite and in [0, 1]"

// Option configures a Builder.
type Option func(*Options)

// Options stores the effective Builder configuration.
type Options struct {
	denseThreshold float64
	ignoreUnknown  bool
	verbosity      int
	logger         *zap.SugaredLogger
	detectOpts     []detect.Option
}

// WithDenseThreshold sets the density above which output is Dense.
// 0 means "Dense whenever anything is non-zero"; 1 means "always Sparse when
// a one-hot block exists".
func WithDenseThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		panic(panicDenseThresholdInvalid)
	}

	return func(o *Options) { o.denseThreshold = threshold }
}

// WithIgnoreUnknown encodes categories unseen at fit time as all-zero rows
// instead of failing with ErrUnknownCategory.
func WithIgnoreUnknown() Option {
	return func(o *Options) { o.ignoreUnknown = true }
}

// WithVerbosity sets the diagnostics level for detection and fitting.
func WithVerbosity(level int) Option {
	// Validate eagerly through the detect constructor (same contract).
	d := detect.WithVerbosity(level)

	return func(o *Options) {
		o.verbosity = level
		o.detectOpts = append(o.detectOpts, d)
	}
}

// WithLogger routes detection and fit diagnostics to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Options) {
		o.logger = logger
		o.detectOpts = append(o.detectOpts, detect.WithLogger(logger))
	}
}

// WithDetectOptions forwards threshold options to detection when Fit runs it.
func WithDetectOptions(opts ...detect.Option) Option {
	return func(o *Options) { o.detectOpts = append(o.detectOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{denseThreshold: DefaultDenseThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
