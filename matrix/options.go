// SPDX-License-Identifier: MIT

package matrix

// DefaultValidateNaNInf is the numeric policy of a matrix built without options.
// Preprocessing relaxes it for buffers that carry missing values until
// imputation.
const DefaultValidateNaNInf = true

// Option adjusts how a new matrix is built.
type Option func(*Options)

// Options is the resolved construction state.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf makes Set and Apply reject NaN and ±Inf with ErrNaNInf.
// This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf be stored. Clone keeps the setting.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
