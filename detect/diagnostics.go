// SPDX-License-Identifier: MIT

package detect

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsoleLogger returns a message-only console logger writing to w.
// Diagnostics are meant for people reading a terminal, so timestamps,
// callers and stack traces are left out; only the level prefix remains.
func NewConsoleLogger(w io.Writer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)

	return zap.New(core).Sugar()
}

// diagnosticsLogger returns the configured logger or a stdout console logger.
func (o Options) diagnosticsLogger() *zap.SugaredLogger {
	if o.logger != nil {
		return o.logger
	}

	return NewConsoleLogger(os.Stdout)
}

// logDiagnostics writes the verbosity-gated detection summary.
// It only reads the report.
func logDiagnostics(log *zap.SugaredLogger, r *Report, verbosity int) {
	s := r.Summary()
	if verbosity >= VerbositySummary {
		log.Info("Detected feature types:")
		log.Infof("%d float, %d int, %d object, %d date, %d other",
			s.Floats, s.Integers, s.Strings, s.Dates, s.Others)
		log.Info("Interpreted as:")
		log.Infof("%d continuous, %d categorical, %d date, %d dirty float, %d dropped",
			s.Continuous, s.Categorical, s.Date, s.DirtyFloatString, s.Useless)
	}
	if verbosity >= VerbosityColumns {
		if dirty := r.DirtyFloatStrings(); len(dirty) > 0 {
			log.Warnf("Found dirty floats encoded as strings: %v", dirty)
		}
		if dropped := r.Dropped(); len(dropped) > 0 {
			log.Warnf("dropped columns (too many unique values): %v", dropped)
		}
	}
	_ = log.Sync()
}
