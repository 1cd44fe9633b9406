// SPDX-License-Identifier: MIT

// Command fmlprep detects column types of a CSV file and optionally writes
// the preprocessed feature matrix.
//
//	fmlprep [-config file.yaml] [-v N] [-out features.csv] data.csv
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/fml/config"
	"github.com/katalvlaran/fml/detect"
	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
	"github.com/katalvlaran/fml/preprocess"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fmlprep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML configuration")
	verbosity := fs.Int("v", -1, "diagnostics level (overrides config; 0 silent, 1 summary, 2 columns)")
	outPath := fs.String("out", "", "write the transformed features as CSV to this file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options] <data.csv>\n\n", fs.Name())
		fmt.Fprintln(stderr, "Detects feature types and optionally writes the preprocessed matrix.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: exactly one CSV file argument is required")
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "error loading config: %v\n", err)
			return 1
		}
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := prep(cfg, fs.Arg(0), *outPath, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// prep reads dataPath, prints the type report to stdout and, when outPath is
// set, fits the pipeline and writes its output there. Diagnostics go to stderr.
func prep(cfg config.Config, dataPath, outPath string, stdout, stderr io.Writer) (err error) {
	in, err := os.Open(dataPath)
	if err != nil {
		return err
	}
	defer in.Close()

	f, err := frame.ReadCSV(in, cfg.CSVOptions()...)
	if err != nil {
		return fmt.Errorf("read %s: %w", dataPath, err)
	}

	log := detect.NewConsoleLogger(stderr)
	report, err := detect.Detect(f, append(cfg.DetectOptions(), detect.WithLogger(log))...)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	if _, err = io.WriteString(stdout, report.String()); err != nil {
		return err
	}
	if outPath == "" {
		return nil
	}

	b := preprocess.NewBuilder(append(cfg.BuilderOptions(), preprocess.WithLogger(log))...)
	p, X, err := b.FitTransform(f, report)
	if err != nil {
		return fmt.Errorf("preprocess: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return writeMatrix(out, p.FeatureNames(), X)
}

// writeMatrix writes a header of feature names followed by one record per row.
func writeMatrix(w io.Writer, header []string, X matrix.Matrix) error {
	if len(header) != X.Cols() {
		return errors.New("writeMatrix: header width differs from matrix columns")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, X.Cols())
	for i := 0; i < X.Rows(); i++ {
		for j := range rec {
			v, err := X.At(i, j)
			if err != nil {
				return err
			}
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
