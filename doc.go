// Package fml is a small feature-preprocessing toolkit for tabular data:
// it figures out what each column of a table means and turns the table into
// a numeric matrix ready for a learning algorithm.
//
// 🚀 What is in the box?
//
//	frame/      : typed, column-oriented tables and a CSV reader with kind inference
//	detect/     : per-column type detection (continuous, categorical, date,
//	              dirty float string, useless) with a summary Report
//	preprocess/ : Builder/Pipeline: cast + median imputation + standardization
//	              for continuous columns, one-hot encoding for categorical ones
//	matrix/     : Dense and CSR Sparse float64 matrices and column statistics
//	config/     : YAML configuration mapped onto the functional options
//	cmd/fmlprep : command-line front end
//
// ✨ Quick start
//
//	f, _ := frame.ReadCSV(file)
//	report, _ := detect.Detect(f)
//	p, _ := preprocess.NewBuilder().Fit(f, report)
//	X, _ := p.Transform(f)
//
// The output holds the standardized continuous columns first, followed by one
// 0/1 column per category. It is a *matrix.Sparse when a one-hot block exists
// and the overall density is at most preprocess.DefaultDenseThreshold, and a
// *matrix.Dense otherwise.
package fml
