// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"path/filepath"
)

// Default directories used by the CLI, relative to the working directory.
const (
	DefaultInputDir  = "data/input"
	DefaultOutputDir = "data/output"
)

// ResultsFile is the CSV file name inside the output directory.
const ResultsFile = "benchmark_results.csv"

// InputPath is <dir>/matrices_<n>.json.
func InputPath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("matrices_%d.json", n))
}

// ResultPath is <dir>/result_<algorithm>_<n>.json.
func ResultPath(dir, algorithm string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("result_%s_%d.json", algorithm, n))
}

// ResultsCSV is <dir>/benchmark_results.csv.
func ResultsCSV(dir string) string {
	return filepath.Join(dir, ResultsFile)
}
