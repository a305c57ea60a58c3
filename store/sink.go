// SPDX-License-Identifier: MIT

package store

import (
	"time"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/matrix"
)

// DirSink persists a run's artifacts under an input and an output directory.
// It implements bench.Sink.
type DirSink struct {
	InputDir  string
	OutputDir string
	// SaveProducts enables result_<alg>_<n>.json files; inputs are always saved.
	SaveProducts bool
	// Now stamps every file; defaults to time.Now.
	Now func() time.Time
}

var _ bench.Sink = (*DirSink)(nil)

// NewDirSink returns a sink writing inputs to inputDir and, when saveProducts
// is set, products to outputDir.
func NewDirSink(inputDir, outputDir string, saveProducts bool) *DirSink {
	return &DirSink{InputDir: inputDir, OutputDir: outputDir, SaveProducts: saveProducts}
}

// SaveInputs writes matrices_<n>.json.
func (s *DirSink) SaveInputs(n int, a, b *matrix.Dense) error {
	return SaveInputs(InputPath(s.InputDir, n), a, b, s.now())
}

// SaveResult writes result_<algorithm>_<n>.json when SaveProducts is set.
func (s *DirSink) SaveResult(n int, algorithm string, c *matrix.Dense) error {
	if !s.SaveProducts {
		return nil
	}

	return SaveResult(ResultPath(s.OutputDir, algorithm, n), algorithm, c, s.now())
}

func (s *DirSink) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}
