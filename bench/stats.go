// SPDX-License-Identifier: MIT

package bench

import (
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/loopmul/matrix"
)

const opMeasure = "Measure"

// Stats summarizes the wall-clock durations of repeated runs.
//
// StdDev uses the population definition (divide by Runs), so a single run has
// a standard deviation of exactly zero and a Mean equal to that run.
type Stats struct {
	Runs    int
	Samples []time.Duration // in run order; nil for stats read back from CSV
	Mean    time.Duration
	Median  time.Duration
	StdDev  time.Duration
	Min     time.Duration
	Max     time.Duration
}

// MeanSeconds returns Mean in seconds.
func (s Stats) MeanSeconds() float64 { return s.Mean.Seconds() }

// StdDevSeconds returns StdDev in seconds.
func (s Stats) StdDevSeconds() float64 { return s.StdDev.Seconds() }

// Sample is the raw outcome of one (algorithm, size) measurement.
type Sample struct {
	Algorithm string
	Size      int
	Durations []time.Duration
}

// Stats summarizes the sample's durations.
func (s Sample) Stats() Stats { return Summarize(s.Durations) }

// Summarize computes mean, median, population standard deviation, min and max.
// Mean and StdDev come from stat.PopMeanStdDev over the nanosecond counts; the
// median averages the two middle samples when n is even.
// An empty input yields the zero Stats.
//
// Complexity: O(n log n) for the median sort on a copy; the input is not reordered.
func Summarize(durations []time.Duration) Stats {
	n := len(durations)
	if n == 0 {
		return Stats{}
	}

	samples := slices.Clone(durations)
	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	ns := make([]float64, n)
	for i, d := range durations {
		ns[i] = float64(d)
	}
	mean, std := stat.PopMeanStdDev(ns, nil)
	if math.IsNaN(std) {
		std = 0
	}

	var median float64
	if n%2 == 1 {
		median = float64(sorted[n/2])
	} else {
		median = (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
	}

	return Stats{
		Runs:    n,
		Samples: samples,
		Mean:    time.Duration(math.Round(mean)),
		Median:  time.Duration(math.Round(median)),
		StdDev:  time.Duration(math.Round(std)),
		Min:     sorted[0],
		Max:     sorted[n-1],
	}
}

// Measure times `runs` consecutive calls of fn(a, b) and summarizes them.
// MAIN DESCRIPTION:
//   - No warm-up run is discarded; every call is timed with the monotonic
//     clock reading carried by time.Now.
//
// Inputs:
//   - fn: the multiply under test; a, b: operands (never mutated by the harness).
//   - runs: number of timed calls, >= 1.
//
// Errors:
//   - ErrInvalidRuns, ErrNilAlgorithm, or the first error returned by fn.
func Measure(fn matrix.MulFunc, a, b *matrix.Dense, runs int) (Stats, error) {
	sample, _, err := measure(fn, a, b, runs)
	if err != nil {
		return Stats{}, err
	}

	return sample.Stats(), nil
}

// measure is Measure that also hands back the raw sample and the product of
// the last run, which the runner verifies and persists.
func measure(fn matrix.MulFunc, a, b *matrix.Dense, runs int) (Sample, *matrix.Dense, error) {
	if runs < 1 {
		return Sample{}, nil, benchErrorf(opMeasure, ErrInvalidRuns)
	}
	if fn == nil {
		return Sample{}, nil, benchErrorf(opMeasure, ErrNilAlgorithm)
	}

	var (
		last  *matrix.Dense
		err   error
		start time.Time
	)
	durations := make([]time.Duration, 0, runs)
	for i := 0; i < runs; i++ {
		start = time.Now()
		last, err = fn(a, b)
		elapsed := time.Since(start)
		if err != nil {
			return Sample{}, nil, benchErrorf(opMeasure, err)
		}
		durations = append(durations, elapsed)
	}

	return Sample{Size: a.Rows(), Durations: durations}, last, nil
}
