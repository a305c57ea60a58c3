// SPDX-License-Identifier: MIT
package bench_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/matrix"
)

func mustInputs(t *testing.T, n int) (*matrix.Dense, *matrix.Dense) {
	t.Helper()
	a, b, err := bench.Inputs(n, bench.DefaultSeed)
	require.NoError(t, err)

	return a, b
}

func TestSummarize_KnownValues(t *testing.T) {
	in := []time.Duration{4 * time.Second, time.Second, 3 * time.Second, 2 * time.Second}
	s := bench.Summarize(in)

	require.Equal(t, 4, s.Runs)
	require.Equal(t, 2500*time.Millisecond, s.Mean)
	require.Equal(t, 2500*time.Millisecond, s.Median)
	require.Equal(t, time.Second, s.Min)
	require.Equal(t, 4*time.Second, s.Max)
	// population variance: (2.25+0.25+0.25+2.25)/4 = 1.25
	require.InDelta(t, math.Sqrt(1.25), s.StdDevSeconds(), 1e-9)
	require.InDelta(t, 2.5, s.MeanSeconds(), 1e-12)

	// samples keep run order and the input is untouched
	require.Equal(t, in, s.Samples)
	require.Equal(t, 4*time.Second, in[0])
}

func TestSummarize_OddMedian(t *testing.T) {
	s := bench.Summarize([]time.Duration{9, 1, 5})
	require.Equal(t, time.Duration(5), s.Median)
	require.Equal(t, time.Duration(5), s.Mean)
}

func TestSummarize_SingleRun(t *testing.T) {
	s := bench.Summarize([]time.Duration{1234567})
	require.Equal(t, 1, s.Runs)
	require.Equal(t, time.Duration(1234567), s.Mean)
	require.Equal(t, time.Duration(1234567), s.Median)
	require.Zero(t, s.StdDev)
}

func TestSummarize_PopulationStdDev(t *testing.T) {
	// divides by n: sum of squared deviations is 32, 32/8 = 4; the n-1 form would give ~2.138s
	in := []time.Duration{2, 4, 4, 4, 5, 5, 7, 9}
	for i := range in {
		in[i] *= time.Second
	}
	s := bench.Summarize(in)

	require.Equal(t, 5*time.Second, s.Mean)
	require.Equal(t, 2*time.Second, s.StdDev)
	require.Equal(t, 4500*time.Millisecond, s.Median)
}

func TestSummarize_IdenticalRuns(t *testing.T) {
	s := bench.Summarize([]time.Duration{7 * time.Millisecond, 7 * time.Millisecond, 7 * time.Millisecond})
	require.Equal(t, 7*time.Millisecond, s.Mean)
	require.Zero(t, s.StdDev)
}

func TestSummarize_Empty(t *testing.T) {
	require.Equal(t, bench.Stats{}, bench.Summarize(nil))
}

func TestSample_Stats(t *testing.T) {
	s := bench.Sample{Algorithm: "ijk", Size: 3, Durations: []time.Duration{2, 4}}
	require.Equal(t, time.Duration(3), s.Stats().Mean)
}

func TestMeasure_SingleRun(t *testing.T) {
	a, b := mustInputs(t, 8)
	s, err := bench.Measure(matrix.MulIJK, a, b, 1)
	require.NoError(t, err)
	require.Equal(t, 1, s.Runs)
	require.Len(t, s.Samples, 1)
	require.Equal(t, s.Samples[0], s.Mean)
	require.Zero(t, s.StdDev)
}

func TestMeasure_CallsRunsTimes(t *testing.T) {
	a, b := mustInputs(t, 4)
	calls := 0
	counting := func(x, y *matrix.Dense) (*matrix.Dense, error) {
		calls++
		return matrix.MulIKJ(x, y)
	}

	s, err := bench.Measure(counting, a, b, 7)
	require.NoError(t, err)
	require.Equal(t, 7, calls)
	require.Equal(t, 7, s.Runs)
	require.LessOrEqual(t, s.Min, s.Median)
	require.LessOrEqual(t, s.Median, s.Max)
	require.GreaterOrEqual(t, s.StdDev, time.Duration(0))
}

func TestMeasure_DoesNotMutateInputs(t *testing.T) {
	a, b := mustInputs(t, 6)
	aBefore, bBefore := a.Data(), b.Data()
	_, err := bench.Measure(matrix.Blocked(matrix.WithBlockSize(4)), a, b, 3)
	require.NoError(t, err)
	require.Equal(t, aBefore, a.Data())
	require.Equal(t, bBefore, b.Data())
}

func TestMeasure_Errors(t *testing.T) {
	a, b := mustInputs(t, 2)

	_, err := bench.Measure(matrix.MulIJK, a, b, 0)
	require.ErrorIs(t, err, bench.ErrInvalidRuns)

	_, err = bench.Measure(nil, a, b, 1)
	require.ErrorIs(t, err, bench.ErrNilAlgorithm)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = bench.Measure(matrix.MulIJK, a, rect, 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	boom := errors.New("boom")
	_, err = bench.Measure(func(_, _ *matrix.Dense) (*matrix.Dense, error) { return nil, boom }, a, b, 3)
	require.ErrorIs(t, err, boom)
}
