// SPDX-License-Identifier: MIT
package store_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/matrix"
	"github.com/katalvlaran/loopmul/store"
)

var stamp = time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.UTC)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func requireParseError(t *testing.T, err error) *store.ParseError {
	t.Helper()
	require.ErrorIs(t, err, store.ErrParse)
	var pe *store.ParseError
	require.True(t, errors.As(err, &pe))
	require.NotEmpty(t, pe.Path)
	require.NotEmpty(t, pe.Reason)

	return pe
}

func TestInputs_RoundTripExact(t *testing.T) {
	for _, n := range []int{0, 1, 5, 33} {
		a, b, err := bench.Inputs(n, 42)
		require.NoError(t, err)
		path := store.InputPath(filepath.Join(t.TempDir(), "nested", "input"), n)

		require.NoError(t, store.SaveInputs(path, a, b, stamp))
		gotA, gotB, size, err := store.LoadInputs(path)
		require.NoError(t, err)
		require.Equal(t, n, size)
		require.Equal(t, a.Data(), gotA.Data(), "n=%d", n)
		require.Equal(t, b.Data(), gotB.Data(), "n=%d", n)
	}
}

func TestResult_RoundTripExact(t *testing.T) {
	a, b, err := bench.Inputs(7, 3)
	require.NoError(t, err)
	c, err := matrix.MulKIJ(a, b)
	require.NoError(t, err)

	path := store.ResultPath(t.TempDir(), "kij", 7)
	require.NoError(t, store.SaveResult(path, "kij", c, stamp))

	p, err := store.LoadResult(path)
	require.NoError(t, err)
	require.Equal(t, 7, p.Size)
	require.Equal(t, "kij", p.Algorithm)
	require.True(t, stamp.Equal(p.Timestamp))
	require.Equal(t, c.Data(), p.C.Data())
}

func TestLoadInputs_AcceptsZonelessTimestamp(t *testing.T) {
	path := writeFile(t, "m.json", `{"size": 1, "timestamp": "2024-01-02T03:04:05.678901",
		"matrix_A": [[2]], "matrix_B": [[3]]}`)
	a, b, size, err := store.LoadInputs(path)
	require.NoError(t, err)
	require.Equal(t, 1, size)
	require.Equal(t, []float64{2}, a.Data())
	require.Equal(t, []float64{3}, b.Data())
}

func TestLoadInputs_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"size": 2,`,
		"missing size":     `{"matrix_A": [[1]], "matrix_B": [[1]]}`,
		"missing matrix_B": `{"size": 1, "matrix_A": [[1]]}`,
		"wrong type":       `{"size": "two", "matrix_A": [[1]], "matrix_B": [[1]]}`,
		"string entry":     `{"size": 1, "matrix_A": [["x"]], "matrix_B": [[1]]}`,
		"ragged":           `{"size": 2, "matrix_A": [[1, 2], [3]], "matrix_B": [[1, 2], [3, 4]]}`,
		"size mismatch":    `{"size": 3, "matrix_A": [[1, 2], [3, 4]], "matrix_B": [[1, 2], [3, 4]]}`,
		"non-square":       `{"size": 2, "matrix_A": [[1, 2, 3], [4, 5, 6]], "matrix_B": [[1, 2], [3, 4]]}`,
		"bad timestamp":    `{"size": 1, "timestamp": "yesterday", "matrix_A": [[1]], "matrix_B": [[1]]}`,
		"negative size":    `{"size": -1, "matrix_A": [], "matrix_B": []}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "in.json", content)
			_, _, _, err := store.LoadInputs(path)
			pe := requireParseError(t, err)
			require.Equal(t, path, pe.Path)
		})
	}
}

func TestLoadResult_Malformed(t *testing.T) {
	cases := map[string]string{
		"missing algorithm": `{"size": 1, "result_matrix": [[1]]}`,
		"missing matrix":    `{"size": 1, "algorithm": "ijk"}`,
		"size mismatch":     `{"size": 2, "algorithm": "ijk", "result_matrix": [[1]]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := store.LoadResult(writeFile(t, "r.json", content))
			requireParseError(t, err)
		})
	}
}

func TestLoad_MissingFileIsIO(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "matrices_4.json")

	_, _, _, err := store.LoadInputs(missing)
	require.ErrorIs(t, err, store.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)
	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))

	_, err = store.LoadResult(missing)
	require.ErrorIs(t, err, store.ErrIO)
}

func TestSave_UnwritableDirIsIO(t *testing.T) {
	// A regular file where a directory is expected.
	blocker := writeFile(t, "blocker", "x")
	m, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	err = store.SaveInputs(filepath.Join(blocker, "matrices_2.json"), m, m, stamp)
	require.ErrorIs(t, err, store.ErrIO)

	err = store.SaveResult(filepath.Join(blocker, "result_ijk_2.json"), "ijk", m, stamp)
	require.ErrorIs(t, err, store.ErrIO)
}

func TestSave_RejectsBadShapes(t *testing.T) {
	dir := t.TempDir()
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, store.SaveInputs(store.InputPath(dir, 2), rect, sq, stamp), matrix.ErrNonSquare)
	require.ErrorIs(t, store.SaveResult(store.ResultPath(dir, "ijk", 2), "ijk", rect, stamp), matrix.ErrNonSquare)
	require.ErrorIs(t, store.SaveInputs(store.InputPath(dir, 2), nil, sq, stamp), matrix.ErrNilMatrix)
}

func TestPaths(t *testing.T) {
	require.Equal(t, filepath.Join("in", "matrices_128.json"), store.InputPath("in", 128))
	require.Equal(t, filepath.Join("out", "result_blocked_64.json"), store.ResultPath("out", "blocked", 64))
	require.Equal(t, filepath.Join("out", "benchmark_results.csv"), store.ResultsCSV("out"))
}
