// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/loopmul/matrix"
)

const (
	opSaveInputs = "SaveInputs"
	opLoadInputs = "LoadInputs"
	opSaveResult = "SaveResult"
	opLoadResult = "LoadResult"
)

// Accepted timestamp layouts on load. Files are written with RFC 3339 (nano);
// zone-less ISO 8601 stamps are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// On-disk shapes. Pointer fields distinguish a missing key from a zero value.
type inputFile struct {
	Size      *int         `json:"size"`
	Timestamp *string      `json:"timestamp"`
	MatrixA   *[][]float64 `json:"matrix_A"`
	MatrixB   *[][]float64 `json:"matrix_B"`
}

type resultFile struct {
	Size      *int         `json:"size"`
	Algorithm *string      `json:"algorithm"`
	Timestamp *string      `json:"timestamp"`
	Result    *[][]float64 `json:"result_matrix"`
}

// Product is the content of a result file.
type Product struct {
	Size      int
	Algorithm string
	Timestamp time.Time
	C         *matrix.Dense
}

// SaveInputs writes the operand pair to path as
// {size, timestamp, matrix_A, matrix_B}, creating parent directories.
// Both operands must be square of equal size.
func SaveInputs(path string, a, b *matrix.Dense, ts time.Time) error {
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return storeErrorf(opSaveInputs, err)
	}
	n := a.Rows()
	stamp := ts.Format(time.RFC3339Nano)
	rowsA, rowsB := a.ToRows(), b.ToRows()

	return writeJSON(opSaveInputs, path, inputFile{
		Size:      &n,
		Timestamp: &stamp,
		MatrixA:   &rowsA,
		MatrixB:   &rowsB,
	})
}

// LoadInputs reads an input file written by SaveInputs.
//
// Errors:
//   - ErrIO when the file cannot be read.
//   - *ParseError for invalid JSON, a missing key, a value of the wrong type,
//     a ragged row, or a matrix whose dimensions differ from size.
func LoadInputs(path string) (a, b *matrix.Dense, size int, err error) {
	var f inputFile
	if err = readJSON(opLoadInputs, path, &f); err != nil {
		return nil, nil, 0, err
	}
	switch {
	case f.Size == nil:
		return nil, nil, 0, parseErrorf(path, "missing key %q", "size")
	case f.MatrixA == nil:
		return nil, nil, 0, parseErrorf(path, "missing key %q", "matrix_A")
	case f.MatrixB == nil:
		return nil, nil, 0, parseErrorf(path, "missing key %q", "matrix_B")
	}
	if f.Timestamp != nil {
		if _, err = parseTimestamp(path, *f.Timestamp); err != nil {
			return nil, nil, 0, err
		}
	}
	size = *f.Size
	if a, err = squareFromRows(path, "matrix_A", *f.MatrixA, size); err != nil {
		return nil, nil, 0, err
	}
	if b, err = squareFromRows(path, "matrix_B", *f.MatrixB, size); err != nil {
		return nil, nil, 0, err
	}

	return a, b, size, nil
}

// SaveResult writes c to path as {size, algorithm, timestamp, result_matrix}.
func SaveResult(path, algorithm string, c *matrix.Dense, ts time.Time) error {
	if err := matrix.ValidateSquare(c); err != nil {
		return storeErrorf(opSaveResult, err)
	}
	n := c.Rows()
	stamp := ts.Format(time.RFC3339Nano)
	rows := c.ToRows()

	return writeJSON(opSaveResult, path, resultFile{
		Size:      &n,
		Algorithm: &algorithm,
		Timestamp: &stamp,
		Result:    &rows,
	})
}

// LoadResult reads a result file written by SaveResult. Errors follow LoadInputs.
func LoadResult(path string) (Product, error) {
	var f resultFile
	if err := readJSON(opLoadResult, path, &f); err != nil {
		return Product{}, err
	}
	switch {
	case f.Size == nil:
		return Product{}, parseErrorf(path, "missing key %q", "size")
	case f.Algorithm == nil:
		return Product{}, parseErrorf(path, "missing key %q", "algorithm")
	case f.Result == nil:
		return Product{}, parseErrorf(path, "missing key %q", "result_matrix")
	}

	p := Product{Size: *f.Size, Algorithm: *f.Algorithm}
	var err error
	if f.Timestamp != nil {
		if p.Timestamp, err = parseTimestamp(path, *f.Timestamp); err != nil {
			return Product{}, err
		}
	}
	if p.C, err = squareFromRows(path, "result_matrix", *f.Result, p.Size); err != nil {
		return Product{}, err
	}

	return p, nil
}

func writeJSON(op, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return storeErrorf(op, err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ioErrorf(op, err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return ioErrorf(op, err)
	}

	return nil
}

func readJSON(op, path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ioErrorf(op, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return parseErrorf(path, "key %q: want %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
		}

		return parseErrorf(path, "invalid JSON: %v", err)
	}

	return nil
}

// squareFromRows builds a size×size matrix, rejecting ragged or mis-sized rows.
func squareFromRows(path, key string, rows [][]float64, size int) (*matrix.Dense, error) {
	if size < 0 {
		return nil, parseErrorf(path, "size %d is negative", size)
	}
	m, err := matrix.FromRows(rows)
	if errors.Is(err, matrix.ErrRaggedRows) {
		return nil, parseErrorf(path, "%s: ragged rows", key)
	}
	if err != nil {
		return nil, parseErrorf(path, "%s: %v", key, err)
	}
	if m.Rows() != size || m.Cols() != size {
		return nil, parseErrorf(path, "%s is %dx%d, size is %d", key, m.Rows(), m.Cols(), size)
	}

	return m, nil
}

func parseTimestamp(path, s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, parseErrorf(path, "timestamp %q is not RFC 3339", s)
}
