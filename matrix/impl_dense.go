// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Convert at the boundaries: [][]float64 rows (JSON) and flat slices (numeric backends).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); FromRows/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxNew      = "NewDense" // ctor tag
	ctxNewFrom  = "NewDenseFrom"
	ctxFromRows = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Returns an error formatted as "Dense.<method>(row,col): <err>" that still
// matches the sentinel via errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal and yields an empty matrix.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidArgument.
//   - Stage 2: allocate a zero-filled buffer of len rows*cols.
//
// Behavior highlights:
//   - 0×0 (and 0×N) shapes are legal: a multiply of two empty operands
//     returns an empty result rather than an error.
//
// Errors:
//   - ErrInvalidArgument (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidArgument)
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds an r×c Dense over a copy of data (row-major, len == r*c).
// The caller keeps ownership of data; later writes to it do not leak in.
//
// Errors:
//   - ErrInvalidArgument (negative dimension), ErrDimensionMismatch (len(data) != r*c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNewFrom, ErrInvalidArgument)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxNewFrom, ErrDimensionMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a Dense from a slice of equally long rows.
// MAIN DESCRIPTION:
//   - Boundary conversion from the nested representation used by the JSON
//     files into the contiguous row-major buffer used by every kernel.
//
// Implementation:
//   - Stage 1: cols := len(rows[0]) (0 for an empty slice).
//   - Stage 2: verify every row has exactly cols entries.
//   - Stage 3: copy rows into the flat buffer at offsets i*cols.
//
// Errors:
//   - ErrRaggedRows when any row length differs from the first one.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	var r, c int
	r = len(rows)
	if r > 0 {
		c = len(rows[0])
	}
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone without the interface conversion.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Data returns a copy of the row-major buffer.
// Callers that hand the values to another numeric backend get an independent
// slice, so the matrix stays immutable from the outside.
func (m *Dense) Data() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// ToRows returns the matrix as freshly allocated rows ([][]float64).
// An empty matrix yields an empty, non-nil slice so that JSON encodes it as [].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, test failures and debugging.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
