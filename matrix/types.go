// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by kernels and comparators.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Comparators and element-wise kernels accept any Matrix; the loop-order
// multiplies require the concrete *Dense so they can walk the flat buffer.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// MulFunc is the common signature of every multiply in this module:
// C = A × B for square operands of equal size, with a freshly allocated C.
type MulFunc func(a, b *Dense) (*Dense, error)
