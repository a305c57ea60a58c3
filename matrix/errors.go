// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user-triggered
// error conditions; option constructors panic on programmer errors only.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with matrixErrorf("<Op>", ErrX) so the operation is visible in messages while
// errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> non-square operand -> operand size mismatch.

var (
	// ErrInvalidArgument is returned for nonsensical scalar arguments, such as a
	// negative matrix size passed to a constructor or to Random.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or a multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that a [][]float64 source has rows of different length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf tolerance handed to a comparator.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// IsShapeError reports whether err is one of the shape violations a multiply can
// fail with: a non-square operand, operands of different size, or a ragged source.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrNonSquare) ||
		errors.Is(err, ErrRaggedRows)
}
