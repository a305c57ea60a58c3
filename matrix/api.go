// SPDX-License-Identifier: MIT
// Package matrix - public facade: constructors for the algebraic fixtures and
// MulFunc adapters that bind options to the tiled kernels.

package matrix

// NewZeros returns an r×c zero matrix (alias of NewDense for readability).
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidArgument when n < 0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike allocates a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Blocked binds opts to MulBlocked and returns it as a MulFunc, so a tiled
// kernel with a custom block size can be registered next to the plain ones.
func Blocked(opts ...Option) MulFunc {
	return func(a, b *Dense) (*Dense, error) { return MulBlocked(a, b, opts...) }
}

// BlockedParallel binds opts to MulBlockedParallel.
func BlockedParallel(opts ...Option) MulFunc {
	return func(a, b *Dense) (*Dense, error) { return MulBlockedParallel(a, b, opts...) }
}

// Compile-time checks that the plain kernels satisfy MulFunc.
var (
	_ MulFunc = MulIJK
	_ MulFunc = MulIKJ
	_ MulFunc = MulKIJ
)
