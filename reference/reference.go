// SPDX-License-Identifier: MIT

// Package reference provides the trusted multiply used as a correctness oracle
// and as a performance baseline for the loop-order kernels.
//
// The product is delegated to gonum (gonum.org/v1/gonum/mat), whose Dense.Mul
// dispatches to a BLAS dgemm. gonum types never leave this package: operands
// and results cross the boundary as *matrix.Dense.
package reference

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/loopmul/matrix"
)

// Name is the registry name of the oracle.
const Name = "reference"

const (
	opMul       = "reference.Mul"
	opToGonum   = "reference.ToGonum"
	opFromGonum = "reference.FromGonum"
)

// Mul computes C = A × B through gonum with the same contract as the
// loop-order kernels: square operands of equal order N, fresh result, inputs
// untouched.
//
// Behavior highlights:
//   - N == 0 returns an empty matrix without calling gonum, which rejects
//     zero-length dimensions by panicking.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(N³) (BLAS), Space O(N²) for the two operand copies and the result.
func Mul(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	if a.Rows() == 0 {
		return matrix.NewDense(0, 0)
	}

	ga, err := ToGonum(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}

	var gc mat.Dense
	gc.Mul(ga, gb)

	return FromGonum(&gc)
}

// ToGonum copies m into a new *mat.Dense. m must have non-zero dimensions.
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, err)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToGonum, r, c, matrix.ErrInvalidArgument)
	}

	// Data already returns a private copy, so gonum may own it.
	return mat.NewDense(r, c, m.Data()), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Dense.
// *mat.Dense is read row by row through RawRowView (stride-safe); other
// implementations go through At.
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	data := make([]float64, 0, r*c)
	if gd, ok := g.(*mat.Dense); ok {
		for i := 0; i < r; i++ {
			data = append(data, gd.RawRowView(i)...)
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data = append(data, g.At(i, j))
			}
		}
	}

	out, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return out, nil
}

// Compile-time check that Mul is a drop-in matrix.MulFunc.
var _ matrix.MulFunc = Mul
