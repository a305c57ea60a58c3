// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels and comparators.
//
// Purpose:
//   - Add: the one element-wise operation the algebraic property checks need.
//   - AllClose: the single shared tolerance comparator, |a-b| ≤ atol + rtol*|b|.
//   - Equal: exact comparison, reserved for integer-valued fixtures.
//
// All kernels validate through validators.go and use a Dense fast-path over
// the flat buffers with an At-based fallback for other Matrix implementations.

package matrix

import "math"

// Add returns a new matrix out = a + b for operands of identical shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	r, c := a.Rows(), a.Cols()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range out.data {
				out.data[idx] = da.data[idx] + db.data[idx]
			}
			return out, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			out.data[i*c+j] = av + bv
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality for identical shapes.
// Use only where inputs are exactly representable (small integers).
func Equal(a, b Matrix) (bool, error) {
	ok, err := AllClose(a, b, 0, 0)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return ok, nil
}

// closeTo is the scalar relation behind AllClose.
func closeTo(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| for identical shapes; 0 for empty
// matrices. The bench runner reports it when a verification fails.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	var worst float64
	for idx := range a.data {
		if d := math.Abs(a.data[idx] - b.data[idx]); d > worst || math.IsNaN(d) {
			worst = d
		}
	}

	return worst, nil
}
