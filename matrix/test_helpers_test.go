// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite so comparisons are never polluted by NaN.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopmul/matrix"
)

// Fixture seeds for operands A and B, matching bench.Inputs(n, 42).
const (
	seedA int64 = 42
	seedB int64 = 43
)

// kernel names a MulFunc for table-driven tests.
type kernel struct {
	name string
	fn   matrix.MulFunc
}

// allKernels RETURNS every loop-order multiply, with the tiled ones bound to
// their default options.
func allKernels() []kernel {
	return []kernel{
		{"ijk", matrix.MulIJK},
		{"ikj", matrix.MulIKJ},
		{"kij", matrix.MulKIJ},
		{"blocked", matrix.Blocked()},
		{"blocked-parallel", matrix.BlockedParallel()},
	}
}

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows BUILDS a *Dense from literal rows or fails the test.
//
// Notes:
//   - Prefer for small exact-equality tests with integer-valued entries.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustRandom RETURNS matrix.Random(n, seed) or fails the test.
func MustRandom(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Random(n, seed)
	if err != nil {
		t.Fatalf("Random(%d,%d): %v", n, seed, err)
	}

	return m
}

// requireClose ASSERTS AllClose(got, want) under the default tolerances and
// prints a row-wise diff on failure.
func requireClose(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, matrix.DefaultRelTol, matrix.DefaultAbsTol)
	require.NoError(t, err)
	if !ok {
		diff := cmp.Diff(want.ToRows(), got.ToRows(), cmpopts.EquateApprox(matrix.DefaultRelTol, matrix.DefaultAbsTol))
		require.Failf(t, "matrices differ beyond tolerance", "(-want +got):\n%s", diff)
	}
}

// requireExact ASSERTS element-wise equality.
func requireExact(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.ToRows(), got.ToRows())
}
