// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopmul/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"0x0", MustDense(t, 0, 0), nil},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestValidateSquarePair checks the documented error priority.
func TestValidateSquarePair(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquarePair(MustDense(t, 4, 4), MustDense(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquarePair(nil, MustDense(t, 2, 3)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquarePair(MustDense(t, 2, 3), MustDense(t, 4, 4)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquarePair(MustDense(t, 2, 2), MustDense(t, 4, 4)), matrix.ErrDimensionMismatch)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}
