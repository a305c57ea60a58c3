// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopmul/matrix"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultBlockSize, o.BlockSize())
	require.Equal(t, matrix.DefaultWorkers, o.Workers())
	rtol, atol := o.Tolerance()
	require.Equal(t, matrix.DefaultRelTol, rtol)
	require.Equal(t, matrix.DefaultAbsTol, atol)
}

// TestNewOptions_LastWriterWins ensures later setters override earlier ones.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithBlockSize(8), matrix.WithBlockSize(17), nil, matrix.WithWorkers(3))
	require.Equal(t, 17, o.BlockSize())
	require.Equal(t, 3, o.Workers())

	o = matrix.NewOptions(matrix.WithTolerance(1e-6, 1e-9))
	rtol, atol := o.Tolerance()
	require.Equal(t, 1e-6, rtol)
	require.Equal(t, 1e-9, atol)
}

// TestOptions_PanicOnNonsense covers programmer-error panics.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithBlockSize(0) })
	require.Panics(t, func() { matrix.WithBlockSize(-4) })
	require.Panics(t, func() { matrix.WithWorkers(-1) })
	require.Panics(t, func() { matrix.WithTolerance(-1, 0) })
	require.Panics(t, func() { matrix.WithTolerance(0, math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithBlockSize(1) })
	require.NotPanics(t, func() { matrix.WithWorkers(0) })
}
