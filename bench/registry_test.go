// SPDX-License-Identifier: MIT
package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/matrix"
)

func TestRegistry_Names(t *testing.T) {
	reg := bench.NewRegistry()
	require.Equal(t,
		[]string{"ijk", "ikj", "kij", "blocked", "blocked-parallel", "reference"},
		reg.Names())
	for _, name := range reg.Names() {
		require.True(t, bench.IsKnown(name), name)
	}
	require.False(t, bench.IsKnown("jik"))
}

func TestRegistry_Lookup(t *testing.T) {
	reg := bench.NewRegistry()
	alg, err := reg.Lookup(bench.NameKIJ)
	require.NoError(t, err)
	require.Equal(t, "kij", alg.Name)
	require.NotNil(t, alg.Fn)

	_, err = reg.Lookup("strassen")
	require.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func TestRegistry_Select(t *testing.T) {
	reg := bench.NewRegistry()
	algs, err := reg.Select([]string{"blocked", "ijk", "blocked"})
	require.NoError(t, err)
	require.Len(t, algs, 2)
	require.Equal(t, "blocked", algs[0].Name)
	require.Equal(t, "ijk", algs[1].Name)

	_, err = reg.Select([]string{"ijk", "nope"})
	require.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func TestRegistry_AllAlgorithmsAgree(t *testing.T) {
	reg := bench.NewRegistry(matrix.WithBlockSize(3), matrix.WithWorkers(2))
	a, b := mustInputs(t, 10)
	want, err := matrix.MulIJK(a, b)
	require.NoError(t, err)

	for _, name := range reg.Names() {
		alg, err := reg.Lookup(name)
		require.NoError(t, err)
		got, err := alg.Fn(a, b)
		require.NoError(t, err, name)
		require.NoError(t, bench.Verify(name, got, want, matrix.DefaultRelTol, matrix.DefaultAbsTol))
	}
}

func TestDefaultAlgorithms(t *testing.T) {
	require.Equal(t, []string{"ijk", "ikj", "kij", "blocked", "reference"}, bench.DefaultAlgorithms())
}
