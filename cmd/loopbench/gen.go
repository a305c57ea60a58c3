// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/store"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		sizes    []int
		seed     int64
		inputDir string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate input matrix files without benchmarking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range lo.Uniq(sizes) {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				ma, mb, err := bench.Inputs(n, seed)
				if err != nil {
					return err
				}
				path := store.InputPath(inputDir, n)
				if err = store.SaveInputs(path, ma, mb, time.Now()); err != nil {
					return err
				}
				a.log.Info("wrote inputs", "n", n, "path", path)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&sizes, "sizes", append([]int(nil), bench.DefaultSizes...), "matrix sizes N")
	f.Int64Var(&seed, "seed", bench.DefaultSeed, "seed of operand A; B uses seed+1")
	f.StringVar(&inputDir, "input-dir", store.DefaultInputDir, "directory for matrices_<n>.json")

	return cmd
}
