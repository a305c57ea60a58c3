// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/matrix"
	"github.com/katalvlaran/loopmul/reference"
	"github.com/katalvlaran/loopmul/store"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		input      string
		blockSize  int
		workers    int
		rtol, atol float64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm against the reference on a saved input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := bench.DefaultPlan()
			plan.BlockSize, plan.Workers, plan.RelTol, plan.AbsTol = blockSize, workers, rtol, atol
			if err := plan.Validate(); err != nil {
				return err
			}

			ma, mb, n, err := store.LoadInputs(input)
			if err != nil {
				return err
			}
			want, err := reference.Mul(ma, mb)
			if err != nil {
				return err
			}

			reg := bench.NewRegistry(plan.Options()...)
			names := lo.Without(reg.Names(), bench.NameReference)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "ALGORITHM\tN\tSTATUS\t\n")

			var failed []string
			for _, name := range names {
				alg, err := reg.Lookup(name)
				if err != nil {
					return err
				}
				got, err := alg.Fn(ma, mb)
				if err != nil {
					return err
				}
				status := "PASS"
				if err = bench.Verify(name, got, want, rtol, atol); err != nil {
					status = "FAIL"
					failed = append(failed, name)
					a.log.Error("verification failed", "algorithm", name, "n", n, "err", err)
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t\n", name, n, status)
			}
			if err = tw.Flush(); err != nil {
				return err
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d algorithms differ (%v): %w", len(failed), len(names), failed, bench.ErrMismatch)
			}
			a.log.Info("all algorithms agree with the reference", "n", n, "algorithms", len(names))

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&input, "input", "", "matrices_<n>.json file to verify")
	f.IntVar(&blockSize, "block-size", matrix.DefaultBlockSize, "tile side of the blocked algorithms")
	f.IntVar(&workers, "workers", matrix.DefaultWorkers, "goroutines of blocked-parallel, 0 means GOMAXPROCS")
	f.Float64Var(&rtol, "rtol", matrix.DefaultRelTol, "relative tolerance")
	f.Float64Var(&atol, "atol", matrix.DefaultAbsTol, "absolute tolerance")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
