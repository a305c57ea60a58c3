// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/store"
)

func newReportCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the summary table of an existing results CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := store.ReadResults(path)
			if err != nil {
				return err
			}
			a.log.Debug("read results", "path", path, "rows", len(results))

			return printResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVar(&path, "results", store.ResultsCSV(store.DefaultOutputDir), "results CSV to read")

	return cmd
}

func newHostCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print the fingerprint of this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := bench.Host()
			features := strings.Join(h.Features, " ")
			if features == "" {
				features = "-"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"go:       %s\nplatform: %s/%s\ncpus:     %d (GOMAXPROCS %d)\nfeatures: %s\n",
				h.GoVersion, h.OS, h.Arch, h.CPUs, h.MaxProcs, features)

			return err
		},
	}
}
