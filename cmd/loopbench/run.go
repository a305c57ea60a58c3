// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/loopmul/bench"
	"github.com/katalvlaran/loopmul/store"
)

type runOptions struct {
	config      string
	inputDir    string
	outputDir   string
	saveResults bool
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions
	def := bench.DefaultPlan()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a benchmark plan and write inputs, products and the results CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := resolvePlan(opts.config, cmd.Flags())
			if err != nil {
				return err
			}

			return a.runPlan(cmd.Context(), cmd.OutOrStdout(), plan, opts)
		},
	}

	f := cmd.Flags()
	f.IntSlice("sizes", def.Sizes, "matrix sizes N to benchmark")
	f.Int("runs", def.Runs, "timed runs per algorithm and size")
	f.Int64("seed", def.Seed, "seed of operand A; B uses seed+1")
	f.Int("block-size", def.BlockSize, "tile side of the blocked algorithms")
	f.Int("workers", def.Workers, "goroutines of blocked-parallel, 0 means GOMAXPROCS")
	f.StringSlice("algorithms", def.Algorithms,
		"algorithms to run, any of "+strings.Join(bench.NewRegistry().Names(), ","))
	f.String("baseline", def.Baseline, "algorithm speedups are relative to; empty disables speedups")
	f.Bool("verify", def.Verify, "compare every product with the reference")
	f.Float64("rtol", def.RelTol, "relative tolerance of the verification")
	f.Float64("atol", def.AbsTol, "absolute tolerance of the verification")
	f.StringVar(&opts.config, "config", "", "YAML plan file; explicitly set flags override it")
	f.StringVar(&opts.inputDir, "input-dir", store.DefaultInputDir, "directory for matrices_<n>.json")
	f.StringVar(&opts.outputDir, "output-dir", store.DefaultOutputDir, "directory for results")
	f.BoolVar(&opts.saveResults, "save-results", false, "also write every product as result_<alg>_<n>.json")

	return cmd
}

// resolvePlan starts from the defaults or the YAML file and applies every
// flag the user set explicitly.
func resolvePlan(config string, fs *pflag.FlagSet) (bench.Plan, error) {
	plan := bench.DefaultPlan()
	if config != "" {
		var err error
		if plan, err = bench.LoadPlan(config); err != nil {
			return bench.Plan{}, err
		}
	}

	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}
	set("sizes", func() (e error) { plan.Sizes, e = fs.GetIntSlice("sizes"); return })
	set("runs", func() (e error) { plan.Runs, e = fs.GetInt("runs"); return })
	set("seed", func() (e error) { plan.Seed, e = fs.GetInt64("seed"); return })
	set("block-size", func() (e error) { plan.BlockSize, e = fs.GetInt("block-size"); return })
	set("workers", func() (e error) { plan.Workers, e = fs.GetInt("workers"); return })
	set("algorithms", func() (e error) { plan.Algorithms, e = fs.GetStringSlice("algorithms"); return })
	set("baseline", func() (e error) { plan.Baseline, e = fs.GetString("baseline"); return })
	set("verify", func() (e error) { plan.Verify, e = fs.GetBool("verify"); return })
	set("rtol", func() (e error) { plan.RelTol, e = fs.GetFloat64("rtol"); return })
	set("atol", func() (e error) { plan.AbsTol, e = fs.GetFloat64("atol"); return })
	if err != nil {
		return bench.Plan{}, err
	}
	if err = plan.Validate(); err != nil {
		return bench.Plan{}, err
	}

	return plan.Normalized(), nil
}

func (a *app) runPlan(ctx context.Context, out io.Writer, plan bench.Plan, opts runOptions) error {
	host := bench.Host()
	a.log.Info("starting run",
		"sizes", plan.Sizes,
		"algorithms", plan.Algorithms,
		"runs", plan.Runs,
		"block_size", plan.BlockSize,
		"go", host.GoVersion,
		"cpus", host.CPUs,
		"features", strings.Join(host.Features, ","))

	r := &bench.Runner{
		Plan: plan,
		Sink: store.NewDirSink(opts.inputDir, opts.outputDir, opts.saveResults),
		Progress: func(res bench.Result) {
			a.log.Info("measured",
				"algorithm", res.Algorithm,
				"n", res.Size,
				"mean", res.Stats.Mean,
				"std", res.Stats.StdDev,
				"verified", res.Verified)
		},
	}
	results, runErr := r.Run(ctx)
	if runErr != nil {
		a.log.Error("run finished with errors", "err", runErr, "results", len(results))
	}
	if len(results) == 0 {
		return runErr
	}

	path := store.ResultsCSV(opts.outputDir)
	if err := store.WriteResults(path, results); err != nil {
		a.log.Error("writing results", "path", path, "err", err)
		runErr = errors.Join(runErr, err)
	} else {
		a.log.Info("wrote results", "path", path, "rows", len(results))
	}
	if err := printResults(out, results); err != nil {
		runErr = errors.Join(runErr, err)
	}

	return runErr
}
