// SPDX-License-Identifier: MIT

// Command loopbench benchmarks loop orderings of dense square matrix
// multiplication and checks that they agree with a BLAS reference.
//
// Usage:
//
//	loopbench run --sizes 64,128,256 --runs 5 --seed 42 --block-size 64
//	loopbench run --config plan.yaml --runs 10          # flags override the file
//	loopbench gen --sizes 128 --input-dir data/input
//	loopbench verify --input data/input/matrices_128.json
//	loopbench report --results data/output/benchmark_results.csv
//	loopbench host
//
// `run` writes matrices_<n>.json into --input-dir, benchmark_results.csv
// (and with --save-results every result_<alg>_<n>.json) into --output-dir,
// logs progress to stderr and prints a summary table to stdout.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
