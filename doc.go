// Package loopmul benchmarks loop orderings of dense square matrix
// multiplication and checks that every ordering computes the same product.
//
// What is measured?
//
//	The same triple loop C[i][j] += A[i][k]·B[k][j], nested three ways plus a
//	tiled variant, over row-major float64 matrices:
//		• ijk: scalar accumulator, inner loop strides down a column of B
//		• ikj: inner loop streams a row of B into a row of C
//		• kij: outer k, inner loop streams rows like ikj
//		• blocked: ijk over cache tiles with clamped boundary tiles
//		• blocked-parallel: blocked with row strips spread over goroutines
//		• reference: gonum's BLAS-backed product, the oracle
//
// Under the hood, the module is organized as:
//
//	matrix/         Dense type, seeded generator, the loop-order kernels, AllClose
//	reference/      conversion to gonum and the oracle multiply
//	bench/          timing statistics, algorithm registry, YAML plans, Runner
//	store/          JSON input/result files and the results CSV
//	cmd/loopbench/  the CLI: run, gen, verify, report, host
//	examples/       small runnable programs over the packages above
//
// Quick start:
//
//	go run ./cmd/loopbench run --sizes 64,128,256 --runs 5
//
// writes data/input/matrices_<n>.json, data/output/benchmark_results.csv and
// prints a summary table with speedups relative to ijk.
package loopmul
