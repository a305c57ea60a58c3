// Package store persists benchmark inputs, products and results.
//
// File formats:
//
//   - matrices_<n>.json: {"size", "timestamp", "matrix_A", "matrix_B"}
//   - result_<alg>_<n>.json: {"size", "algorithm", "timestamp", "result_matrix"}
//   - benchmark_results.csv: Language,Algorithm,Size,Mean_Time_s,Std_Time_s,Speedup
//
// Matrices are arrays of row arrays. Floats are written in shortest
// round-trip form, so a save/load cycle reproduces every value bit for bit.
// Timestamps are RFC 3339.
package store
