// Package matrix offers a row-major dense matrix and the loop-order multiply
// kernels benchmarked by this module.
//
// The matrix package provides:
//
//   - Dense: a contiguous row-major float64 buffer with safe At/Set accessors
//     and boundary conversions (FromRows/ToRows, NewDenseFrom/Data).
//   - Random: a reproducible n×n generator, uniform in [0,1), seeded per call.
//   - MulIJK, MulIKJ, MulKIJ: the three plain triple-loop orderings.
//   - MulBlocked: the cache-tiled multiply (default tile side 64) with clamped
//     boundary tiles, and MulBlockedParallel, its row-strip parallel twin.
//   - AllClose / Equal: the shared comparators used to check that every
//     ordering yields the same product up to rounding.
//
// All multiplies accept square N×N operands of equal N (N may be 0), never
// mutate their inputs, and return a freshly allocated result.
package matrix
