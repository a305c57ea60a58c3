// SPDX-License-Identifier: MIT
// Package matrix provides the loop-order multiply kernels: the same
// C[i][j] = Σ_k A[i][k]·B[k][j] product computed with different nestings of
// the three index loops, plus a cache-tiled variant.
//
// Purpose:
//   - Keep every kernel a direct triple loop over the flat row-major buffers.
//   - Validate once at the top through ValidateSquarePair; never panic on input.
//   - Allocate exactly one zeroed N×N result per call; operands are read-only.
//
// Notes:
//   - Floating-point addition is associative only up to rounding, so results of
//     different kernels are compared with AllClose, not ==.

package matrix

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// zeroSum is the initial value of every dot-product accumulator.
const zeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMulIJK             = "MulIJK"
	opMulIKJ             = "MulIKJ"
	opMulKIJ             = "MulKIJ"
	opMulBlocked         = "MulBlocked"
	opMulBlockedParallel = "MulBlockedParallel"
	opAdd                = "Add"
	opAllClose           = "AllClose"
	opEqual              = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// prepareSquare validates a square pair and allocates the zeroed result.
// Returns the order N and the result on success.
func prepareSquare(tag string, a, b *Dense) (int, *Dense, error) {
	if err := ValidateSquarePair(a, b); err != nil {
		return 0, nil, matrixErrorf(tag, err)
	}
	n := a.r

	return n, &Dense{r: n, c: n, data: make([]float64, n*n)}, nil
}

// MulIJK computes C = A × B with the loop nest i → j → k.
// MAIN DESCRIPTION:
//   - Textbook ordering: each C[i][j] is a dot product of row i of A with
//     column j of B, accumulated incrementally over k.
//
// Behavior highlights:
//   - The inner loop strides B by N elements (column walk), the cache-unfriendly
//     access pattern the other orderings are measured against.
//
// Inputs:
//   - a, b: square N×N operands (N may be 0).
//
// Returns:
//   - *Dense: new N×N product.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "MulIJK").
//
// Complexity:
//   - Time O(N³), Space O(N²) for the result.
func MulIJK(a, b *Dense) (*Dense, error) {
	n, c, err := prepareSquare(opMulIJK, a, b)
	if err != nil {
		return nil, err
	}
	ad, bd, cd := a.data, b.data, c.data
	var (
		i, j, k    int
		rowA, rowC int
		sum        float64
	)
	for i = 0; i < n; i++ {
		rowA = i * n
		rowC = i * n
		for j = 0; j < n; j++ {
			sum = zeroSum
			for k = 0; k < n; k++ {
				sum += ad[rowA+k] * bd[k*n+j]
			}
			cd[rowC+j] = sum
		}
	}

	return c, nil
}

// MulIKJ computes C = A × B with the loop nest i → k → j.
// A[i][k] is hoisted out of the inner loop, which then walks row k of B and
// row i of C sequentially.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "MulIKJ").
//
// Complexity:
//   - Time O(N³), Space O(N²).
func MulIKJ(a, b *Dense) (*Dense, error) {
	n, c, err := prepareSquare(opMulIKJ, a, b)
	if err != nil {
		return nil, err
	}
	ad, bd, cd := a.data, b.data, c.data
	var (
		i, k, j    int
		rowA, rowB int
		av         float64
		rowC       []float64
	)
	for i = 0; i < n; i++ {
		rowA = i * n
		rowC = cd[i*n : (i+1)*n]
		for k = 0; k < n; k++ {
			av = ad[rowA+k]
			rowB = k * n
			for j = 0; j < n; j++ {
				rowC[j] += av * bd[rowB+j]
			}
		}
	}

	return c, nil
}

// MulKIJ computes C = A × B with the loop nest k → i → j.
// Each outer step adds the rank-1 update column_k(A) ⊗ row_k(B) into C.
//
// Complexity:
//   - Time O(N³), Space O(N²).
func MulKIJ(a, b *Dense) (*Dense, error) {
	n, c, err := prepareSquare(opMulKIJ, a, b)
	if err != nil {
		return nil, err
	}
	ad, bd, cd := a.data, b.data, c.data
	var (
		k, i, j int
		av      float64
		rowB    []float64
		rowC    []float64
	)
	for k = 0; k < n; k++ {
		rowB = bd[k*n : (k+1)*n]
		for i = 0; i < n; i++ {
			av = ad[i*n+k]
			rowC = cd[i*n : (i+1)*n]
			for j = 0; j < n; j++ {
				rowC[j] += av * rowB[j]
			}
		}
	}

	return c, nil
}

// MulBlocked computes C = A × B over square tiles of side WithBlockSize(k)
// (default DefaultBlockSize).
// MAIN DESCRIPTION:
//   - Tile coordinates (ii, jj, kk) advance in steps of k; inside a tile triple
//     the kernel accumulates C[i][j] += A[i][k]·B[k][j] over the clamped ranges
//     [start, min(start+k, N)) for i, j and k.
//
// Implementation:
//   - Stage 1: validate and allocate.
//   - Stage 2: three tile loops; each tile triple calls mulTile.
//
// Behavior highlights:
//   - Clamping handles a ragged final tile, so any k >= 1 is valid, including
//     non-divisors of N and k > N (a single tile).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "MulBlocked").
//
// Complexity:
//   - Time O(N³), Space O(N²).
func MulBlocked(a, b *Dense, opts ...Option) (*Dense, error) {
	n, c, err := prepareSquare(opMulBlocked, a, b)
	if err != nil {
		return nil, err
	}
	bs := gatherOptions(opts...).blockSize
	for ii := 0; ii < n; ii += bs {
		mulRowStrip(a.data, b.data, c.data, n, bs, ii)
	}

	return c, nil
}

// MulBlockedParallel is MulBlocked with row strips (one ii tile row each)
// distributed over a bounded set of goroutines (WithWorkers, default
// GOMAXPROCS).
//
// Behavior highlights:
//   - Strips write disjoint rows of C, so no locking is needed.
//   - Each element is accumulated in the same kk order as MulBlocked, so the
//     two kernels return bit-identical results.
//   - Returns only after every strip is done (synchronous contract).
//
// Complexity:
//   - Time O(N³/W) wall-clock for W workers, Space O(N²).
func MulBlockedParallel(a, b *Dense, opts ...Option) (*Dense, error) {
	n, c, err := prepareSquare(opMulBlockedParallel, a, b)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	bs, workers := o.blockSize, o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for ii := 0; ii < n; ii += bs {
		ii := ii // per-iteration copy for pre-1.22 loop semantics
		g.Go(func() error {
			mulRowStrip(a.data, b.data, c.data, n, bs, ii)
			return nil
		})
	}
	_ = g.Wait() // strips never fail; Wait only joins them

	return c, nil
}

// mulRowStrip runs every (jj, kk) tile pair for the tile row starting at ii.
func mulRowStrip(ad, bd, cd []float64, n, bs, ii int) {
	iEnd := min(ii+bs, n)
	for jj := 0; jj < n; jj += bs {
		jEnd := min(jj+bs, n)
		for kk := 0; kk < n; kk += bs {
			mulTile(ad, bd, cd, n, ii, iEnd, jj, jEnd, kk, min(kk+bs, n))
		}
	}
}

// mulTile accumulates one tile triple into C using the i → j → k order.
func mulTile(ad, bd, cd []float64, n, i0, i1, j0, j1, k0, k1 int) {
	var (
		i, j, k    int
		rowA, rowC int
		sum        float64
	)
	for i = i0; i < i1; i++ {
		rowA = i * n
		rowC = i * n
		for j = j0; j < j1; j++ {
			sum = cd[rowC+j]
			for k = k0; k < k1; k++ {
				sum += ad[rowA+k] * bd[k*n+j]
			}
			cd[rowC+j] = sum
		}
	}
}
