// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the tiled multiplies and the
// tolerance comparator. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize is the tile side used by MulBlocked and MulBlockedParallel.
	// Three 64×64 float64 tiles (96 KiB) fit a typical L2 cache.
	DefaultBlockSize = 64

	// DefaultWorkers is the goroutine limit of MulBlockedParallel.
	// 0 ⇒ runtime.GOMAXPROCS(0) at call time.
	DefaultWorkers = 0
)

// Tolerances shared by the algorithm agreement checks.
const (
	// DefaultRelTol bounds the relative error term of AllClose (rtol*|b|).
	DefaultRelTol = 1e-10

	// DefaultAbsTol bounds the absolute error term of AllClose.
	DefaultAbsTol = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBlockSizeInvalid = "matrix: WithBlockSize: block size must be >= 1"
	panicWorkersInvalid   = "matrix: WithWorkers: workers must be >= 0"
	panicTolInvalid       = "matrix: WithTolerance: tolerances must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	blockSize int     // DefaultBlockSize
	workers   int     // DefaultWorkers
	rtol      float64 // DefaultRelTol
	atol      float64 // DefaultAbsTol
}

// BlockSize returns the resolved tile side.
func (o Options) BlockSize() int { return o.blockSize }

// Workers returns the resolved worker limit (0 = GOMAXPROCS).
func (o Options) Workers() int { return o.workers }

// Tolerance returns the resolved (rtol, atol) pair.
func (o Options) Tolerance() (rtol, atol float64) { return o.rtol, o.atol }

// ---------- Constructors (WithX) ----------

// WithBlockSize sets the tile side of the blocked multiplies.
// Any k >= 1 is legal, including values that do not divide N or exceed it:
// the last tile in each dimension is clamped to N.
//
// Panics with a stable message when k < 1.
func WithBlockSize(k int) Option {
	if k < 1 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = k }
}

// WithWorkers limits the goroutines used by MulBlockedParallel.
// 0 means runtime.GOMAXPROCS(0). Ignored by the single-threaded kernels.
//
// Panics when w < 0.
func WithWorkers(w int) Option {
	if w < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = w }
}

// WithTolerance overrides the (rtol, atol) pair used where Options carry a
// tolerance (for example the bench runner's verification step).
//
// Panics when either value is negative, NaN or ±Inf.
func WithTolerance(rtol, atol float64) Option {
	if !isFiniteNonNeg(rtol) || !isFiniteNonNeg(atol) {
		panic(panicTolInvalid)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Last writer wins; the function is pure.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		blockSize: DefaultBlockSize,
		workers:   DefaultWorkers,
		rtol:      DefaultRelTol,
		atol:      DefaultAbsTol,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// nil setters are skipped so callers can pass optional options directly.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func isFiniteNonNeg(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
