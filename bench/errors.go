// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.
// Every message is prefixed with "bench: ..."; call sites wrap with an
// operation or algorithm tag through benchErrorf and callers match with errors.Is.

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRuns is returned when a measurement is asked for fewer than one run.
	ErrInvalidRuns = errors.New("bench: runs must be >= 1")

	// ErrNilAlgorithm is returned when Measure receives a nil MulFunc.
	ErrNilAlgorithm = errors.New("bench: nil algorithm")

	// ErrUnknownAlgorithm is returned by the registry for names it does not know.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

	// ErrInvalidPlan is returned when a Plan fails validation or cannot be decoded.
	ErrInvalidPlan = errors.New("bench: invalid plan")

	// ErrMismatch is returned when an algorithm's product differs from the
	// oracle's beyond the configured tolerance.
	ErrMismatch = errors.New("bench: result differs from reference")
)

// benchErrorf wraps err with a tag, preserving it for errors.Is/As.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
