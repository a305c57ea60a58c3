// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/loopmul/matrix"
	"github.com/katalvlaran/loopmul/reference"
)

// Sink receives the artifacts of a run. Implementations persist them; a
// failing save is reported but does not stop the run.
type Sink interface {
	SaveInputs(n int, a, b *matrix.Dense) error
	SaveResult(n int, algorithm string, c *matrix.Dense) error
}

// Runner executes a Plan: for every size it generates A (Seed) and B (Seed+1),
// measures each selected algorithm, optionally verifies the last product
// against the oracle, and finally fills speedups against Plan.Baseline.
type Runner struct {
	Plan Plan

	// Registry defaults to NewRegistry(Plan.Options()...).
	Registry *Registry
	// Oracle defaults to reference.Mul.
	Oracle matrix.MulFunc
	// Sink, when set, receives inputs and products.
	Sink Sink
	// Progress, when set, is called after each measurement, before speedups
	// are known.
	Progress func(Result)
}

// Run executes the plan.
//
// Returned results are always the ones measured so far. The error joins every
// verification mismatch (ErrMismatch) and sink failure; an algorithm error or
// a cancelled ctx stops the run early and is joined as well.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.Plan.Validate(); err != nil {
		return nil, err
	}
	plan := r.Plan.Normalized()

	reg := r.Registry
	if reg == nil {
		reg = NewRegistry(plan.Options()...)
	}
	algs, err := reg.Select(plan.Algorithms)
	if err != nil {
		return nil, err
	}
	oracle := r.Oracle
	if oracle == nil {
		oracle = reference.Mul
	}
	rtol, atol := matrix.NewOptions(plan.Options()...).Tolerance()

	var (
		results []Result
		errs    []error
	)
	finish := func(extra ...error) ([]Result, error) {
		ApplySpeedups(results, plan.Baseline)
		return results, errors.Join(append(errs, extra...)...)
	}

	for _, n := range plan.Sizes {
		if err = ctx.Err(); err != nil {
			return finish(err)
		}

		a, b, err := Inputs(n, plan.Seed)
		if err != nil {
			return finish(err)
		}
		if r.Sink != nil {
			if err = r.Sink.SaveInputs(n, a, b); err != nil {
				errs = append(errs, err)
			}
		}

		var want *matrix.Dense
		if plan.Verify {
			if want, err = oracle(a, b); err != nil {
				return finish(benchErrorf(NameReference, err))
			}
		}

		for _, alg := range algs {
			if err = ctx.Err(); err != nil {
				return finish(err)
			}

			sample, c, err := measure(alg.Fn, a, b, plan.Runs)
			if err != nil {
				return finish(benchErrorf(alg.Name, err))
			}
			sample.Algorithm = alg.Name

			res := Result{
				Language:  plan.Language,
				Algorithm: alg.Name,
				Size:      n,
				Stats:     sample.Stats(),
			}
			if want != nil {
				if err = Verify(alg.Name, c, want, rtol, atol); err != nil {
					errs = append(errs, err)
				} else {
					res.Verified = true
				}
			}
			if r.Sink != nil {
				if err = r.Sink.SaveResult(n, alg.Name, c); err != nil {
					errs = append(errs, err)
				}
			}

			results = append(results, res)
			if r.Progress != nil {
				r.Progress(res)
			}
		}
	}

	return finish()
}

// Inputs generates the operand pair of size n used by every run: A seeded
// with seed, B with seed+1.
func Inputs(n int, seed int64) (a, b *matrix.Dense, err error) {
	if a, err = matrix.Random(n, seed); err != nil {
		return nil, nil, err
	}
	if b, err = matrix.Random(n, seed+1); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// Verify compares got with want under AllClose(rtol, atol) and returns an
// error wrapping ErrMismatch that reports the largest absolute difference.
func Verify(algorithm string, got, want *matrix.Dense, rtol, atol float64) error {
	ok, err := matrix.AllClose(got, want, rtol, atol)
	if err != nil {
		return benchErrorf(algorithm, err)
	}
	if ok {
		return nil
	}
	diff, err := matrix.MaxAbsDiff(got, want)
	if err != nil {
		return benchErrorf(algorithm, err)
	}

	return benchErrorf(algorithm, fmt.Errorf("n=%d max|Δ|=%g: %w", want.Rows(), diff, ErrMismatch))
}
