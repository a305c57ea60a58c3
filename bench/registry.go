// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/loopmul/matrix"
	"github.com/katalvlaran/loopmul/reference"
)

// Algorithm names as they appear in plans, flags, file names and the CSV.
const (
	NameIJK             = "ijk"
	NameIKJ             = "ikj"
	NameKIJ             = "kij"
	NameBlocked         = "blocked"
	NameBlockedParallel = "blocked-parallel"
	NameReference       = reference.Name
)

const opLookup = "Lookup"

// Algorithm binds a name to a multiply.
type Algorithm struct {
	Name string
	Fn   matrix.MulFunc
}

// Registry is the ordered set of algorithms a run may select from.
// Blocked variants are bound to the options given at construction.
type Registry struct {
	algs []Algorithm
}

// NewRegistry returns a registry holding every known algorithm, in the order
// ijk, ikj, kij, blocked, blocked-parallel, reference.
// opts configure the blocked variants (block size, worker count).
func NewRegistry(opts ...matrix.Option) *Registry {
	return &Registry{algs: []Algorithm{
		{Name: NameIJK, Fn: matrix.MulIJK},
		{Name: NameIKJ, Fn: matrix.MulIKJ},
		{Name: NameKIJ, Fn: matrix.MulKIJ},
		{Name: NameBlocked, Fn: matrix.Blocked(opts...)},
		{Name: NameBlockedParallel, Fn: matrix.BlockedParallel(opts...)},
		{Name: NameReference, Fn: reference.Mul},
	}}
}

// Names lists registered algorithm names in registry order.
func (r *Registry) Names() []string {
	return lo.Map(r.algs, func(a Algorithm, _ int) string { return a.Name })
}

// Lookup returns the algorithm registered under name.
func (r *Registry) Lookup(name string) (Algorithm, error) {
	alg, ok := lo.Find(r.algs, func(a Algorithm) bool { return a.Name == name })
	if !ok {
		return Algorithm{}, benchErrorf(opLookup, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm))
	}

	return alg, nil
}

// Select resolves names in the given order, dropping duplicates.
func (r *Registry) Select(names []string) ([]Algorithm, error) {
	out := make([]Algorithm, 0, len(names))
	for _, name := range lo.Uniq(names) {
		alg, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, alg)
	}

	return out, nil
}

// IsKnown reports whether name is a registered algorithm name.
// It does not depend on options, so plans can be validated without a Registry.
func IsKnown(name string) bool {
	return lo.Contains(knownNames, name)
}

var knownNames = []string{NameIJK, NameIKJ, NameKIJ, NameBlocked, NameBlockedParallel, NameReference}

// DefaultAlgorithms is the selection used when a plan names none: the four
// loop orderings plus the reference.
func DefaultAlgorithms() []string {
	return []string{NameIJK, NameIKJ, NameKIJ, NameBlocked, NameReference}
}
