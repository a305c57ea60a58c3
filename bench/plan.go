// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/loopmul/matrix"
)

// Plan defaults.
const (
	DefaultRuns     = 5
	DefaultSeed     = 42
	DefaultBaseline = NameIJK
	DefaultLanguage = "Go"
)

// DefaultSizes are the matrix sizes benchmarked when a plan names none.
var DefaultSizes = []int{64, 128, 256}

const (
	opLoadPlan = "LoadPlan"
	opValidate = "Plan.Validate"
)

// Plan describes one benchmark session: which sizes, which algorithms, how
// many runs, and how operands are seeded. It is the YAML config schema of the
// loopbench CLI; flags override fields after loading.
type Plan struct {
	Sizes      []int    `yaml:"sizes"`
	Runs       int      `yaml:"runs"`
	Seed       int64    `yaml:"seed"`
	BlockSize  int      `yaml:"block_size"`
	Workers    int      `yaml:"workers"`
	Algorithms []string `yaml:"algorithms"`
	Baseline   string   `yaml:"baseline"` // "" disables speedups
	Verify     bool     `yaml:"verify"`
	RelTol     float64  `yaml:"rtol"`
	AbsTol     float64  `yaml:"atol"`
	Language   string   `yaml:"language"`
}

// DefaultPlan returns a plan filled with package defaults.
func DefaultPlan() Plan {
	return Plan{
		Sizes:      append([]int(nil), DefaultSizes...),
		Runs:       DefaultRuns,
		Seed:       DefaultSeed,
		BlockSize:  matrix.DefaultBlockSize,
		Workers:    matrix.DefaultWorkers,
		Algorithms: DefaultAlgorithms(),
		Baseline:   DefaultBaseline,
		Verify:     true,
		RelTol:     matrix.DefaultRelTol,
		AbsTol:     matrix.DefaultAbsTol,
		Language:   DefaultLanguage,
	}
}

// LoadPlan reads a YAML plan from path. Keys absent from the file keep their
// DefaultPlan values; unknown keys are rejected. The result is validated.
func LoadPlan(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, benchErrorf(opLoadPlan, err)
	}
	defer f.Close()

	return DecodePlan(f)
}

// DecodePlan is LoadPlan over an arbitrary reader.
func DecodePlan(r io.Reader) (Plan, error) {
	p := DefaultPlan()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, benchErrorf(opLoadPlan, fmt.Errorf("%w: %v", ErrInvalidPlan, err))
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	return p.Normalized(), nil
}

// Validate reports the first field that cannot drive a run, wrapped in ErrInvalidPlan.
func (p Plan) Validate() error {
	switch {
	case len(p.Sizes) == 0:
		return p.invalid("no sizes")
	case lo.ContainsBy(p.Sizes, func(n int) bool { return n < 0 }):
		return p.invalid("negative size in %v", p.Sizes)
	case p.Runs < 1:
		return p.invalid("runs=%d, want >= 1", p.Runs)
	case p.BlockSize < 1:
		return p.invalid("block_size=%d, want >= 1", p.BlockSize)
	case p.Workers < 0:
		return p.invalid("workers=%d, want >= 0", p.Workers)
	case len(p.Algorithms) == 0:
		return p.invalid("no algorithms")
	case p.Baseline != "" && !IsKnown(p.Baseline):
		return p.invalid("baseline %q: %v", p.Baseline, ErrUnknownAlgorithm)
	case !validTol(p.RelTol) || !validTol(p.AbsTol):
		return p.invalid("tolerances rtol=%g atol=%g must be finite and >= 0", p.RelTol, p.AbsTol)
	}
	if unknown, ok := lo.Find(p.Algorithms, func(name string) bool { return !IsKnown(name) }); ok {
		return p.invalid("algorithm %q: %v", unknown, ErrUnknownAlgorithm)
	}

	return nil
}

// Normalized returns a copy with duplicate sizes and algorithms removed
// (first occurrence wins) and an empty Language defaulted.
func (p Plan) Normalized() Plan {
	p.Sizes = lo.Uniq(p.Sizes)
	p.Algorithms = lo.Uniq(p.Algorithms)
	if p.Language == "" {
		p.Language = DefaultLanguage
	}

	return p
}

// Options translates the plan into multiply options for NewRegistry.
func (p Plan) Options() []matrix.Option {
	return []matrix.Option{
		matrix.WithBlockSize(p.BlockSize),
		matrix.WithWorkers(p.Workers),
		matrix.WithTolerance(p.RelTol, p.AbsTol),
	}
}

func (p Plan) invalid(format string, args ...any) error {
	return benchErrorf(opValidate, fmt.Errorf("%w: %s", ErrInvalidPlan, fmt.Sprintf(format, args...)))
}

func validTol(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
