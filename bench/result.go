// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/samber/lo"
)

// Result is one row of a benchmark report.
//
// Speedup is baseline mean / this mean for the same Size; zero means
// "not computed" (no baseline in the run, or a zero mean).
// Verified is true only when the product was compared with the reference and
// matched within tolerance.
type Result struct {
	Language  string
	Algorithm string
	Size      int
	Stats     Stats
	Speedup   float64
	Verified  bool
}

// ApplySpeedups fills Speedup for every result whose Size also has a result
// named baseline. The baseline row itself gets 1. Results of sizes without a
// baseline row are left at zero. An empty baseline clears nothing and sets nothing.
func ApplySpeedups(results []Result, baseline string) {
	if baseline == "" {
		return
	}
	base := lo.SliceToMap(
		lo.Filter(results, func(r Result, _ int) bool { return r.Algorithm == baseline }),
		func(r Result) (int, Result) { return r.Size, r },
	)
	for i := range results {
		b, ok := base[results[i].Size]
		if !ok || results[i].Stats.Mean <= 0 || b.Stats.Mean <= 0 {
			continue
		}
		results[i].Speedup = float64(b.Stats.Mean) / float64(results[i].Stats.Mean)
	}
}

// BySize groups results by Size, preserving order within each group.
func BySize(results []Result) map[int][]Result {
	return lo.GroupBy(results, func(r Result) int { return r.Size })
}

// Fastest returns the result with the smallest mean among those of size n.
func Fastest(results []Result, n int) (Result, bool) {
	same := lo.Filter(results, func(r Result, _ int) bool { return r.Size == n })
	if len(same) == 0 {
		return Result{}, false
	}

	return lo.MinBy(same, func(a, b Result) bool { return a.Stats.Mean < b.Stats.Mean }), true
}
