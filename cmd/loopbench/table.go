// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/loopmul/bench"
)

// printResults writes one table row per result, sizes in first-seen order,
// marking the fastest algorithm of each size with "*".
func printResults(w io.Writer, results []bench.Result) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "N\tALGORITHM\tMEAN ms\tSTD ms\tMEDIAN ms\tSPEEDUP\tVERIFIED\t\n")
	groups := bench.BySize(results)
	sizes := lo.Uniq(lo.Map(results, func(r bench.Result, _ int) int { return r.Size }))
	for _, n := range sizes {
		best, _ := bench.Fastest(results, n)
		for _, r := range groups[n] {
			mark := ""
			if r.Algorithm == best.Algorithm {
				mark = " *"
			}
			median := "-"
			if r.Stats.Runs > 0 {
				median = p.Sprintf("%.3f", millis(r.Stats.Median))
			}
			speedup := "-"
			if r.Speedup != 0 {
				speedup = p.Sprintf("%.2fx", r.Speedup)
			}
			p.Fprintf(tw, "%d\t%s%s\t%.3f\t%.3f\t%s\t%s\t%s\t\n",
				r.Size, r.Algorithm, mark,
				millis(r.Stats.Mean), millis(r.Stats.StdDev),
				median, speedup, yesNo(r.Verified))
		}
	}

	return tw.Flush()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}

	return "-"
}
