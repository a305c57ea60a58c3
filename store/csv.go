// SPDX-License-Identifier: MIT

package store

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/katalvlaran/loopmul/bench"
)

// CSVHeader is the first record of every results file.
var CSVHeader = []string{"Language", "Algorithm", "Size", "Mean_Time_s", "Std_Time_s", "Speedup"}

const (
	opWriteResults = "WriteResults"
	opReadResults  = "ReadResults"
)

// WriteResults writes results to path as CSV, one row per result in order.
// Times are seconds; a zero Speedup is written as an empty cell.
func WriteResults(path string, results []bench.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ioErrorf(opWriteResults, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(opWriteResults, err)
	}
	if err = EncodeResults(f, results); err != nil {
		_ = f.Close()
		return ioErrorf(opWriteResults, err)
	}
	if err = f.Close(); err != nil {
		return ioErrorf(opWriteResults, err)
	}

	return nil
}

// EncodeResults is WriteResults over an arbitrary writer.
func EncodeResults(w io.Writer, results []bench.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		speedup := ""
		if r.Speedup != 0 {
			speedup = formatFloat(r.Speedup)
		}
		rec := []string{
			r.Language,
			r.Algorithm,
			strconv.Itoa(r.Size),
			formatFloat(r.Stats.MeanSeconds()),
			formatFloat(r.Stats.StdDevSeconds()),
			speedup,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadResults reads a CSV written by WriteResults. Only Mean and StdDev of
// each Stats are populated.
//
// Errors:
//   - ErrIO when the file cannot be opened.
//   - *ParseError for a wrong header, a row of the wrong width, or a field
//     that does not parse.
func ReadResults(path string) ([]bench.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opReadResults, err)
	}
	defer f.Close()

	return DecodeResults(path, f)
}

// DecodeResults is ReadResults over an arbitrary reader; name labels parse errors.
func DecodeResults(name string, r io.Reader) ([]bench.Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, parseErrorf(name, "empty file, want header")
	}
	if err != nil {
		return nil, parseErrorf(name, "header: %v", err)
	}
	if !slices.Equal(header, CSVHeader) {
		return nil, parseErrorf(name, "header %v, want %v", header, CSVHeader)
	}

	var out []bench.Result
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseErrorf(name, "line %d: %v", line, err)
		}
		res, err := parseRecord(rec)
		if err != nil {
			return nil, parseErrorf(name, "line %d: %v", line, err)
		}
		out = append(out, res)
	}

	return out, nil
}

func parseRecord(rec []string) (bench.Result, error) {
	size, err := strconv.Atoi(rec[2])
	if err != nil {
		return bench.Result{}, err
	}
	mean, err := strconv.ParseFloat(rec[3], 64)
	if err != nil {
		return bench.Result{}, err
	}
	std, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return bench.Result{}, err
	}
	var speedup float64
	if rec[5] != "" {
		if speedup, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return bench.Result{}, err
		}
	}

	return bench.Result{
		Language:  rec[0],
		Algorithm: rec[1],
		Size:      size,
		Stats:     bench.Stats{Mean: fromSeconds(mean), StdDev: fromSeconds(std)},
		Speedup:   speedup,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fromSeconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
