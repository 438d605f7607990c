// ppsstat prints the summary the comparer shows when it stops, recomputed
// from a saved log (header and summary line are skipped).
//
//	ppsstat [--json] pps.log
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/folkertvanheusden/pps-comparer/src/analysis"
	"github.com/folkertvanheusden/pps-comparer/src/cli"
	"github.com/folkertvanheusden/pps-comparer/src/logger"
	"github.com/folkertvanheusden/pps-comparer/src/samples"
)

type options struct {
	input      string
	trim       samples.Trim
	diffCol    int
	timeCol    int
	missingCol int
	asJSON     bool
	stdout     io.Writer
}

type report struct {
	analysis.Summary
	Bins  int       `json:"fd_bins"`
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
}

func build(rows []samples.Row, o options) (report, error) {
	var r report
	diffs, err := samples.Column(rows, o.diffCol)
	if err != nil {
		return r, err
	}
	if r.Summary, err = analysis.Summarize(diffs); err != nil {
		return r, err
	}
	if b, err := analysis.FreedmanDiaconis(diffs); err != nil {
		logger.Warnf("no histogram binning: %v", err)
	} else {
		r.Bins = b.Bins
	}
	if r.First, err = rows[0].Time(o.timeCol); err != nil {
		return r, err
	}
	if r.Last, err = rows[len(rows)-1].Time(o.timeCol); err != nil {
		return r, err
	}
	// the counters are cumulative, so the last row holds the totals
	last := rows[len(rows)-1]
	if o.missingCol < len(last.Fields) {
		m1, m2, err := analysis.ParseMissing(last.Fields[o.missingCol])
		if err != nil {
			logger.Warnf("line %d: %v", last.Line, err)
		} else {
			r.Missing1, r.Missing2 = m1, m2
		}
	}
	return r, nil
}

func run(o options) error {
	rows, err := samples.ReadFile(o.input, o.trim)
	if err != nil {
		return err
	}
	r, err := build(rows, o)
	if err != nil {
		return err
	}
	if o.asJSON {
		enc := json.NewEncoder(o.stdout)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "encode summary")
	}
	s := r.Summary
	fmt.Fprintf(o.stdout, "count: %d, average: %.09f (%e), sd: %.09f (%e), median: %.09f (%e), missing: %d/%d\n",
		s.Count, s.Average, s.Average, s.SD, s.SD, s.Median, s.Median, s.Missing1, s.Missing2)
	fmt.Fprintf(o.stdout, "min: %.09f, max: %.09f, Freedman–Diaconis number of bins: %d\n", s.Min, s.Max, r.Bins)
	fmt.Fprintf(o.stdout, "first: %s, last: %s\n", r.First.UTC().Format(time.RFC3339Nano), r.Last.UTC().Format(time.RFC3339Nano))
	return nil
}

func main() {
	app := cli.New("ppsstat", "Summary statistics of a PPS comparer log.", samples.TrimHeaderFooter)
	input := app.Input()
	diffCol := app.Flag("column", "Zero-based column holding the difference.").Default("3").Int()
	timeCol := app.Flag("time-column", "Zero-based column holding the source 1 timestamp.").Default("1").Int()
	missingCol := app.Flag("missing-column", "Zero-based column holding the missing1/missing2 counters.").Default("4").Int()
	asJSON := app.Flag("json", "Print the summary as JSON.").Bool()
	app.MustParse()

	cli.Exit(run(options{
		input:      *input,
		trim:       app.Trim(),
		diffCol:    *diffCol,
		timeCol:    *timeCol,
		missingCol: *missingCol,
		asJSON:     *asJSON,
		stdout:     os.Stdout,
	}))
}
