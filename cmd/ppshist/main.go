// ppshist renders a histogram of the time difference between two PPS sources.
//
//	ppshist [--column=3] pps.log hist.svg
//
// The first (header) and last (summary) line of the log are skipped. The bin
// count follows the Freedman–Diaconis rule and is printed on stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/folkertvanheusden/pps-comparer/src/analysis"
	"github.com/folkertvanheusden/pps-comparer/src/cli"
	"github.com/folkertvanheusden/pps-comparer/src/logger"
	"github.com/folkertvanheusden/pps-comparer/src/render"
	"github.com/folkertvanheusden/pps-comparer/src/samples"
)

type options struct {
	input  string
	output string
	trim   samples.Trim
	column int
	scale  float64
	stdout io.Writer
}

func run(o options) error {
	defer logger.TimeTrack(time.Now(), "ppshist")
	rows, err := samples.ReadFile(o.input, o.trim)
	if err != nil {
		return err
	}
	values, err := samples.Column(rows, o.column)
	if err != nil {
		return err
	}
	b, err := analysis.FreedmanDiaconis(values)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.stdout, "Freedman–Diaconis number of bins:", b.Bins)
	logger.Debugf("n=%d min=%g max=%g q25=%g q75=%g width=%g", b.N, b.Min, b.Max, b.Q25, b.Q75, b.Width)

	edges, counts, err := analysis.Histogram(values, b.Bins)
	if err != nil {
		return err
	}
	return render.WriteFile(o.output, render.Histogram{
		Title:  "pps time difference",
		YLabel: "count",
		Label:  "difference (s)",
		Edges:  edges,
		Counts: counts,
		Figure: render.Scaled(o.scale),
	})
}

func main() {
	app := cli.New("ppshist", "Histogram of PPS time differences, written as SVG.", samples.TrimHeaderFooter)
	input := app.Input()
	output := app.Output()
	column := app.Flag("column", "Zero-based column holding the difference.").Default("3").Int()
	scale := app.Flag("scale", "Figure size multiplier (6.4x4.8 in at 100 DPI each).").Default("5").Float64()
	app.MustParse()

	cli.Exit(run(options{
		input:  *input,
		output: *output,
		trim:   app.Trim(),
		column: *column,
		scale:  *scale,
		stdout: os.Stdout,
	}))
}
