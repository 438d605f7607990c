// ppsts plots the time difference between two PPS sources over time.
//
//	ppsts [--time-column=0] [--value-column=2] [--utc] pps.log ts.svg
package main

import (
	"time"

	"github.com/folkertvanheusden/pps-comparer/src/cli"
	"github.com/folkertvanheusden/pps-comparer/src/logger"
	"github.com/folkertvanheusden/pps-comparer/src/render"
	"github.com/folkertvanheusden/pps-comparer/src/samples"
)

type options struct {
	input    string
	output   string
	trim     samples.Trim
	timeCol  int
	valueCol int
	utc      bool
	scale    float64
}

// series extracts the plotted X and Y values.
func series(rows []samples.Row, timeCol, valueCol int) ([]time.Time, []float64, error) {
	xs, err := samples.TimeColumn(rows, timeCol)
	if err != nil {
		return nil, nil, err
	}
	ys, err := samples.Column(rows, valueCol)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func run(o options) error {
	defer logger.TimeTrack(time.Now(), "ppsts")
	rows, err := samples.ReadFile(o.input, o.trim)
	if err != nil {
		return err
	}
	xs, ys, err := series(rows, o.timeCol, o.valueCol)
	if err != nil {
		return err
	}
	loc := time.Local
	if o.utc {
		loc = time.UTC
	}
	logger.Debugf("%d points from %s to %s", len(xs), xs[0].In(loc), xs[len(xs)-1].In(loc))
	return render.WriteFile(o.output, render.TimeSeries{
		Title:    "pps time difference",
		XLabel:   "time",
		Label:    "difference in seconds",
		Times:    xs,
		Values:   ys,
		Location: loc,
		Figure:   render.Scaled(o.scale),
	})
}

func main() {
	app := cli.New("ppsts", "Time series of PPS time differences, written as SVG.", samples.TrimFooter)
	input := app.Input()
	output := app.Output()
	timeCol := app.Flag("time-column", "Zero-based column holding the Unix timestamp.").Default("0").Int()
	valueCol := app.Flag("value-column", "Zero-based column holding the plotted value.").Default("2").Int()
	utc := app.Flag("utc", "Label the time axis in UTC instead of local time.").Bool()
	scale := app.Flag("scale", "Figure size multiplier (6.4x4.8 in at 100 DPI each).").Default("5").Float64()
	app.MustParse()

	cli.Exit(run(options{
		input:    *input,
		output:   *output,
		trim:     app.Trim(),
		timeCol:  *timeCol,
		valueCol: *valueCol,
		utc:      *utc,
		scale:    *scale,
	}))
}
