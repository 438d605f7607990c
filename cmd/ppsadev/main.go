// ppsadev compares the stability of two PPS sources. The pulse timestamps of
// each source are gap-filled to one sample per second and their gradient Allan
// deviation is plotted on log-log axes.
//
//	ppsadev [--taus=octave] [--ci=0.9] pps.log adev.svg
package main

import (
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
	dev    analysis.DevOptions
}

// sources splits the rows into the two gap-filled timestamp sequences.
func sources(rows []samples.Row) ([2][]float64, error) {
	var out [2][]float64
	table, err := samples.Table(rows, 3)
	if err != nil {
		return out, err
	}
	for i := range out {
		filled, rep := samples.GapFill(samples.Pick(table, i))
		if rep.Backwards > 0 {
			logger.Warnf("source %d: index did not advance %d times; result is undefined for such input", i+1, rep.Backwards)
		}
		logger.Infof("source %d: %d samples, %d missing in %d gaps", i+1, len(filled), rep.Inserted, rep.Gaps)
		out[i] = filled
	}
	return out, nil
}

func run(o options) error {
	defer logger.TimeTrack(time.Now(), "ppsadev")
	rows, err := samples.ReadFile(o.input, o.trim)
	if err != nil {
		return err
	}
	seqs, err := sources(rows)
	if err != nil {
		return err
	}
	plot := render.Stability{
		Title:  "pps sources compared",
		XLabel: "Tau (s)",
		YLabel: "Gradient ADEV",
		Grid:   true,
	}
	for i, seq := range seqs {
		pts, err := analysis.GradientADEV(seq, o.dev)
		if err != nil {
			return err
		}
		for _, p := range pts {
			logger.Debugf("source %d tau=%g adev=%g (-%g/+%g) n=%d", i+1, p.Tau, p.Dev, p.ErrLow, p.ErrHigh, p.N)
		}
		plot.Curves = append(plot.Curves, render.DevCurve{Label: sourceLabel(i), Points: pts})
	}
	return render.WriteFile(o.output, plot)
}

func sourceLabel(i int) string {
	return [...]string{"source 1", "source 2"}[i]
}

func main() {
	app := cli.New("ppsadev", "Gradient Allan deviation of two PPS sources, written as SVG.", samples.TrimFooter)
	input := app.Input()
	output := app.Output()
	rate := app.Flag("rate", "Sample rate in Hz.").Default("1").Float64()
	taus := app.Flag("taus", "Averaging factors: octave, decade or all.").Default(string(analysis.TausOctave)).
		Enum(string(analysis.TausOctave), string(analysis.TausDecade), string(analysis.TausAll))
	ci := app.Flag("ci", "Confidence level of the error bars.").Default("0.9").Float64()
	noise := app.Flag("noise", "Noise type for the degrees of freedom: wp, fp, wf, ff or rw.").Default("wp").
		Enum("wp", "fp", "wf", "ff", "rw")
	app.MustParse()

	n, err := analysis.ParseNoise(*noise)
	cli.Exit(err)
	cli.Exit(run(options{
		input:  *input,
		output: *output,
		trim:   app.Trim(),
		dev: analysis.DevOptions{
			Rate:  *rate,
			Taus:  analysis.TauMode(*taus),
			CI:    *ci,
			Noise: &n,
		},
	}))
}
