package render

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/folkertvanheusden/pps-comparer/src/analysis"
)

// DevCurve is one labelled stability curve.
type DevCurve struct {
	Label  string
	Points []analysis.DevPoint
}

// Stability overlays deviation curves on log-log axes with error bars.
type Stability struct {
	Title  string
	XLabel string
	YLabel string
	Curves []DevCurve
	Grid   bool
	Width  vg.Length // zero means 6.4in
	Height vg.Length // zero means 4.8in
}

// devXYs adapts points to plotter.XYer/YErrorer, dropping what a log axis cannot show.
type devXYs []analysis.DevPoint

func plottable(pts []analysis.DevPoint) devXYs {
	out := make(devXYs, 0, len(pts))
	for _, p := range pts {
		if !(p.Dev > 0) || math.IsInf(p.Dev, 0) || !(p.Tau > 0) {
			continue
		}
		if !(p.ErrLow < p.Dev) || math.IsNaN(p.ErrLow) || math.IsNaN(p.ErrHigh) {
			p.ErrLow, p.ErrHigh = 0, 0
		}
		out = append(out, p)
	}
	return out
}

func (d devXYs) Len() int                        { return len(d) }
func (d devXYs) XY(i int) (float64, float64)     { return d[i].Tau, d[i].Dev }
func (d devXYs) YError(i int) (float64, float64) { return d[i].ErrLow, d[i].ErrHigh }

func (s Stability) plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	if s.Grid {
		p.Add(plotter.NewGrid())
	}

	drawn := 0
	for i, c := range s.Curves {
		pts := plottable(c.Points)
		if len(pts) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "curve %q", c.Label)
		}
		col := plotutil.Color(i)
		line.Color = col
		points.Color = col
		points.Shape = plotutil.Shape(i)
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "curve %q error bars", c.Label)
		}
		bars.Color = col
		p.Add(line, points, bars)
		p.Legend.Add(c.Label, line, points)
		drawn++
	}
	if drawn == 0 {
		return nil, errors.New("stability plot: no positive deviations to draw")
	}
	widenLog(&p.X)
	widenLog(&p.Y)
	return p, nil
}

// widenLog opens up a degenerate axis (a single tau, or zero-length error bars)
// by a factor of two each way; the linear padding gonum would apply can cross zero.
func widenLog(a *plot.Axis) {
	if a.Max > a.Min {
		return
	}
	v := a.Min
	a.Min, a.Max = v/2, v*2
}

// Render writes the plot as SVG.
func (s Stability) Render(w io.Writer) error {
	p, err := s.plot()
	if err != nil {
		return err
	}
	width, height := s.Width, s.Height
	if width == 0 {
		width = 6.4 * vg.Inch
	}
	if height == 0 {
		height = 4.8 * vg.Inch
	}
	c := vgsvg.New(width, height)
	p.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return errors.Wrap(err, "write svg")
	}
	return nil
}
