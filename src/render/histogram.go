package render

import (
	"io"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Histogram is a pre-binned histogram: len(Edges) == len(Counts)+1.
type Histogram struct {
	Title  string
	XLabel string
	YLabel string
	Label  string // legend entry
	Edges  []float64
	Counts []float64
	Figure Figure
}

// stepOutline turns bins into the closed outline of adjacent bars so a single
// filled series draws the whole histogram.
func stepOutline(edges, counts []float64) (xs, ys []float64) {
	xs = make([]float64, 0, 2*len(counts)+2)
	ys = make([]float64, 0, 2*len(counts)+2)
	xs = append(xs, edges[0])
	ys = append(ys, 0)
	for i, c := range counts {
		xs = append(xs, edges[i], edges[i+1])
		ys = append(ys, c, c)
	}
	xs = append(xs, edges[len(edges)-1])
	ys = append(ys, 0)
	return xs, ys
}

func (h Histogram) chart() (chart.Chart, error) {
	if len(h.Counts) == 0 || len(h.Edges) != len(h.Counts)+1 {
		return chart.Chart{}, errors.Errorf("histogram: %d edges for %d bins", len(h.Edges), len(h.Counts))
	}
	xs, ys := stepOutline(h.Edges, h.Counts)
	maxCount := 0.0
	for _, c := range h.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount <= 0 {
		maxCount = 1
	}
	xTicks := niceTicks(h.Edges[0], h.Edges[len(h.Edges)-1], 8)
	_, yMax := niceAxisBounds(0, maxCount)
	yTicks := niceTicks(0, yMax, 6)

	fig := h.Figure
	if fig.DPI == 0 {
		fig = DefaultFigure
	}
	w, ht := fig.Pixels()
	st := chart.Style{
		StrokeColor: chart.ColorBlue,
		StrokeWidth: 1,
		FillColor:   chart.ColorBlue.WithAlpha(160),
	}
	ch := chart.Chart{
		Title:      h.Title,
		Width:      w,
		Height:     ht,
		DPI:        fig.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: h.XLabel, Range: tickRange(xTicks), Ticks: xTicks},
		YAxis:      chart.YAxis{Name: h.YLabel, Range: tickRange(yTicks), Ticks: yTicks},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: h.Label, XValues: xs, YValues: ys, Style: st},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}

// Render writes the histogram as SVG.
func (h Histogram) Render(w io.Writer) error {
	ch, err := h.chart()
	if err != nil {
		return err
	}
	if err := ch.Render(chart.SVG, w); err != nil {
		return errors.Wrap(err, "render histogram")
	}
	return nil
}
