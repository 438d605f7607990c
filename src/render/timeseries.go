package render

import (
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
)

// TimeSeries is a line chart of values over wall-clock time.
type TimeSeries struct {
	Title    string
	XLabel   string
	YLabel   string
	Label    string
	Times    []time.Time
	Values   []float64
	Location *time.Location // nil means local time
	Figure   Figure
}

const timeLabelFormat = "2006-01-02 15:04:05"

func (s TimeSeries) chart() (chart.Chart, error) {
	if len(s.Times) == 0 || len(s.Times) != len(s.Values) {
		return chart.Chart{}, errors.Errorf("time series: %d times for %d values", len(s.Times), len(s.Values))
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	minT, maxT := s.Times[0], s.Times[0]
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for i, t := range s.Times {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
		if v := s.Values[i]; !math.IsNaN(v) {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	if minY > maxY {
		return chart.Chart{}, errors.New("time series: no finite values")
	}
	// go-chart refuses a zero-width range; pad single-instant series by a second each side.
	minF, maxF := chart.TimeToFloat64(minT), chart.TimeToFloat64(maxT)
	if !maxT.After(minT) {
		minF = chart.TimeToFloat64(minT.Add(-time.Second))
		maxF = chart.TimeToFloat64(maxT.Add(time.Second))
	}
	yMin, yMax := niceAxisBounds(minY, maxY)
	yTicks := niceTicks(yMin, yMax, 8)

	fig := s.Figure
	if fig.DPI == 0 {
		fig = DefaultFigure
	}
	w, h := fig.Pixels()
	ch := chart.Chart{
		Title:      s.Title,
		Width:      w,
		Height:     h,
		DPI:        fig.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:           s.XLabel,
			Range:          &chart.ContinuousRange{Min: minF, Max: maxF},
			ValueFormatter: timeFormatter(loc),
		},
		YAxis: chart.YAxis{Name: s.YLabel, Range: tickRange(yTicks), Ticks: yTicks},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    s.Label,
				XValues: s.Times,
				YValues: s.Values,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 1},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}

// timeFormatter labels X ticks, which go-chart hands over as Unix nanoseconds, in loc.
func timeFormatter(loc *time.Location) chart.ValueFormatter {
	return func(v interface{}) string {
		switch tv := v.(type) {
		case float64:
			return time.Unix(0, int64(tv)).In(loc).Format(timeLabelFormat)
		case time.Time:
			return tv.In(loc).Format(timeLabelFormat)
		}
		return ""
	}
}

// Render writes the time series as SVG.
func (s TimeSeries) Render(w io.Writer) error {
	ch, err := s.chart()
	if err != nil {
		return err
	}
	if err := ch.Render(chart.SVG, w); err != nil {
		return errors.Wrap(err, "render time series")
	}
	return nil
}
