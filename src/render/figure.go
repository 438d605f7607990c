// Package render draws the PPS charts as SVG. Histograms and time series go
// through go-chart, the log-log stability plot through gonum/plot.
package render

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Figure is a page size in inches plus a resolution.
type Figure struct {
	WidthIn  float64
	HeightIn float64
	DPI      float64
}

// Scaled returns the 6.4x4.8 inch, 100 DPI base figure with every dimension multiplied by mul.
func Scaled(mul float64) Figure {
	return Figure{WidthIn: 6.4 * mul, HeightIn: 4.8 * mul, DPI: 100 * mul}
}

// DefaultFigure is the large figure used by the histogram and time series (mul=5).
var DefaultFigure = Scaled(5)

// Pixels returns the canvas size in pixels.
func (f Figure) Pixels() (int, int) {
	return int(f.WidthIn*f.DPI + 0.5), int(f.HeightIn*f.DPI + 0.5)
}

// Renderer writes one chart.
type Renderer interface {
	Render(w io.Writer) error
}

// WriteFile renders r fully in memory and only then writes path.
func WriteFile(path string, r Renderer) error {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
