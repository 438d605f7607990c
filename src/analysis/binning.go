// Package analysis holds the numeric side of the PPS tools: quantiles and
// histogram binning for time differences, gradient Allan deviation for the
// pulse timestamps, and the end-of-run summary.
package analysis

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrDegenerate is returned when the data spread does not allow a histogram
// (zero interquartile range, or all values identical).
var ErrDegenerate = errors.New("degenerate data")

// Percentile returns the p-th percentile (0..100) of a, interpolating linearly
// between closest ranks (Hyndman and Fan type 7).
func Percentile(a []float64, p float64) float64 {
	if len(a) == 0 {
		return math.NaN()
	}
	cp := append([]float64(nil), a...)
	sort.Float64s(cp)
	return percentileSorted(cp, p)
}

func percentileSorted(cp []float64, p float64) float64 {
	if p <= 0 {
		return cp[0]
	}
	if p >= 100 {
		return cp[len(cp)-1]
	}
	pos := p / 100 * float64(len(cp)-1)
	lo := math.Floor(pos)
	i := int(lo)
	if i+1 >= len(cp) {
		return cp[len(cp)-1]
	}
	frac := pos - lo
	return cp[i] + frac*(cp[i+1]-cp[i])
}

// Binning is the outcome of the Freedman–Diaconis rule.
type Binning struct {
	N        int
	Min, Max float64
	Q25, Q75 float64
	Width    float64 // 2*IQR*n^(-1/3)
	Bins     int     // round((max-min)/width)
}

// FreedmanDiaconis chooses a histogram bin count for values.
func FreedmanDiaconis(values []float64) (Binning, error) {
	if len(values) == 0 {
		return Binning{}, errors.Wrap(ErrDegenerate, "no values")
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	b := Binning{
		N:   len(cp),
		Min: cp[0],
		Max: cp[len(cp)-1],
		Q25: percentileSorted(cp, 25),
		Q75: percentileSorted(cp, 75),
	}
	b.Width = 2 * (b.Q75 - b.Q25) * math.Pow(float64(b.N), -1.0/3)
	if !(b.Width > 0) {
		return b, errors.Wrapf(ErrDegenerate, "bin width %g (q25=%g q75=%g)", b.Width, b.Q25, b.Q75)
	}
	bins := math.RoundToEven((b.Max - b.Min) / b.Width)
	if bins < 1 || math.IsInf(bins, 0) || math.IsNaN(bins) {
		return b, errors.Wrapf(ErrDegenerate, "bin count %g (range %g, width %g)", bins, b.Max-b.Min, b.Width)
	}
	b.Bins = int(bins)
	return b, nil
}

// Histogram counts values into bins equal-width bins over [min, max].
// The last bin is closed so max itself is counted. It returns bins+1 edges and bins counts.
func Histogram(values []float64, bins int) (edges, counts []float64, err error) {
	if bins < 1 {
		return nil, nil, errors.Wrapf(ErrDegenerate, "bin count %d", bins)
	}
	if len(values) == 0 {
		return nil, nil, errors.Wrap(ErrDegenerate, "no values")
	}
	x := append([]float64(nil), values...)
	sort.Float64s(x)
	lo, hi := x[0], x[len(x)-1]
	if !(hi > lo) {
		return nil, nil, errors.Wrapf(ErrDegenerate, "range [%g, %g]", lo, hi)
	}
	edges = floats.Span(make([]float64, bins+1), lo, hi)
	dividers := append([]float64(nil), edges...)
	// stat.Histogram treats the last divider as exclusive.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(nil, dividers, x, nil)
	return edges, counts, nil
}
