package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Summary mirrors the footer the comparer prints when it stops.
type Summary struct {
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
	SD       float64 `json:"sd"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Missing1 int     `json:"missing1"`
	Missing2 int     `json:"missing2"`
}

// Summarize computes count, mean, population standard deviation and median.
func Summarize(diffs []float64) (Summary, error) {
	if len(diffs) == 0 {
		return Summary{}, errors.Wrap(ErrDegenerate, "no values")
	}
	cp := append([]float64(nil), diffs...)
	sort.Float64s(cp)
	mean, sd := stat.PopMeanStdDev(cp, nil)
	return Summary{
		Count:   len(cp),
		Average: mean,
		SD:      sd,
		Median:  percentileSorted(cp, 50),
		Min:     cp[0],
		Max:     cp[len(cp)-1],
	}, nil
}

// ParseMissing reads the "m1/m2" counter column.
func ParseMissing(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, errors.Errorf("missing counter %q: want m1/m2", s)
	}
	m1, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "missing counter %q", s)
	}
	m2, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "missing counter %q", s)
	}
	return m1, m2, nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
