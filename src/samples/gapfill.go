package samples

import (
	"math"
)

// GapReport describes what GapFill did to a sequence.
type GapReport struct {
	Inserted  int // NaN placeholders added
	Gaps      int // places where at least one placeholder went in
	Backwards int // steps where the integer index did not advance
}

// GapFill rebuilds a 1-per-second sequence from timestamps: whenever the
// integer part jumps by more than one between neighbours, the missing seconds
// are filled with NaN. Steps that go backwards or repeat insert nothing.
func GapFill(values []float64) ([]float64, GapReport) {
	var rep GapReport
	if len(values) == 0 {
		return nil, rep
	}
	out := make([]float64, 0, len(values))
	out = append(out, values[0])
	prev := math.Trunc(values[0])
	for _, v := range values[1:] {
		cur := math.Trunc(v)
		missing := int(cur - prev - 1)
		switch {
		case missing > 0:
			rep.Gaps++
			rep.Inserted += missing
			for i := 0; i < missing; i++ {
				out = append(out, math.NaN())
			}
		case cur <= prev:
			rep.Backwards++
		}
		out = append(out, v)
		prev = cur
	}
	return out, rep
}

// Missing counts NaN entries.
func Missing(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
