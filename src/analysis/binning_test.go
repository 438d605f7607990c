package analysis

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestPercentile_LinearInterpolation(t *testing.T) {
	vals := []float64{5, 1, 4, 2, 3, 3, 2, 4, 3}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1}, {25, 2}, {50, 3}, {75, 4}, {100, 5}, {10, 1.8},
	}
	for _, c := range cases {
		if got := Percentile(vals, c.p); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("p%.0f: got %v want %v", c.p, got, c.want)
		}
	}
	// input must not be reordered
	if vals[0] != 5 {
		t.Fatalf("Percentile sorted its input in place")
	}
	if !math.IsNaN(Percentile(nil, 50)) {
		t.Fatalf("expected NaN for empty input")
	}
	if got := Percentile([]float64{1, 2, 3, 4}, 50); got != 2.5 {
		t.Fatalf("even median: got %v", got)
	}
}

func TestFreedmanDiaconis_HandComputed(t *testing.T) {
	b, err := FreedmanDiaconis([]float64{1, 2, 2, 3, 3, 3, 4, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// IQR = 4-2 = 2, width = 4 / 9^(1/3) ≈ 1.923, range 4 → 2.08 → 2 bins
	if b.Q25 != 2 || b.Q75 != 4 {
		t.Fatalf("quartiles: got %v/%v", b.Q25, b.Q75)
	}
	if math.Abs(b.Width-1.9230) > 1e-3 {
		t.Fatalf("width: got %v", b.Width)
	}
	if b.Bins != 2 {
		t.Fatalf("bins: got %d want 2", b.Bins)
	}
}

func TestFreedmanDiaconis_Degenerate(t *testing.T) {
	cases := map[string][]float64{
		"empty":     nil,
		"single":    {1},
		"zero IQR":  {3, 3, 3, 3, 3, 9},
		"all equal": {2, 2, 2},
	}
	for name, vals := range cases {
		if _, err := FreedmanDiaconis(vals); errors.Cause(err) != ErrDegenerate {
			t.Fatalf("%s: expected ErrDegenerate, got %v", name, err)
		}
	}
}

func TestHistogram_LastBinClosed(t *testing.T) {
	edges, counts, err := Histogram([]float64{1, 2, 2, 3, 3, 3, 4, 4, 5}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 3 || edges[0] != 1 || edges[1] != 3 || edges[2] != 5 {
		t.Fatalf("edges: %v", edges)
	}
	if counts[0] != 3 || counts[1] != 6 {
		t.Fatalf("counts: %v", counts)
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 9 {
		t.Fatalf("every value must be counted once, got %v", total)
	}
}

func TestHistogram_Errors(t *testing.T) {
	if _, _, err := Histogram([]float64{1, 2}, 0); errors.Cause(err) != ErrDegenerate {
		t.Fatalf("expected ErrDegenerate for zero bins, got %v", err)
	}
	if _, _, err := Histogram([]float64{1, 1}, 3); errors.Cause(err) != ErrDegenerate {
		t.Fatalf("expected ErrDegenerate for empty range, got %v", err)
	}
}
