package analysis

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func quadraticPhase(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i*i) / 2
	}
	return x
}

func TestGradientADEV(t *testing.T) {
	Convey("When computing the gradient Allan deviation", t, func() {

		Convey("Of linear phase (constant frequency offset)", func() {
			x := make([]float64, 32)
			for i := range x {
				x[i] = 1700000000 + float64(i)
			}
			pts, err := GradientADEV(x, DevOptions{})
			So(err, ShouldBeNil)

			Convey("Every second difference cancels and the deviation is zero", func() {
				for _, p := range pts {
					So(p.Dev, ShouldEqual, 0)
					So(p.ErrHigh, ShouldEqual, 0)
				}
			})
		})

		Convey("Of quadratic phase x = i²/2", func() {
			pts, err := GradientADEV(quadraticPhase(64), DevOptions{})
			So(err, ShouldBeNil)

			Convey("Octave taus stop where 2m reaches the length", func() {
				So(pts, ShouldHaveLength, 5)
				So(pts[0].M, ShouldEqual, 1)
				So(pts[4].M, ShouldEqual, 16)
			})

			Convey("The deviation is m/√2", func() {
				for _, p := range pts {
					So(p.Dev, ShouldAlmostEqual, float64(p.M)/math.Sqrt2, 1e-9)
					So(p.Tau, ShouldEqual, float64(p.M))
					So(p.N, ShouldEqual, 64-2*p.M)
				}
			})

			Convey("Error bars bracket the deviation", func() {
				for _, p := range pts {
					So(p.ErrLow, ShouldBeGreaterThan, 0)
					So(p.ErrHigh, ShouldBeGreaterThan, 0)
					So(p.ErrLow, ShouldBeLessThan, p.Dev)
				}
			})
		})

		Convey("With a sample rate of 10 Hz", func() {
			pts, err := GradientADEV(quadraticPhase(64), DevOptions{Rate: 10})
			So(err, ShouldBeNil)

			Convey("Tau is m/rate and the deviation scales with the rate", func() {
				So(pts[1].Tau, ShouldAlmostEqual, 0.2, 1e-12)
				So(pts[1].Dev, ShouldAlmostEqual, 10*2/math.Sqrt2, 1e-9)
			})
		})

		Convey("With missing samples", func() {
			x := quadraticPhase(64)
			x[10] = math.NaN()
			x[11] = math.NaN()
			pts, err := GradientADEV(x, DevOptions{})
			So(err, ShouldBeNil)

			Convey("Differences touching a gap are skipped, the rest still give m/√2", func() {
				So(pts[0].N, ShouldEqual, 62-4)
				So(pts[0].Dev, ShouldAlmostEqual, 1/math.Sqrt2, 1e-9)
			})
		})

		Convey("Of a sequence that is too short", func() {
			_, err := GradientADEV([]float64{1, 2}, DevOptions{})

			Convey("It reports ErrTooShort", func() {
				So(errors.Cause(err), ShouldEqual, ErrTooShort)
			})
		})

		Convey("With invalid options", func() {
			_, err := GradientADEV(quadraticPhase(8), DevOptions{CI: 1.5})
			So(err, ShouldNotBeNil)
			_, err = GradientADEV(quadraticPhase(8), DevOptions{Taus: "weekly"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAveragingFactors(t *testing.T) {
	Convey("Given 100 samples", t, func() {
		oct, _ := AveragingFactors(100, TausOctave)
		dec, _ := AveragingFactors(100, TausDecade)
		all, _ := AveragingFactors(100, TausAll)

		So(oct, ShouldResemble, []int{1, 2, 4, 8, 16, 32})
		So(dec, ShouldResemble, []int{1, 2, 4, 10, 20, 40})
		So(all, ShouldHaveLength, 49)
	})
}

func TestEDFAndConfidence(t *testing.T) {
	Convey("White phase EDF follows (N+1)(N-2m)/(2(N-m))", t, func() {
		So(EDFSimple(64, 1, NoiseWhitePhase), ShouldAlmostEqual, 65.0*62/(2*63), 1e-12)
	})

	Convey("The confidence interval narrows with more degrees of freedom", t, func() {
		lo1, hi1 := ConfidenceInterval(1, 0.9, 5)
		lo2, hi2 := ConfidenceInterval(1, 0.9, 500)
		So(lo1, ShouldBeLessThan, 1)
		So(hi1, ShouldBeGreaterThan, 1)
		So(hi2-lo2, ShouldBeLessThan, hi1-lo1)
	})

	Convey("Noise names parse", t, func() {
		n, err := ParseNoise("wf")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, NoiseWhiteFreq)
		_, err = ParseNoise("pink")
		So(err, ShouldNotBeNil)
	})
}
