package analysis

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrTooShort is returned when a sequence has no averaging factor with
// more than one usable second difference.
var ErrTooShort = errors.New("sequence too short")

// TauMode selects the averaging factors m for which a deviation is computed.
type TauMode string

const (
	TausOctave TauMode = "octave" // 1, 2, 4, 8, ...
	TausDecade TauMode = "decade" // 1, 2, 4, 10, 20, 40, ...
	TausAll    TauMode = "all"    // every m
)

// Noise is the power-law exponent alpha used for the equivalent degrees of freedom.
type Noise int

const (
	NoiseWhitePhase   Noise = 2
	NoiseFlickerPhase Noise = 1
	NoiseWhiteFreq    Noise = 0
	NoiseFlickerFreq  Noise = -1
	NoiseRandomWalk   Noise = -2
)

var noiseNames = map[string]Noise{
	"wp": NoiseWhitePhase,
	"fp": NoiseFlickerPhase,
	"wf": NoiseWhiteFreq,
	"ff": NoiseFlickerFreq,
	"rw": NoiseRandomWalk,
}

// ParseNoise maps the usual two-letter abbreviations (wp, fp, wf, ff, rw) to a Noise.
func ParseNoise(s string) (Noise, error) {
	n, ok := noiseNames[s]
	if !ok {
		return 0, errors.Errorf("unknown noise type %q", s)
	}
	return n, nil
}

// DevOptions parameterise GradientADEV. Zero values select rate 1, octave taus,
// a 90% confidence interval and white phase noise.
type DevOptions struct {
	Rate  float64
	Taus  TauMode
	CI    float64
	Noise *Noise
}

func (o DevOptions) withDefaults() DevOptions {
	if o.Rate == 0 {
		o.Rate = 1
	}
	if o.Taus == "" {
		o.Taus = TausOctave
	}
	if o.CI == 0 {
		o.CI = 0.9
	}
	if o.Noise == nil {
		wp := NoiseWhitePhase
		o.Noise = &wp
	}
	return o
}

// DevPoint is one point of a stability curve. ErrLow and ErrHigh are distances
// below and above Dev.
type DevPoint struct {
	Tau     float64
	M       int
	Dev     float64
	ErrLow  float64
	ErrHigh float64
	N       int
}

// AveragingFactors lists the m values with 2m < n for the given mode.
func AveragingFactors(n int, mode TauMode) ([]int, error) {
	var ms []int
	switch mode {
	case TausOctave:
		for m := 1; 2*m < n; m *= 2 {
			ms = append(ms, m)
		}
	case TausDecade:
		for dec := 1; 2*dec < n; dec *= 10 {
			for _, k := range []int{1, 2, 4} {
				if m := k * dec; 2*m < n {
					ms = append(ms, m)
				}
			}
		}
	case TausAll:
		for m := 1; 2*m < n; m++ {
			ms = append(ms, m)
		}
	default:
		return nil, errors.Errorf("unknown tau mode %q", mode)
	}
	return ms, nil
}

// GradientADEV computes the gradient Allan deviation of phase data (seconds).
// NaN entries mark missing samples; second differences touching them are skipped
// and the deviation is normalised by the number of differences actually used.
func GradientADEV(phase []float64, opts DevOptions) ([]DevPoint, error) {
	opts = opts.withDefaults()
	if !(opts.Rate > 0) {
		return nil, errors.Errorf("invalid rate %g", opts.Rate)
	}
	if !(opts.CI > 0 && opts.CI < 1) {
		return nil, errors.Errorf("invalid confidence level %g", opts.CI)
	}
	ms, err := AveragingFactors(len(phase), opts.Taus)
	if err != nil {
		return nil, err
	}
	valid := 0
	for _, v := range phase {
		if !math.IsNaN(v) {
			valid++
		}
	}
	var out []DevPoint
	for _, m := range ms {
		dev, n := gradevPhase(phase, m, opts.Rate)
		if n <= 1 {
			continue
		}
		p := DevPoint{Tau: float64(m) / opts.Rate, M: m, Dev: dev, N: n}
		edf := EDFSimple(valid, m, *opts.Noise)
		if edf > 0 && finite(edf) {
			lo, hi := ConfidenceInterval(dev, opts.CI, edf)
			p.ErrLow, p.ErrHigh = dev-lo, hi-dev
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrTooShort, "%d samples (%d valid)", len(phase), valid)
	}
	return out, nil
}

func gradevPhase(x []float64, m int, rate float64) (float64, int) {
	n := 0
	s := 0.0
	for i := 0; i+2*m < len(x); i++ {
		v := x[i+2*m] - 2*x[i+m] + x[i]
		if math.IsNaN(v) {
			continue
		}
		s += v * v
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return math.Sqrt(s/(2*float64(n))) / float64(m) * rate, n
}

// EDFSimple returns the equivalent degrees of freedom for N phase samples at
// averaging factor m (simple approximations from Sesia & Tavella, 2008).
func EDFSimple(N, m int, alpha Noise) float64 {
	n := float64(N)
	mf := float64(m)
	switch alpha {
	case NoiseWhitePhase:
		return (n + 1) * (n - 2*mf) / (2 * (n - mf))
	case NoiseWhiteFreq:
		return ((3*(n-1))/(2*mf) - (2*(n-2))/n) * (4 * mf * mf) / (4*mf*mf + 5)
	case NoiseFlickerPhase:
		a := (n - 1) / (2 * mf)
		b := (2*mf + 1) * (n - 1) / 4
		return math.Exp(math.Sqrt(math.Log(a) * math.Log(b)))
	case NoiseFlickerFreq:
		if m == 1 {
			return 2 * (n - 2) / (2.3*n - 4.9)
		}
		return 5 * n * n / (4 * mf * (n + 3*mf))
	case NoiseRandomWalk:
		a := (n - 2) / (mf * (n - 3) * (n - 3))
		return a * ((n-1)*(n-1) - 3*mf*(n-1) + 4*mf*mf)
	}
	return 4.0 / 3.0 * n / mf
}

// ConfidenceInterval returns the chi-squared bounds of dev at confidence ci.
func ConfidenceInterval(dev, ci, edf float64) (lo, hi float64) {
	ciL := math.Min(math.Abs(ci), math.Abs(ci-1)) / 2
	ciH := 1 - ciL
	chi := distuv.ChiSquared{K: edf}
	chiL := chi.Quantile(ciL)
	chiH := chi.Quantile(ciH)
	variance := dev * dev
	return math.Sqrt(edf * variance / chiH), math.Sqrt(edf * variance / chiL)
}
