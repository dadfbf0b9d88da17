package metrics

import (
	"math/cmplx"
	"strings"

	"github.com/mjibson/go-dsp/fft"

	"github.com/EEseka/physiquest/internal/engine"
)

// Frequency is the dominant frequency of a uniformly sampled curve, taken
// from the largest non-DC bin of its spectrum. X is read as time, so the
// value is in cycles per X unit. Resolution is one cycle per sampled span.
type Frequency struct {
	name  string
	ys    []float64
	first float64
	last  float64
}

func NewFrequency() *Frequency {
	return &Frequency{name: "frequency"}
}

func (f *Frequency) Name() string { return f.name }

func (f *Frequency) Observe(p engine.Point) {
	if len(f.ys) == 0 {
		f.first = p.X
	}
	f.last = p.X
	f.ys = append(f.ys, p.Y)
}

func (f *Frequency) Value() float64 {
	n := len(f.ys)
	if n < 4 || f.last <= f.first {
		return 0
	}

	var mean float64
	for _, y := range f.ys {
		mean += y
	}
	mean /= float64(n)
	centred := make([]float64, n)
	for i, y := range f.ys {
		centred[i] = y - mean
	}

	spectrum := fft.FFTReal(centred)
	best, peak := 0, 0.0
	for k := 1; k <= n/2; k++ {
		if m := cmplx.Abs(spectrum[k]); m > peak {
			best, peak = k, m
		}
	}
	if best == 0 {
		return 0
	}
	dt := (f.last - f.first) / float64(n-1)
	return float64(best) / (float64(n) * dt)
}

func (f *Frequency) Reset() {
	f.ys = f.ys[:0]
	f.first, f.last = 0, 0
}

// Oscillation returns the metrics that only make sense against time.
func Oscillation() []Metric {
	return []Metric{NewFrequency()}
}

func timeAxis(label string) bool {
	return strings.HasPrefix(label, "t ")
}
