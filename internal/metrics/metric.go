// Package metrics reduces result curves to summary numbers that are stored
// alongside saved records and shown next to result tables.
package metrics

import "github.com/EEseka/physiquest/internal/engine"

// Metric observes the points of one curve in order.
type Metric interface {
	Name() string
	Observe(p engine.Point)
	Value() float64
	Reset()
}

// Standard returns a fresh instance of every curve metric.
func Standard() []Metric {
	return []Metric{NewPeak(), NewTrough(), NewMean(), NewArea()}
}

// Curve feeds s through ms and returns their values keyed "<curve>.<metric>".
// Empty curves contribute nothing.
func Curve(s engine.Series, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	if len(s.Points) == 0 {
		return out
	}
	for _, m := range ms {
		m.Reset()
		for _, p := range s.Points {
			m.Observe(p)
		}
		out[s.Name+"."+m.Name()] = m.Value()
	}
	return out
}

// Summary runs the standard metrics over every curve of sum, plus the
// oscillation metrics over curves plotted against time.
func Summary(sum engine.Summary) map[string]float64 {
	out := make(map[string]float64)
	ms, osc := Standard(), Oscillation()
	for _, s := range sum.Curves {
		for k, v := range Curve(s, ms...) {
			out[k] = v
		}
		if !timeAxis(s.XLabel) {
			continue
		}
		for k, v := range Curve(s, osc...) {
			out[k] = v
		}
	}
	return out
}
