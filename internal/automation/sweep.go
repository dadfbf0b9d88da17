package automation

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/physics"
	"github.com/EEseka/physiquest/internal/quantity"
)

// Sweep varies one input of a domain across [Min, Max] in Steps evenly
// spaced values while the other inputs stay at Base.
type Sweep struct {
	Domain engine.Domain
	Base   quantity.Set
	Param  string
	Min    float64
	Max    float64
	Steps  int
}

// SweepPoint is the outcome for one swept value.
type SweepPoint struct {
	Value   float64
	Summary engine.Summary
	Err     error
}

// Values returns the swept values; the last one is exactly Max.
func (s Sweep) Values() []float64 {
	if s.Steps < 2 {
		return []float64{s.Min}
	}
	out := make([]float64, s.Steps)
	step := (s.Max - s.Min) / float64(s.Steps-1)
	for i := range out {
		out[i] = s.Min + float64(i)*step
	}
	out[len(out)-1] = s.Max
	return out
}

func (r *Runner) Sweep(ctx context.Context, sw Sweep) ([]SweepPoint, error) {
	entry, err := physics.Lookup(sw.Domain)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(entry.Inputs(), sw.Param) {
		return nil, fmt.Errorf("%w: %q is not an input of %s", ErrScenario, sw.Param, sw.Domain)
	}
	if sw.Steps < 2 || sw.Max <= sw.Min {
		return nil, fmt.Errorf("%w: sweep needs at least 2 steps over an increasing range", ErrScenario)
	}

	values := sw.Values()
	reqs := make([]request, len(values))
	for i, x := range values {
		in := sw.Base.With(sw.Param, quantity.Of(x))
		reqs[i] = request{domain: sw.Domain, inputs: in, key: memoKey(sw.Domain, in)}
	}

	r.log.Info("running sweep",
		zap.String("domain", string(sw.Domain)),
		zap.String("param", sw.Param),
		zap.Float64("min", sw.Min),
		zap.Float64("max", sw.Max),
		zap.Int("steps", sw.Steps))

	outcomes, err := r.evaluate(ctx, reqs)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, len(values))
	for i, o := range outcomes {
		points[i] = SweepPoint{Value: values[i], Summary: o.Value, Err: o.Err}
	}
	return points, nil
}

// SweepSeries plots the named output scalar against the swept value. Points
// that failed or left the output undetermined are skipped.
func SweepSeries(param, output string, points []SweepPoint) engine.Series {
	s := engine.Series{Name: output, XLabel: param, YLabel: output}
	for _, p := range points {
		if p.Err != nil {
			continue
		}
		y, ok := p.Summary.Scalar(output).Get()
		if !ok {
			continue
		}
		s.Points = append(s.Points, engine.Point{X: p.Value, Y: y})
	}
	return s
}
