package physics

import (
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const kinematicsSamples = 100

const (
	kmInitialVelocity engine.Slot = iota
	kmFinalVelocity
	kmAcceleration
	kmTime
	kmDisplacement
	kmAverageVelocity
)

// KinematicsInput is straight-line motion under constant acceleration.
type KinematicsInput struct {
	InitialVelocity quantity.Quantity
	FinalVelocity   quantity.Quantity
	Acceleration    quantity.Quantity
	Time            quantity.Quantity
	Displacement    quantity.Quantity
}

func (in KinematicsInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"initial_velocity": in.InitialVelocity,
		"final_velocity":   in.FinalVelocity,
		"acceleration":     in.Acceleration,
		"time":             in.Time,
		"displacement":     in.Displacement,
	})
}

type KinematicsOutputs struct {
	InitialVelocity quantity.Quantity
	FinalVelocity   quantity.Quantity
	Acceleration    quantity.Quantity
	Time            quantity.Quantity
	Displacement    quantity.Quantity
	AverageVelocity quantity.Quantity
}

func (o KinematicsOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("initial_velocity", "m/s", o.InitialVelocity),
		scalar("final_velocity", "m/s", o.FinalVelocity),
		scalar("acceleration", "m/s²", o.Acceleration),
		scalar("time", "s", o.Time),
		scalar("displacement", "m", o.Displacement),
		scalar("average_velocity", "m/s", o.AverageVelocity),
	}
}

// earliestTime returns the smallest t >= 0 with s = ut + ½at².
func earliestTime(u, a, s float64) (float64, bool) {
	if a == 0 {
		return nonNegative(div(s, u))
	}
	r, ok := sqrt(u*u + 2*a*s)
	if !ok {
		return 0, false
	}
	t1, t2 := (-u-r)/a, (-u+r)/a
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 >= 0 {
		return t1, true
	}
	return t2, t2 >= 0
}

var kinematicsModel = model{
	rule: validate.Rule{
		Domain:    engine.Kinematics,
		Inputs:    []string{"initial_velocity", "final_velocity", "acceleration", "time", "displacement"},
		MinInputs: 3,
		Checks: []validate.Check{
			{Quantity: "time", Must: validate.NonNegative()},
		},
	},
	relations: []engine.Relation{
		{Name: "v = u + at", Needs: engine.Needs(kmInitialVelocity, kmAcceleration, kmTime), Gives: kmFinalVelocity, Eval: func(v engine.Values) (float64, bool) {
			return v.At(kmInitialVelocity) + v.At(kmAcceleration)*v.At(kmTime), true
		}},
		{Name: "s = ut + ½at²", Needs: engine.Needs(kmInitialVelocity, kmAcceleration, kmTime), Gives: kmDisplacement, Eval: func(v engine.Values) (float64, bool) {
			t := v.At(kmTime)
			return v.At(kmInitialVelocity)*t + 0.5*v.At(kmAcceleration)*t*t, true
		}},
		{Name: "u = v - at", Needs: engine.Needs(kmFinalVelocity, kmAcceleration, kmTime), Gives: kmInitialVelocity, Eval: func(v engine.Values) (float64, bool) {
			return v.At(kmFinalVelocity) - v.At(kmAcceleration)*v.At(kmTime), true
		}},
		{Name: "a = (v - u)/t", Needs: engine.Needs(kmInitialVelocity, kmFinalVelocity, kmTime), Gives: kmAcceleration, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(kmFinalVelocity)-v.At(kmInitialVelocity), v.At(kmTime))
		}},
		{Name: "t = (v - u)/a", Needs: engine.Needs(kmInitialVelocity, kmFinalVelocity, kmAcceleration), Gives: kmTime, Eval: func(v engine.Values) (float64, bool) {
			return nonNegative(div(v.At(kmFinalVelocity)-v.At(kmInitialVelocity), v.At(kmAcceleration)))
		}},
		{Name: "t = 2s/(u + v)", Needs: engine.Needs(kmInitialVelocity, kmFinalVelocity, kmDisplacement), Gives: kmTime, Eval: func(v engine.Values) (float64, bool) {
			return nonNegative(div(2*v.At(kmDisplacement), v.At(kmInitialVelocity)+v.At(kmFinalVelocity)))
		}},
		{Name: "s = (u + v)t/2", Needs: engine.Needs(kmInitialVelocity, kmFinalVelocity, kmTime), Gives: kmDisplacement, Eval: func(v engine.Values) (float64, bool) {
			return (v.At(kmInitialVelocity) + v.At(kmFinalVelocity)) * v.At(kmTime) / 2, true
		}},
		{Name: "s = (v² - u²)/2a", Needs: engine.Needs(kmInitialVelocity, kmFinalVelocity, kmAcceleration), Gives: kmDisplacement, Eval: func(v engine.Values) (float64, bool) {
			u, w := v.At(kmInitialVelocity), v.At(kmFinalVelocity)
			return div(w*w-u*u, 2*v.At(kmAcceleration))
		}},
		{Name: "a = (v² - u²)/2s", Needs: engine.Needs(kmInitialVelocity, kmFinalVelocity, kmDisplacement), Gives: kmAcceleration, Eval: func(v engine.Values) (float64, bool) {
			u, w := v.At(kmInitialVelocity), v.At(kmFinalVelocity)
			return div(w*w-u*u, 2*v.At(kmDisplacement))
		}},
		{Name: "u = 2s/t - v", Needs: engine.Needs(kmFinalVelocity, kmDisplacement, kmTime), Gives: kmInitialVelocity, Eval: func(v engine.Values) (float64, bool) {
			x, ok := div(2*v.At(kmDisplacement), v.At(kmTime))
			return x - v.At(kmFinalVelocity), ok
		}},
		{Name: "v = 2s/t - u", Needs: engine.Needs(kmInitialVelocity, kmDisplacement, kmTime), Gives: kmFinalVelocity, Eval: func(v engine.Values) (float64, bool) {
			x, ok := div(2*v.At(kmDisplacement), v.At(kmTime))
			return x - v.At(kmInitialVelocity), ok
		}},
		{Name: "a = 2(s - ut)/t²", Needs: engine.Needs(kmInitialVelocity, kmDisplacement, kmTime), Gives: kmAcceleration, Eval: func(v engine.Values) (float64, bool) {
			t := v.At(kmTime)
			return div(2*(v.At(kmDisplacement)-v.At(kmInitialVelocity)*t), t*t)
		}},
		{Name: "u = s/t - ½at", Needs: engine.Needs(kmAcceleration, kmDisplacement, kmTime), Gives: kmInitialVelocity, Eval: func(v engine.Values) (float64, bool) {
			t := v.At(kmTime)
			x, ok := div(v.At(kmDisplacement), t)
			return x - 0.5*v.At(kmAcceleration)*t, ok
		}},
		// The quadratic in t has two roots; the earliest non-negative one is taken.
		{Name: "t from s = ut + ½at²", Needs: engine.Needs(kmInitialVelocity, kmAcceleration, kmDisplacement), Gives: kmTime, Assumed: true, Eval: func(v engine.Values) (float64, bool) {
			return earliestTime(v.At(kmInitialVelocity), v.At(kmAcceleration), v.At(kmDisplacement))
		}},
		{Name: "t from s = vt - ½at²", Needs: engine.Needs(kmFinalVelocity, kmAcceleration, kmDisplacement), Gives: kmTime, Assumed: true, Eval: func(v engine.Values) (float64, bool) {
			// time-reversed motion: start at v, accelerate at -a
			return earliestTime(v.At(kmFinalVelocity), -v.At(kmAcceleration), v.At(kmDisplacement))
		}},
		{Name: "v_avg = (u + v)/2", Needs: engine.Needs(kmInitialVelocity, kmFinalVelocity), Gives: kmAverageVelocity, Eval: func(v engine.Values) (float64, bool) {
			return (v.At(kmInitialVelocity) + v.At(kmFinalVelocity)) / 2, true
		}},
	},
}

// Kinematics solves the constant-acceleration equations from any three of
// the five motion quantities.
func Kinematics(in KinematicsInput) (engine.Result[KinematicsOutputs], error) {
	return kinematics(in.Set())
}

func kinematics(in quantity.Set) (engine.Result[KinematicsOutputs], error) {
	v, err := kinematicsModel.solve(in)
	if err != nil {
		return engine.Result[KinematicsOutputs]{}, err
	}

	out := KinematicsOutputs{
		InitialVelocity: v.Quantity(kmInitialVelocity),
		FinalVelocity:   v.Quantity(kmFinalVelocity),
		Acceleration:    v.Quantity(kmAcceleration),
		Time:            v.Quantity(kmTime),
		Displacement:    v.Quantity(kmDisplacement),
		AverageVelocity: v.Quantity(kmAverageVelocity),
	}

	var curves []engine.Series
	if v.HasAll(engine.Needs(kmInitialVelocity, kmAcceleration, kmTime)) {
		u, a, t := v.At(kmInitialVelocity), v.At(kmAcceleration), v.At(kmTime)
		curves = append(curves,
			engine.Series{
				Name: "position", XLabel: "t (s)", YLabel: "s (m)",
				Points: engine.Sample(0, t, kinematicsSamples, func(x float64) float64 {
					return u*x + 0.5*a*x*x
				}),
			},
			engine.Series{
				Name: "velocity", XLabel: "t (s)", YLabel: "v (m/s)",
				Points: engine.Sample(0, t, kinematicsSamples, func(x float64) float64 {
					return u + a*x
				}),
			},
		)
	}

	return engine.Assemble(engine.Kinematics, out, curves, nil)
}
