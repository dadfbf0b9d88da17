package physics

import (
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const rotationSamples = 100

const (
	rtInertia engine.Slot = iota
	rtMass
	rtRadius
	rtAngularVelocity
	rtAngularAcceleration
	rtTorque
	rtTime
	rtFinalAngularVelocity
	rtAngle
	rtAngularMomentum
	rtKinetic
	rtTangentialSpeed
)

// RotationInput describes a rigid body spun up from an initial angular
// velocity under constant torque. Without an explicit moment of inertia,
// mass and radius are treated as a point mass on a massless arm.
type RotationInput struct {
	Inertia             quantity.Quantity
	Mass                quantity.Quantity
	Radius              quantity.Quantity
	AngularVelocity     quantity.Quantity
	AngularAcceleration quantity.Quantity
	Torque              quantity.Quantity
	Time                quantity.Quantity
}

func (in RotationInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"inertia":              in.Inertia,
		"mass":                 in.Mass,
		"radius":               in.Radius,
		"angular_velocity":     in.AngularVelocity,
		"angular_acceleration": in.AngularAcceleration,
		"torque":               in.Torque,
		"time":                 in.Time,
	})
}

type RotationOutputs struct {
	Inertia              quantity.Quantity
	Mass                 quantity.Quantity
	Radius               quantity.Quantity
	AngularVelocity      quantity.Quantity
	AngularAcceleration  quantity.Quantity
	Torque               quantity.Quantity
	Time                 quantity.Quantity
	FinalAngularVelocity quantity.Quantity
	Angle                quantity.Quantity
	AngularMomentum      quantity.Quantity
	KineticEnergy        quantity.Quantity
	TangentialSpeed      quantity.Quantity
}

func (o RotationOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("inertia", "kg·m²", o.Inertia),
		scalar("mass", "kg", o.Mass),
		scalar("radius", "m", o.Radius),
		scalar("angular_velocity", "rad/s", o.AngularVelocity),
		scalar("angular_acceleration", "rad/s²", o.AngularAcceleration),
		scalar("torque", "N·m", o.Torque),
		scalar("time", "s", o.Time),
		scalar("final_angular_velocity", "rad/s", o.FinalAngularVelocity),
		scalar("angle", "rad", o.Angle),
		scalar("angular_momentum", "kg·m²/s", o.AngularMomentum),
		scalar("kinetic_energy", "J", o.KineticEnergy),
		scalar("tangential_speed", "m/s", o.TangentialSpeed),
	}
}

var rotationModel = model{
	rule: validate.Rule{
		Domain:    engine.Rotation,
		Inputs:    []string{"inertia", "mass", "radius", "angular_velocity", "angular_acceleration", "torque", "time"},
		MinInputs: 2,
		Checks: []validate.Check{
			{Quantity: "inertia", Must: validate.Positive()},
			{Quantity: "mass", Must: validate.Positive()},
			{Quantity: "radius", Must: validate.Positive()},
			{Quantity: "time", Must: validate.NonNegative()},
		},
	},
	relations: []engine.Relation{
		{Name: "I = mr²", Needs: engine.Needs(rtMass, rtRadius), Gives: rtInertia, Assumed: true, Eval: func(v engine.Values) (float64, bool) {
			r := v.At(rtRadius)
			return v.At(rtMass) * r * r, true
		}},
		{Name: "τ = Iα", Needs: engine.Needs(rtInertia, rtAngularAcceleration), Gives: rtTorque, Eval: func(v engine.Values) (float64, bool) {
			return v.At(rtInertia) * v.At(rtAngularAcceleration), true
		}},
		{Name: "α = τ/I", Needs: engine.Needs(rtTorque, rtInertia), Gives: rtAngularAcceleration, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(rtTorque), v.At(rtInertia))
		}},
		{Name: "I = τ/α", Needs: engine.Needs(rtTorque, rtAngularAcceleration), Gives: rtInertia, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(rtTorque), v.At(rtAngularAcceleration)))
		}},
		{Name: "ω = ω₀ + αt", Needs: engine.Needs(rtAngularVelocity, rtAngularAcceleration, rtTime), Gives: rtFinalAngularVelocity, Eval: func(v engine.Values) (float64, bool) {
			return v.At(rtAngularVelocity) + v.At(rtAngularAcceleration)*v.At(rtTime), true
		}},
		{Name: "θ = ω₀t + ½αt²", Needs: engine.Needs(rtAngularVelocity, rtAngularAcceleration, rtTime), Gives: rtAngle, Eval: func(v engine.Values) (float64, bool) {
			t := v.At(rtTime)
			return v.At(rtAngularVelocity)*t + 0.5*v.At(rtAngularAcceleration)*t*t, true
		}},
		{Name: "L = Iω₀", Needs: engine.Needs(rtInertia, rtAngularVelocity), Gives: rtAngularMomentum, Eval: func(v engine.Values) (float64, bool) {
			return v.At(rtInertia) * v.At(rtAngularVelocity), true
		}},
		{Name: "KE = ½Iω₀²", Needs: engine.Needs(rtInertia, rtAngularVelocity), Gives: rtKinetic, Eval: func(v engine.Values) (float64, bool) {
			w := v.At(rtAngularVelocity)
			return 0.5 * v.At(rtInertia) * w * w, true
		}},
		{Name: "v_t = ω₀r", Needs: engine.Needs(rtAngularVelocity, rtRadius), Gives: rtTangentialSpeed, Eval: func(v engine.Values) (float64, bool) {
			return v.At(rtAngularVelocity) * v.At(rtRadius), true
		}},
	},
}

// Rotation applies τ = Iα and the constant angular acceleration equations.
func Rotation(in RotationInput) (engine.Result[RotationOutputs], error) {
	return rotation(in.Set())
}

func rotation(in quantity.Set) (engine.Result[RotationOutputs], error) {
	v, err := rotationModel.solve(in)
	if err != nil {
		return engine.Result[RotationOutputs]{}, err
	}

	out := RotationOutputs{
		Inertia:              v.Quantity(rtInertia),
		Mass:                 v.Quantity(rtMass),
		Radius:               v.Quantity(rtRadius),
		AngularVelocity:      v.Quantity(rtAngularVelocity),
		AngularAcceleration:  v.Quantity(rtAngularAcceleration),
		Torque:               v.Quantity(rtTorque),
		Time:                 v.Quantity(rtTime),
		FinalAngularVelocity: v.Quantity(rtFinalAngularVelocity),
		Angle:                v.Quantity(rtAngle),
		AngularMomentum:      v.Quantity(rtAngularMomentum),
		KineticEnergy:        v.Quantity(rtKinetic),
		TangentialSpeed:      v.Quantity(rtTangentialSpeed),
	}

	var curves []engine.Series
	if v.HasAll(engine.Needs(rtAngularVelocity, rtAngularAcceleration, rtTime)) {
		w0, a, t := v.At(rtAngularVelocity), v.At(rtAngularAcceleration), v.At(rtTime)
		curves = append(curves,
			engine.Series{
				Name: "angle", XLabel: "t (s)", YLabel: "θ (rad)",
				Points: engine.Sample(0, t, rotationSamples, func(x float64) float64 {
					return w0*x + 0.5*a*x*x
				}),
			},
			engine.Series{
				Name: "angular_velocity", XLabel: "t (s)", YLabel: "ω (rad/s)",
				Points: engine.Sample(0, t, rotationSamples, func(x float64) float64 {
					return w0 + a*x
				}),
			},
		)
	}

	return engine.Assemble(engine.Rotation, out, curves, nil)
}
