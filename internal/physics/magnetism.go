package physics

import (
	"math"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const (
	forceAngleSamples   = 181
	fieldCurrentSamples = 50
	orbitSamples        = 121
)

const (
	mgCharge engine.Slot = iota
	mgVelocity
	mgField
	mgAngle
	mgMass
	mgCurrent
	mgWireLength
	mgTurns
	mgSolenoidLength
	mgArea
	mgFlux
	mgLorentzForce
	mgWireForce
	mgCyclotronRadius
	mgCyclotronPeriod
	mgCyclotronFrequency
)

// MagnetismInput covers a charge moving through a uniform field, a straight
// current-carrying wire in that field, and the field inside a long solenoid.
// Angle is in degrees between the velocity (or wire) and the field and
// defaults to 90.
type MagnetismInput struct {
	Charge         quantity.Quantity
	Velocity       quantity.Quantity
	Field          quantity.Quantity
	Angle          quantity.Quantity
	Mass           quantity.Quantity
	Current        quantity.Quantity
	WireLength     quantity.Quantity
	Turns          quantity.Quantity
	SolenoidLength quantity.Quantity
	Area           quantity.Quantity
}

func (in MagnetismInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"charge":          in.Charge,
		"velocity":        in.Velocity,
		"field":           in.Field,
		"angle":           in.Angle,
		"mass":            in.Mass,
		"current":         in.Current,
		"wire_length":     in.WireLength,
		"turns":           in.Turns,
		"solenoid_length": in.SolenoidLength,
		"area":            in.Area,
	})
}

type MagnetismOutputs struct {
	Charge             quantity.Quantity
	Velocity           quantity.Quantity
	Field              quantity.Quantity
	Angle              quantity.Quantity
	Mass               quantity.Quantity
	Current            quantity.Quantity
	WireLength         quantity.Quantity
	Turns              quantity.Quantity
	SolenoidLength     quantity.Quantity
	Area               quantity.Quantity
	Flux               quantity.Quantity
	LorentzForce       quantity.Quantity
	WireForce          quantity.Quantity
	CyclotronRadius    quantity.Quantity
	CyclotronPeriod    quantity.Quantity
	CyclotronFrequency quantity.Quantity
}

func (o MagnetismOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("charge", "C", o.Charge),
		scalar("velocity", "m/s", o.Velocity),
		scalar("field", "T", o.Field),
		scalar("angle", "deg", o.Angle),
		scalar("mass", "kg", o.Mass),
		scalar("current", "A", o.Current),
		scalar("wire_length", "m", o.WireLength),
		scalar("turns", "", o.Turns),
		scalar("solenoid_length", "m", o.SolenoidLength),
		scalar("area", "m²", o.Area),
		scalar("flux", "Wb", o.Flux),
		scalar("lorentz_force", "N", o.LorentzForce),
		scalar("wire_force", "N", o.WireForce),
		scalar("cyclotron_radius", "m", o.CyclotronRadius),
		scalar("cyclotron_period", "s", o.CyclotronPeriod),
		scalar("cyclotron_frequency", "Hz", o.CyclotronFrequency),
	}
}

var magnetismModel = model{
	rule: validate.Rule{
		Domain: engine.Magnetism,
		Inputs: []string{
			"charge", "velocity", "field", "angle", "mass",
			"current", "wire_length", "turns", "solenoid_length", "area",
		},
		MinInputs: 1,
		Checks: []validate.Check{
			{Quantity: "charge", Must: validate.NonZero()},
			{Quantity: "velocity", Must: validate.NonNegative()},
			{Quantity: "field", Must: validate.NonNegative()},
			{Quantity: "angle", Must: validate.Between(0, 180)},
			{Quantity: "mass", Must: validate.Positive()},
			{Quantity: "wire_length", Must: validate.Positive()},
			{Quantity: "turns", Must: validate.Positive()},
			{Quantity: "solenoid_length", Must: validate.Positive()},
			{Quantity: "area", Must: validate.Positive()},
		},
	},
	defaults: map[engine.Slot]float64{mgAngle: 90},
	relations: []engine.Relation{
		{Name: "B = μ₀N|I|/ℓ", Needs: engine.Needs(mgTurns, mgCurrent, mgSolenoidLength), Gives: mgField, Eval: func(v engine.Values) (float64, bool) {
			return div(Mu0*v.At(mgTurns)*math.Abs(v.At(mgCurrent)), v.At(mgSolenoidLength))
		}},
		{Name: "Φ = BA", Needs: engine.Needs(mgField, mgArea), Gives: mgFlux, Eval: func(v engine.Values) (float64, bool) {
			return v.At(mgField) * v.At(mgArea), true
		}},
		{Name: "F = |q|vB sin θ", Needs: engine.Needs(mgCharge, mgVelocity, mgField, mgAngle), Gives: mgLorentzForce, Eval: func(v engine.Values) (float64, bool) {
			return math.Abs(v.At(mgCharge)) * v.At(mgVelocity) * v.At(mgField) * sinDeg(v.At(mgAngle)), true
		}},
		{Name: "F = B|I|L sin θ", Needs: engine.Needs(mgField, mgCurrent, mgWireLength, mgAngle), Gives: mgWireForce, Eval: func(v engine.Values) (float64, bool) {
			return v.At(mgField) * math.Abs(v.At(mgCurrent)) * v.At(mgWireLength) * sinDeg(v.At(mgAngle)), true
		}},
		{Name: "r = mv sin θ/|q|B", Needs: engine.Needs(mgMass, mgVelocity, mgAngle, mgCharge, mgField), Gives: mgCyclotronRadius, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(mgMass)*v.At(mgVelocity)*sinDeg(v.At(mgAngle)), math.Abs(v.At(mgCharge))*v.At(mgField))
		}},
		{Name: "T = 2πm/|q|B", Needs: engine.Needs(mgMass, mgCharge, mgField), Gives: mgCyclotronPeriod, Eval: func(v engine.Values) (float64, bool) {
			return div(2*math.Pi*v.At(mgMass), math.Abs(v.At(mgCharge))*v.At(mgField))
		}},
		{Name: "f = 1/T", Needs: engine.Needs(mgCyclotronPeriod), Gives: mgCyclotronFrequency, Eval: func(v engine.Values) (float64, bool) {
			return div(1, v.At(mgCyclotronPeriod))
		}},
	},
}

// Magnetism resolves magnetic forces, solenoid field and flux, and the
// circular motion of a charge in a uniform field.
func Magnetism(in MagnetismInput) (engine.Result[MagnetismOutputs], error) {
	return magnetism(in.Set())
}

func magnetism(in quantity.Set) (engine.Result[MagnetismOutputs], error) {
	v, err := magnetismModel.solve(in)
	if err != nil {
		return engine.Result[MagnetismOutputs]{}, err
	}

	out := MagnetismOutputs{
		Charge:             v.Quantity(mgCharge),
		Velocity:           v.Quantity(mgVelocity),
		Field:              v.Quantity(mgField),
		Angle:              v.Quantity(mgAngle),
		Mass:               v.Quantity(mgMass),
		Current:            v.Quantity(mgCurrent),
		WireLength:         v.Quantity(mgWireLength),
		Turns:              v.Quantity(mgTurns),
		SolenoidLength:     v.Quantity(mgSolenoidLength),
		Area:               v.Quantity(mgArea),
		Flux:               v.Quantity(mgFlux),
		LorentzForce:       v.Quantity(mgLorentzForce),
		WireForce:          v.Quantity(mgWireForce),
		CyclotronRadius:    v.Quantity(mgCyclotronRadius),
		CyclotronPeriod:    v.Quantity(mgCyclotronPeriod),
		CyclotronFrequency: v.Quantity(mgCyclotronFrequency),
	}

	var curves []engine.Series
	// the moving charge takes precedence over the wire
	peak, drawn := 0.0, true
	switch {
	case v.HasAll(engine.Needs(mgCharge, mgVelocity, mgField)):
		peak = math.Abs(v.At(mgCharge)) * v.At(mgVelocity) * v.At(mgField)
	case v.HasAll(engine.Needs(mgField, mgCurrent, mgWireLength)):
		peak = v.At(mgField) * math.Abs(v.At(mgCurrent)) * v.At(mgWireLength)
	default:
		drawn = false
	}
	if drawn {
		curves = append(curves, engine.Series{
			Name: "force_angle", XLabel: "θ (deg)", YLabel: "F (N)",
			Points: engine.Sample(0, 180, forceAngleSamples, func(d float64) float64 {
				return peak * sinDeg(d)
			}),
		})
	}
	if v.HasAll(engine.Needs(mgTurns, mgCurrent, mgSolenoidLength)) {
		perAmp := Mu0 * v.At(mgTurns) / v.At(mgSolenoidLength)
		lo, hi := span(v.At(mgCurrent))
		curves = append(curves, engine.Series{
			Name: "field_current", XLabel: "I (A)", YLabel: "B (T)",
			Points: engine.Sample(lo, hi, fieldCurrentSamples, func(i float64) float64 {
				return perAmp * i
			}),
		})
	}

	var paths []engine.Path
	if r, ok := v.Get(mgCyclotronRadius); ok {
		paths = append(paths, engine.Path{
			Name: "orbit", Closed: true,
			Points: engine.Circle(0, 0, r, orbitSamples),
		})
	}

	return engine.Assemble(engine.Magnetism, out, curves, paths)
}
