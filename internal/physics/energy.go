package physics

import (
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const energySamples = 50

const (
	enMass engine.Slot = iota
	enVelocity
	enHeight
	enKinetic
	enPotential
	enTotal
	enMomentum
	enFallSpeed
)

// EnergyInput relates kinetic and gravitational potential energy of a body.
type EnergyInput struct {
	Mass            quantity.Quantity
	Velocity        quantity.Quantity
	Height          quantity.Quantity
	KineticEnergy   quantity.Quantity
	PotentialEnergy quantity.Quantity
}

func (in EnergyInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"mass":             in.Mass,
		"velocity":         in.Velocity,
		"height":           in.Height,
		"kinetic_energy":   in.KineticEnergy,
		"potential_energy": in.PotentialEnergy,
	})
}

type EnergyOutputs struct {
	Mass            quantity.Quantity
	Velocity        quantity.Quantity
	Height          quantity.Quantity
	KineticEnergy   quantity.Quantity
	PotentialEnergy quantity.Quantity
	TotalEnergy     quantity.Quantity
	Momentum        quantity.Quantity
	FallSpeed       quantity.Quantity
}

func (o EnergyOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("mass", "kg", o.Mass),
		scalar("velocity", "m/s", o.Velocity),
		scalar("height", "m", o.Height),
		scalar("kinetic_energy", "J", o.KineticEnergy),
		scalar("potential_energy", "J", o.PotentialEnergy),
		scalar("total_energy", "J", o.TotalEnergy),
		scalar("momentum", "kg·m/s", o.Momentum),
		scalar("fall_speed", "m/s", o.FallSpeed),
	}
}

var energyModel = model{
	rule: validate.Rule{
		Domain:    engine.Energy,
		Inputs:    []string{"mass", "velocity", "height", "kinetic_energy", "potential_energy"},
		MinInputs: 2,
		Checks: []validate.Check{
			{Quantity: "mass", Must: validate.Positive()},
			{Quantity: "height", Must: validate.NonNegative()},
			{Quantity: "kinetic_energy", Must: validate.NonNegative()},
			{Quantity: "potential_energy", Must: validate.NonNegative()},
		},
	},
	relations: []engine.Relation{
		{Name: "KE = ½mv²", Needs: engine.Needs(enMass, enVelocity), Gives: enKinetic, Eval: func(v engine.Values) (float64, bool) {
			u := v.At(enVelocity)
			return 0.5 * v.At(enMass) * u * u, true
		}},
		{Name: "PE = mgh", Needs: engine.Needs(enMass, enHeight), Gives: enPotential, Eval: func(v engine.Values) (float64, bool) {
			return v.At(enMass) * Gravity * v.At(enHeight), true
		}},
		{Name: "m = 2KE/v²", Needs: engine.Needs(enKinetic, enVelocity), Gives: enMass, Eval: func(v engine.Values) (float64, bool) {
			u := v.At(enVelocity)
			return positive(div(2*v.At(enKinetic), u*u))
		}},
		{Name: "m = PE/gh", Needs: engine.Needs(enPotential, enHeight), Gives: enMass, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(enPotential), Gravity*v.At(enHeight)))
		}},
		// speed only; the direction of motion is not recoverable from energy
		{Name: "v = √(2KE/m)", Needs: engine.Needs(enKinetic, enMass), Gives: enVelocity, Assumed: true, Eval: func(v engine.Values) (float64, bool) {
			x, ok := div(2*v.At(enKinetic), v.At(enMass))
			if !ok {
				return 0, false
			}
			return sqrt(x)
		}},
		{Name: "h = PE/mg", Needs: engine.Needs(enPotential, enMass), Gives: enHeight, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(enPotential), v.At(enMass)*Gravity)
		}},
		{Name: "E = KE + PE", Needs: engine.Needs(enKinetic, enPotential), Gives: enTotal, Eval: func(v engine.Values) (float64, bool) {
			return v.At(enKinetic) + v.At(enPotential), true
		}},
		{Name: "p = mv", Needs: engine.Needs(enMass, enVelocity), Gives: enMomentum, Eval: func(v engine.Values) (float64, bool) {
			return v.At(enMass) * v.At(enVelocity), true
		}},
		{Name: "v_fall = √(2gh)", Needs: engine.Needs(enHeight), Gives: enFallSpeed, Eval: func(v engine.Values) (float64, bool) {
			return sqrt(2 * Gravity * v.At(enHeight))
		}},
	},
}

// Energy resolves the mechanical energy of a body from any two of mass,
// speed, height and its two energies.
func Energy(in EnergyInput) (engine.Result[EnergyOutputs], error) {
	return energy(in.Set())
}

func energy(in quantity.Set) (engine.Result[EnergyOutputs], error) {
	v, err := energyModel.solve(in)
	if err != nil {
		return engine.Result[EnergyOutputs]{}, err
	}

	out := EnergyOutputs{
		Mass:            v.Quantity(enMass),
		Velocity:        v.Quantity(enVelocity),
		Height:          v.Quantity(enHeight),
		KineticEnergy:   v.Quantity(enKinetic),
		PotentialEnergy: v.Quantity(enPotential),
		TotalEnergy:     v.Quantity(enTotal),
		Momentum:        v.Quantity(enMomentum),
		FallSpeed:       v.Quantity(enFallSpeed),
	}

	var curves []engine.Series
	if v.HasAll(engine.Needs(enMass, enTotal)) {
		// energy exchange under conservation, up to the height where KE runs out
		m, e := v.At(enMass), v.At(enTotal)
		top := e / (m * Gravity)
		curves = append(curves,
			engine.Series{
				Name: "kinetic", XLabel: "h (m)", YLabel: "KE (J)",
				Points: engine.Sample(0, top, energySamples, func(h float64) float64 {
					return e - m*Gravity*h
				}),
			},
			engine.Series{
				Name: "potential", XLabel: "h (m)", YLabel: "PE (J)",
				Points: engine.Sample(0, top, energySamples, func(h float64) float64 {
					return m * Gravity * h
				}),
			},
		)
	}

	return engine.Assemble(engine.Energy, out, curves, nil)
}
