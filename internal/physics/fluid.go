package physics

import (
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const fluidSamples = 50

const (
	flDensity engine.Slot = iota
	flDepth
	flPressure
	flArea
	flForce
	flVolume
	flFlowVelocity
	flAbsolutePressure
	flBuoyantForce
	flFlowRate
)

// FluidInput covers hydrostatics, buoyancy and flow through a section.
// Pressure is gauge pressure.
type FluidInput struct {
	Density      quantity.Quantity
	Depth        quantity.Quantity
	Pressure     quantity.Quantity
	Area         quantity.Quantity
	Force        quantity.Quantity
	Volume       quantity.Quantity
	FlowVelocity quantity.Quantity
}

func (in FluidInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"density":       in.Density,
		"depth":         in.Depth,
		"pressure":      in.Pressure,
		"area":          in.Area,
		"force":         in.Force,
		"volume":        in.Volume,
		"flow_velocity": in.FlowVelocity,
	})
}

type FluidOutputs struct {
	Density          quantity.Quantity
	Depth            quantity.Quantity
	Pressure         quantity.Quantity
	Area             quantity.Quantity
	Force            quantity.Quantity
	Volume           quantity.Quantity
	FlowVelocity     quantity.Quantity
	AbsolutePressure quantity.Quantity
	BuoyantForce     quantity.Quantity
	FlowRate         quantity.Quantity
}

func (o FluidOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("density", "kg/m³", o.Density),
		scalar("depth", "m", o.Depth),
		scalar("pressure", "Pa", o.Pressure),
		scalar("area", "m²", o.Area),
		scalar("force", "N", o.Force),
		scalar("volume", "m³", o.Volume),
		scalar("flow_velocity", "m/s", o.FlowVelocity),
		scalar("absolute_pressure", "Pa", o.AbsolutePressure),
		scalar("buoyant_force", "N", o.BuoyantForce),
		scalar("flow_rate", "m³/s", o.FlowRate),
	}
}

var fluidModel = model{
	rule: validate.Rule{
		Domain:    engine.Fluid,
		Inputs:    []string{"density", "depth", "pressure", "area", "force", "volume", "flow_velocity"},
		MinInputs: 2,
		Checks: []validate.Check{
			{Quantity: "density", Must: validate.Positive()},
			{Quantity: "depth", Must: validate.NonNegative()},
			{Quantity: "pressure", Must: validate.NonNegative()},
			{Quantity: "area", Must: validate.Positive()},
			{Quantity: "volume", Must: validate.NonNegative()},
			{Quantity: "flow_velocity", Must: validate.NonNegative()},
		},
	},
	relations: []engine.Relation{
		{Name: "p = ρgh", Needs: engine.Needs(flDensity, flDepth), Gives: flPressure, Eval: func(v engine.Values) (float64, bool) {
			return v.At(flDensity) * Gravity * v.At(flDepth), true
		}},
		{Name: "p = F/A", Needs: engine.Needs(flForce, flArea), Gives: flPressure, Eval: func(v engine.Values) (float64, bool) {
			return nonNegative(div(v.At(flForce), v.At(flArea)))
		}},
		{Name: "h = p/ρg", Needs: engine.Needs(flPressure, flDensity), Gives: flDepth, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(flPressure), v.At(flDensity)*Gravity)
		}},
		{Name: "ρ = p/gh", Needs: engine.Needs(flPressure, flDepth), Gives: flDensity, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(flPressure), Gravity*v.At(flDepth)))
		}},
		{Name: "F = pA", Needs: engine.Needs(flPressure, flArea), Gives: flForce, Eval: func(v engine.Values) (float64, bool) {
			return v.At(flPressure) * v.At(flArea), true
		}},
		{Name: "A = F/p", Needs: engine.Needs(flForce, flPressure), Gives: flArea, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(flForce), v.At(flPressure)))
		}},
		{Name: "p_abs = p_atm + p", Needs: engine.Needs(flPressure), Gives: flAbsolutePressure, Eval: func(v engine.Values) (float64, bool) {
			return AtmPressure + v.At(flPressure), true
		}},
		{Name: "F_b = ρgV", Needs: engine.Needs(flDensity, flVolume), Gives: flBuoyantForce, Eval: func(v engine.Values) (float64, bool) {
			return v.At(flDensity) * Gravity * v.At(flVolume), true
		}},
		{Name: "Q = Av", Needs: engine.Needs(flArea, flFlowVelocity), Gives: flFlowRate, Eval: func(v engine.Values) (float64, bool) {
			return v.At(flArea) * v.At(flFlowVelocity), true
		}},
	},
}

// Fluid resolves hydrostatic pressure, the force it exerts on an area,
// buoyancy and volumetric flow.
func Fluid(in FluidInput) (engine.Result[FluidOutputs], error) {
	return fluid(in.Set())
}

func fluid(in quantity.Set) (engine.Result[FluidOutputs], error) {
	v, err := fluidModel.solve(in)
	if err != nil {
		return engine.Result[FluidOutputs]{}, err
	}

	out := FluidOutputs{
		Density:          v.Quantity(flDensity),
		Depth:            v.Quantity(flDepth),
		Pressure:         v.Quantity(flPressure),
		Area:             v.Quantity(flArea),
		Force:            v.Quantity(flForce),
		Volume:           v.Quantity(flVolume),
		FlowVelocity:     v.Quantity(flFlowVelocity),
		AbsolutePressure: v.Quantity(flAbsolutePressure),
		BuoyantForce:     v.Quantity(flBuoyantForce),
		FlowRate:         v.Quantity(flFlowRate),
	}

	var curves []engine.Series
	if v.HasAll(engine.Needs(flDensity, flDepth)) {
		rho := v.At(flDensity)
		curves = append(curves, engine.Series{
			Name: "pressure_depth", XLabel: "h (m)", YLabel: "p (Pa)",
			Points: engine.Sample(0, v.At(flDepth), fluidSamples, func(h float64) float64 {
				return rho * Gravity * h
			}),
		})
	}
	if v.HasAll(engine.Needs(flDensity, flVolume)) {
		rho := v.At(flDensity)
		curves = append(curves, engine.Series{
			Name: "buoyancy_volume", XLabel: "V (m³)", YLabel: "F_b (N)",
			Points: engine.Sample(0, v.At(flVolume), fluidSamples, func(vol float64) float64 {
				return rho * Gravity * vol
			}),
		})
	}

	return engine.Assemble(engine.Fluid, out, curves, nil)
}
