package physics

import (
	"math"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const thermoSamples = 100

const (
	thPressure engine.Slot = iota
	thVolume
	thMoles
	thTemperature
	thMass
	thSpecificHeat
	thTemperatureChange
	thHeat
	thHeatingPower
	thFinalTemperature
	thHeatingTime
	thInternalEnergy
)

// ThermoInput combines an ideal gas state with a sensible heat transfer.
// Temperatures are absolute, in kelvin. Heat is positive when added.
type ThermoInput struct {
	Pressure          quantity.Quantity
	Volume            quantity.Quantity
	Moles             quantity.Quantity
	Temperature       quantity.Quantity
	Mass              quantity.Quantity
	SpecificHeat      quantity.Quantity
	TemperatureChange quantity.Quantity
	Heat              quantity.Quantity
	HeatingPower      quantity.Quantity
}

func (in ThermoInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"pressure":           in.Pressure,
		"volume":             in.Volume,
		"moles":              in.Moles,
		"temperature":        in.Temperature,
		"mass":               in.Mass,
		"specific_heat":      in.SpecificHeat,
		"temperature_change": in.TemperatureChange,
		"heat":               in.Heat,
		"heating_power":      in.HeatingPower,
	})
}

type ThermoOutputs struct {
	Pressure          quantity.Quantity
	Volume            quantity.Quantity
	Moles             quantity.Quantity
	Temperature       quantity.Quantity
	Mass              quantity.Quantity
	SpecificHeat      quantity.Quantity
	TemperatureChange quantity.Quantity
	Heat              quantity.Quantity
	HeatingPower      quantity.Quantity
	FinalTemperature  quantity.Quantity
	HeatingTime       quantity.Quantity
	InternalEnergy    quantity.Quantity
}

func (o ThermoOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("pressure", "Pa", o.Pressure),
		scalar("volume", "m³", o.Volume),
		scalar("moles", "mol", o.Moles),
		scalar("temperature", "K", o.Temperature),
		scalar("mass", "kg", o.Mass),
		scalar("specific_heat", "J/(kg·K)", o.SpecificHeat),
		scalar("temperature_change", "K", o.TemperatureChange),
		scalar("heat", "J", o.Heat),
		scalar("heating_power", "W", o.HeatingPower),
		scalar("final_temperature", "K", o.FinalTemperature),
		scalar("heating_time", "s", o.HeatingTime),
		scalar("internal_energy", "J", o.InternalEnergy),
	}
}

var thermoModel = model{
	rule: validate.Rule{
		Domain: engine.Thermo,
		Inputs: []string{
			"pressure", "volume", "moles", "temperature", "mass",
			"specific_heat", "temperature_change", "heat", "heating_power",
		},
		MinInputs: 2,
		Checks: []validate.Check{
			{Quantity: "pressure", Must: validate.Positive()},
			{Quantity: "volume", Must: validate.Positive()},
			{Quantity: "moles", Must: validate.Positive()},
			{Quantity: "temperature", Must: validate.Positive()},
			{Quantity: "mass", Must: validate.Positive()},
			{Quantity: "specific_heat", Must: validate.Positive()},
			{Quantity: "heating_power", Must: validate.Positive()},
		},
	},
	relations: []engine.Relation{
		{Name: "P = nRT/V", Needs: engine.Needs(thMoles, thTemperature, thVolume), Gives: thPressure, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(thMoles)*GasConstant*v.At(thTemperature), v.At(thVolume))
		}},
		{Name: "V = nRT/P", Needs: engine.Needs(thMoles, thTemperature, thPressure), Gives: thVolume, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(thMoles)*GasConstant*v.At(thTemperature), v.At(thPressure))
		}},
		{Name: "n = PV/RT", Needs: engine.Needs(thPressure, thVolume, thTemperature), Gives: thMoles, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(thPressure)*v.At(thVolume), GasConstant*v.At(thTemperature))
		}},
		{Name: "T = PV/nR", Needs: engine.Needs(thPressure, thVolume, thMoles), Gives: thTemperature, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(thPressure)*v.At(thVolume), v.At(thMoles)*GasConstant)
		}},
		{Name: "Q = mcΔT", Needs: engine.Needs(thMass, thSpecificHeat, thTemperatureChange), Gives: thHeat, Eval: func(v engine.Values) (float64, bool) {
			return v.At(thMass) * v.At(thSpecificHeat) * v.At(thTemperatureChange), true
		}},
		{Name: "ΔT = Q/mc", Needs: engine.Needs(thHeat, thMass, thSpecificHeat), Gives: thTemperatureChange, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(thHeat), v.At(thMass)*v.At(thSpecificHeat))
		}},
		{Name: "m = Q/cΔT", Needs: engine.Needs(thHeat, thSpecificHeat, thTemperatureChange), Gives: thMass, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(thHeat), v.At(thSpecificHeat)*v.At(thTemperatureChange)))
		}},
		{Name: "c = Q/mΔT", Needs: engine.Needs(thHeat, thMass, thTemperatureChange), Gives: thSpecificHeat, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(thHeat), v.At(thMass)*v.At(thTemperatureChange)))
		}},
		{Name: "T_f = T + ΔT", Needs: engine.Needs(thTemperature, thTemperatureChange), Gives: thFinalTemperature, Eval: func(v engine.Values) (float64, bool) {
			return positive(v.At(thTemperature)+v.At(thTemperatureChange), true)
		}},
		{Name: "t = |Q|/P_heat", Needs: engine.Needs(thHeat, thHeatingPower), Gives: thHeatingTime, Eval: func(v engine.Values) (float64, bool) {
			return div(math.Abs(v.At(thHeat)), v.At(thHeatingPower))
		}},
		{Name: "U = 3/2 nRT", Needs: engine.Needs(thMoles, thTemperature), Gives: thInternalEnergy, Eval: func(v engine.Values) (float64, bool) {
			return 1.5 * v.At(thMoles) * GasConstant * v.At(thTemperature), true
		}},
	},
}

// Thermo resolves the ideal gas law and a sensible heat exchange. The
// internal energy assumes a monatomic gas.
func Thermo(in ThermoInput) (engine.Result[ThermoOutputs], error) {
	return thermo(in.Set())
}

func thermo(in quantity.Set) (engine.Result[ThermoOutputs], error) {
	v, err := thermoModel.solve(in)
	if err != nil {
		return engine.Result[ThermoOutputs]{}, err
	}

	out := ThermoOutputs{
		Pressure:          v.Quantity(thPressure),
		Volume:            v.Quantity(thVolume),
		Moles:             v.Quantity(thMoles),
		Temperature:       v.Quantity(thTemperature),
		Mass:              v.Quantity(thMass),
		SpecificHeat:      v.Quantity(thSpecificHeat),
		TemperatureChange: v.Quantity(thTemperatureChange),
		Heat:              v.Quantity(thHeat),
		HeatingPower:      v.Quantity(thHeatingPower),
		FinalTemperature:  v.Quantity(thFinalTemperature),
		HeatingTime:       v.Quantity(thHeatingTime),
		InternalEnergy:    v.Quantity(thInternalEnergy),
	}

	var curves []engine.Series
	if v.HasAll(engine.Needs(thPressure, thVolume)) {
		pv, vol := v.At(thPressure)*v.At(thVolume), v.At(thVolume)
		curves = append(curves, engine.Series{
			Name: "isotherm", XLabel: "V (m³)", YLabel: "P (Pa)",
			Points: engine.Sample(vol/2, 2*vol, thermoSamples, func(x float64) float64 {
				return pv / x
			}),
		})
	}
	// Temperature curves end at the final temperature, so they are only drawn
	// when it is physical.
	switch {
	case !v.Known(thFinalTemperature):
	case v.HasAll(engine.Needs(thTemperature, thTemperatureChange, thHeatingTime)):
		t0, dt, tt := v.At(thTemperature), v.At(thTemperatureChange), v.At(thHeatingTime)
		curves = append(curves, engine.Series{
			Name: "temperature_time", XLabel: "t (s)", YLabel: "T (K)",
			Points: engine.Sample(0, tt, thermoSamples, func(x float64) float64 {
				if tt == 0 {
					return t0
				}
				return t0 + dt*x/tt
			}),
		})
	case v.HasAll(engine.Needs(thTemperature, thMass, thSpecificHeat, thHeat)):
		t0, mc := v.At(thTemperature), v.At(thMass)*v.At(thSpecificHeat)
		lo, hi := span(v.At(thHeat))
		curves = append(curves, engine.Series{
			Name: "temperature_heat", XLabel: "Q (J)", YLabel: "T (K)",
			Points: engine.Sample(lo, hi, thermoSamples, func(q float64) float64 {
				return t0 + q/mc
			}),
		})
	}

	return engine.Assemble(engine.Thermo, out, curves, nil)
}
