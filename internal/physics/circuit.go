package physics

import (
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const circuitSamples = 50

const (
	dcVoltage engine.Slot = iota
	dcCurrent
	dcResistance
	dcPower
	dcConductance
)

// CircuitInput is a single resistive element. Any two of the three suffice.
type CircuitInput struct {
	Voltage    quantity.Quantity
	Current    quantity.Quantity
	Resistance quantity.Quantity
}

func (in CircuitInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"voltage":    in.Voltage,
		"current":    in.Current,
		"resistance": in.Resistance,
	})
}

type CircuitOutputs struct {
	Voltage     quantity.Quantity
	Current     quantity.Quantity
	Resistance  quantity.Quantity
	Power       quantity.Quantity
	Conductance quantity.Quantity
}

func (o CircuitOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("voltage", "V", o.Voltage),
		scalar("current", "A", o.Current),
		scalar("resistance", "Ω", o.Resistance),
		scalar("power", "W", o.Power),
		scalar("conductance", "S", o.Conductance),
	}
}

var circuitModel = model{
	rule: validate.Rule{
		Domain:    engine.Circuit,
		Inputs:    []string{"voltage", "current", "resistance"},
		MinInputs: 2,
		Checks: []validate.Check{
			{Quantity: "resistance", Must: validate.Positive()},
		},
	},
	relations: []engine.Relation{
		{Name: "V = IR", Needs: engine.Needs(dcCurrent, dcResistance), Gives: dcVoltage, Eval: func(v engine.Values) (float64, bool) {
			return v.At(dcCurrent) * v.At(dcResistance), true
		}},
		{Name: "I = V/R", Needs: engine.Needs(dcVoltage, dcResistance), Gives: dcCurrent, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(dcVoltage), v.At(dcResistance))
		}},
		{Name: "R = V/I", Needs: engine.Needs(dcVoltage, dcCurrent), Gives: dcResistance, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(dcVoltage), v.At(dcCurrent)))
		}},
		{Name: "P = VI", Needs: engine.Needs(dcVoltage, dcCurrent), Gives: dcPower, Eval: func(v engine.Values) (float64, bool) {
			return v.At(dcVoltage) * v.At(dcCurrent), true
		}},
		{Name: "G = 1/R", Needs: engine.Needs(dcResistance), Gives: dcConductance, Eval: func(v engine.Values) (float64, bool) {
			return div(1, v.At(dcResistance))
		}},
	},
}

// Circuit applies Ohm's law to whichever two of voltage, current and
// resistance are given. When all three are given they must agree.
func Circuit(in CircuitInput) (engine.Result[CircuitOutputs], error) {
	return circuit(in.Set())
}

func circuit(in quantity.Set) (engine.Result[CircuitOutputs], error) {
	v, err := circuitModel.solve(in)
	if err != nil {
		return engine.Result[CircuitOutputs]{}, err
	}
	// Voltage and current of opposite sign imply a negative resistance.
	if u, i := v.At(dcVoltage), v.At(dcCurrent); v.HasAll(engine.Needs(dcVoltage, dcCurrent)) && u*i < 0 {
		return engine.Result[CircuitOutputs]{}, &validate.Error{
			Domain:     engine.Circuit,
			Kind:       validate.ErrIllegalValue,
			Detail:     "voltage and current have opposite signs",
			Violations: []validate.Violation{{Quantity: "resistance", Value: u / i, Reason: "must be > 0"}},
		}
	}

	out := CircuitOutputs{
		Voltage:     v.Quantity(dcVoltage),
		Current:     v.Quantity(dcCurrent),
		Resistance:  v.Quantity(dcResistance),
		Power:       v.Quantity(dcPower),
		Conductance: v.Quantity(dcConductance),
	}

	var curves []engine.Series
	if v.HasAll(engine.Needs(dcVoltage, dcCurrent, dcResistance)) {
		r := v.At(dcResistance)
		lo, hi := span(v.At(dcVoltage))
		curves = append(curves, engine.Series{
			Name: "iv", XLabel: "V (V)", YLabel: "I (A)",
			Points: engine.Sample(lo, hi, circuitSamples, func(u float64) float64 { return u / r }),
		})
		lo, hi = span(v.At(dcCurrent))
		curves = append(curves, engine.Series{
			Name: "power", XLabel: "I (A)", YLabel: "P (W)",
			Points: engine.Sample(lo, hi, circuitSamples, func(i float64) float64 { return i * i * r }),
		})
	}

	return engine.Assemble(engine.Circuit, out, curves, nil)
}
