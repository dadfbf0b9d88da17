package physics

import (
	"fmt"
	"math"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

// DefaultPlateSeparation is used for a parallel plate capacitor given its
// plate area but neither its separation nor its capacitance.
const DefaultPlateSeparation = 1e-3 // m

const (
	radialSamples        = 100
	fieldLines           = 8
	fieldLineSamples     = 40
	equipotentialSamples = 73
	capacitorSamples     = 50
	plateLines           = 7
	plateSamples         = 21
)

// equipotential radii as multiples of the given distance
var equipotentialRadii = []float64{0.5, 0.75, 1, 1.5, 2}

const (
	esCharge1 engine.Slot = iota
	esCharge2
	esDistance
	esField
	esPotential
	esCapacitance
	esVoltage
	esArea
	esSeparation
	esForce
	esPotentialEnergy
	esStoredCharge
	esStoredEnergy
	esPlateField
)

// ElectrostaticsInput covers point charges and the parallel plate capacitor.
// Field and potential are those of charge1 at distance. Voltage is the
// capacitor voltage.
type ElectrostaticsInput struct {
	Charge1     quantity.Quantity
	Charge2     quantity.Quantity
	Distance    quantity.Quantity
	Field       quantity.Quantity
	Potential   quantity.Quantity
	Capacitance quantity.Quantity
	Voltage     quantity.Quantity
	Area        quantity.Quantity
	Separation  quantity.Quantity
}

func (in ElectrostaticsInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"charge1":     in.Charge1,
		"charge2":     in.Charge2,
		"distance":    in.Distance,
		"field":       in.Field,
		"potential":   in.Potential,
		"capacitance": in.Capacitance,
		"voltage":     in.Voltage,
		"area":        in.Area,
		"separation":  in.Separation,
	})
}

type ElectrostaticsOutputs struct {
	Charge1         quantity.Quantity
	Charge2         quantity.Quantity
	Distance        quantity.Quantity
	Field           quantity.Quantity
	Potential       quantity.Quantity
	Capacitance     quantity.Quantity
	Voltage         quantity.Quantity
	Area            quantity.Quantity
	Separation      quantity.Quantity
	Force           quantity.Quantity
	PotentialEnergy quantity.Quantity
	StoredCharge    quantity.Quantity
	StoredEnergy    quantity.Quantity
	PlateField      quantity.Quantity
}

func (o ElectrostaticsOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("charge1", "C", o.Charge1),
		scalar("charge2", "C", o.Charge2),
		scalar("distance", "m", o.Distance),
		scalar("field", "N/C", o.Field),
		scalar("potential", "V", o.Potential),
		scalar("capacitance", "F", o.Capacitance),
		scalar("voltage", "V", o.Voltage),
		scalar("area", "m²", o.Area),
		scalar("separation", "m", o.Separation),
		scalar("force", "N", o.Force),
		scalar("potential_energy", "J", o.PotentialEnergy),
		scalar("stored_charge", "C", o.StoredCharge),
		scalar("stored_energy", "J", o.StoredEnergy),
		scalar("plate_field", "V/m", o.PlateField),
	}
}

var electrostaticsModel = model{
	rule: validate.Rule{
		Domain: engine.Electrostatics,
		Inputs: []string{
			"charge1", "charge2", "distance", "field", "potential",
			"capacitance", "voltage", "area", "separation",
		},
		Groups: [][]string{
			{"charge1", "charge2", "distance"},
			{"field", "potential"},
			{"capacitance", "voltage"},
			{"area"},
		},
		Checks: []validate.Check{
			{Quantity: "charge1", Must: validate.NonZero()},
			{Quantity: "charge2", Must: validate.NonZero()},
			{Quantity: "distance", Must: validate.Positive()},
			{Quantity: "field", Must: validate.NonZero()},
			{Quantity: "potential", Must: validate.NonZero()},
			{Quantity: "capacitance", Must: validate.Positive()},
			{Quantity: "area", Must: validate.Positive()},
			{Quantity: "separation", Must: validate.Positive()},
		},
	},
	relations: []engine.Relation{
		{Name: "F = kq₁q₂/r²", Needs: engine.Needs(esCharge1, esCharge2, esDistance), Gives: esForce, Eval: func(v engine.Values) (float64, bool) {
			r := v.At(esDistance)
			return div(CoulombK*v.At(esCharge1)*v.At(esCharge2), r*r)
		}},
		{Name: "E = kq₁/r²", Needs: engine.Needs(esCharge1, esDistance), Gives: esField, Eval: func(v engine.Values) (float64, bool) {
			r := v.At(esDistance)
			return div(CoulombK*v.At(esCharge1), r*r)
		}},
		{Name: "V = kq₁/r", Needs: engine.Needs(esCharge1, esDistance), Gives: esPotential, Eval: func(v engine.Values) (float64, bool) {
			return div(CoulombK*v.At(esCharge1), v.At(esDistance))
		}},
		{Name: "U = kq₁q₂/r", Needs: engine.Needs(esCharge1, esCharge2, esDistance), Gives: esPotentialEnergy, Eval: func(v engine.Values) (float64, bool) {
			return div(CoulombK*v.At(esCharge1)*v.At(esCharge2), v.At(esDistance))
		}},
		{Name: "r = V/E", Needs: engine.Needs(esField, esPotential), Gives: esDistance, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(v.At(esPotential), v.At(esField)))
		}},
		{Name: "q₁ = Vr/k", Needs: engine.Needs(esPotential, esDistance), Gives: esCharge1, Eval: func(v engine.Values) (float64, bool) {
			return v.At(esPotential) * v.At(esDistance) / CoulombK, true
		}},
		{Name: "C = ε₀A/d", Needs: engine.Needs(esArea, esSeparation), Gives: esCapacitance, Eval: func(v engine.Values) (float64, bool) {
			return div(Epsilon0*v.At(esArea), v.At(esSeparation))
		}},
		{Name: "d = ε₀A/C", Needs: engine.Needs(esArea, esCapacitance), Gives: esSeparation, Eval: func(v engine.Values) (float64, bool) {
			return positive(div(Epsilon0*v.At(esArea), v.At(esCapacitance)))
		}},
		{Name: "Q = CV", Needs: engine.Needs(esCapacitance, esVoltage), Gives: esStoredCharge, Eval: func(v engine.Values) (float64, bool) {
			return v.At(esCapacitance) * v.At(esVoltage), true
		}},
		{Name: "W = ½CV²", Needs: engine.Needs(esCapacitance, esVoltage), Gives: esStoredEnergy, Eval: func(v engine.Values) (float64, bool) {
			u := v.At(esVoltage)
			return 0.5 * v.At(esCapacitance) * u * u, true
		}},
		{Name: "E = V/d", Needs: engine.Needs(esVoltage, esSeparation), Gives: esPlateField, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(esVoltage), v.At(esSeparation))
		}},
	},
}

// Electrostatics resolves Coulomb interactions of point charges and the
// parallel plate capacitor, and traces field lines and equipotentials.
func Electrostatics(in ElectrostaticsInput) (engine.Result[ElectrostaticsOutputs], error) {
	return electrostatics(in.Set())
}

func electrostatics(in quantity.Set) (engine.Result[ElectrostaticsOutputs], error) {
	if in.Has("area") && !in.Has("separation") && !in.Has("capacitance") {
		in = in.With("separation", quantity.Of(DefaultPlateSeparation))
	}
	v, err := electrostaticsModel.solve(in)
	if err != nil {
		return engine.Result[ElectrostaticsOutputs]{}, err
	}

	out := ElectrostaticsOutputs{
		Charge1:         v.Quantity(esCharge1),
		Charge2:         v.Quantity(esCharge2),
		Distance:        v.Quantity(esDistance),
		Field:           v.Quantity(esField),
		Potential:       v.Quantity(esPotential),
		Capacitance:     v.Quantity(esCapacitance),
		Voltage:         v.Quantity(esVoltage),
		Area:            v.Quantity(esArea),
		Separation:      v.Quantity(esSeparation),
		Force:           v.Quantity(esForce),
		PotentialEnergy: v.Quantity(esPotentialEnergy),
		StoredCharge:    v.Quantity(esStoredCharge),
		StoredEnergy:    v.Quantity(esStoredEnergy),
		PlateField:      v.Quantity(esPlateField),
	}

	var (
		curves []engine.Series
		paths  []engine.Path
	)
	if v.HasAll(engine.Needs(esCharge1, esDistance)) {
		c, p := pointCharge(v.At(esCharge1), v.At(esDistance))
		curves = append(curves, c...)
		paths = append(paths, p...)
	}
	if v.HasAll(engine.Needs(esCapacitance, esVoltage)) {
		c := v.At(esCapacitance)
		lo, hi := span(v.At(esVoltage))
		curves = append(curves,
			engine.Series{
				Name: "charge_voltage", XLabel: "V (V)", YLabel: "Q (C)",
				Points: engine.Sample(lo, hi, capacitorSamples, func(u float64) float64 { return c * u }),
			},
			engine.Series{
				Name: "energy_voltage", XLabel: "V (V)", YLabel: "W (J)",
				Points: engine.Sample(lo, hi, capacitorSamples, func(u float64) float64 { return 0.5 * c * u * u }),
			},
		)
	}
	if v.HasAll(engine.Needs(esArea, esSeparation)) {
		reversed := v.Known(esVoltage) && v.At(esVoltage) < 0
		paths = append(paths, plates(v.At(esArea), v.At(esSeparation), reversed)...)
	}

	return engine.Assemble(engine.Electrostatics, out, curves, paths)
}

// pointCharge samples the radial field and potential of q over
// [r/4, 2r] and traces its field lines and equipotentials. Field lines run
// in the direction of the field: outward from a positive charge.
func pointCharge(q, r float64) ([]engine.Series, []engine.Path) {
	near, far := r/4, 2*r
	curves := []engine.Series{
		{
			Name: "field_distance", XLabel: "r (m)", YLabel: "E (N/C)",
			Points: engine.Sample(near, far, radialSamples, func(x float64) float64 {
				return CoulombK * q / (x * x)
			}),
		},
		{
			Name: "potential_distance", XLabel: "r (m)", YLabel: "V (V)",
			Points: engine.Sample(near, far, radialSamples, func(x float64) float64 {
				return CoulombK * q / x
			}),
		},
	}

	paths := make([]engine.Path, 0, fieldLines+len(equipotentialRadii))
	for k := 0; k < fieldLines; k++ {
		a := 2 * math.Pi * float64(k) / fieldLines
		from := engine.Point{X: near * math.Cos(a), Y: near * math.Sin(a)}
		to := engine.Point{X: far * math.Cos(a), Y: far * math.Sin(a)}
		if q < 0 {
			from, to = to, from
		}
		paths = append(paths, engine.Path{
			Name:   fmt.Sprintf("field_line_%d", k+1),
			Points: engine.Segment(from, to, fieldLineSamples),
		})
	}
	for k, f := range equipotentialRadii {
		paths = append(paths, engine.Path{
			Name:   fmt.Sprintf("equipotential_%d", k+1),
			Closed: true,
			Points: engine.Circle(0, 0, f*r, equipotentialSamples),
		})
	}
	return curves, paths
}

// plates draws a square parallel plate capacitor of the given area centred
// on the origin, with uniform field lines running from the positive plate
// at the top to the negative plate, or upward when reversed.
func plates(area, d float64, reversed bool) []engine.Path {
	side := math.Sqrt(area)
	top, bottom := d/2, -d/2
	paths := []engine.Path{
		{Name: "plate_positive", Points: engine.Segment(engine.Point{X: -side / 2, Y: top}, engine.Point{X: side / 2, Y: top}, plateSamples)},
		{Name: "plate_negative", Points: engine.Segment(engine.Point{X: -side / 2, Y: bottom}, engine.Point{X: side / 2, Y: bottom}, plateSamples)},
	}
	if reversed {
		paths[0].Points, paths[1].Points = paths[1].Points, paths[0].Points
		top, bottom = bottom, top
	}
	for k := 0; k < plateLines; k++ {
		x := -side/2 + side*float64(k+1)/float64(plateLines+1)
		paths = append(paths, engine.Path{
			Name:   fmt.Sprintf("plate_field_line_%d", k+1),
			Points: engine.Segment(engine.Point{X: x, Y: top}, engine.Point{X: x, Y: bottom}, plateSamples),
		})
	}
	return paths
}
