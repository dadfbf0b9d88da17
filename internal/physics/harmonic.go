package physics

import (
	"math"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const harmonicSamples = 200

const (
	shmAmplitude engine.Slot = iota
	shmFrequency
	shmTime
	shmPhase
	shmMass
	shmOmega
	shmPeriod
	shmPosition
	shmVelocity
	shmAcceleration
	shmMaxVelocity
	shmMaxAcceleration
	shmSpringConstant
	shmEnergy
)

// HarmonicInput describes x(t) = A sin(2πft + φ). Phase is in radians and
// defaults to 0. Mass is optional and only feeds the spring constant and energy.
type HarmonicInput struct {
	Amplitude quantity.Quantity
	Frequency quantity.Quantity
	Time      quantity.Quantity
	Phase     quantity.Quantity
	Mass      quantity.Quantity
}

func (in HarmonicInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"amplitude": in.Amplitude,
		"frequency": in.Frequency,
		"time":      in.Time,
		"phase":     in.Phase,
		"mass":      in.Mass,
	})
}

type HarmonicOutputs struct {
	Amplitude        quantity.Quantity
	Frequency        quantity.Quantity
	Time             quantity.Quantity
	Phase            quantity.Quantity
	Mass             quantity.Quantity
	AngularFrequency quantity.Quantity
	Period           quantity.Quantity
	Position         quantity.Quantity
	Velocity         quantity.Quantity
	Acceleration     quantity.Quantity
	MaxVelocity      quantity.Quantity
	MaxAcceleration  quantity.Quantity
	SpringConstant   quantity.Quantity
	TotalEnergy      quantity.Quantity
}

func (o HarmonicOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("amplitude", "m", o.Amplitude),
		scalar("frequency", "Hz", o.Frequency),
		scalar("time", "s", o.Time),
		scalar("phase", "rad", o.Phase),
		scalar("mass", "kg", o.Mass),
		scalar("angular_frequency", "rad/s", o.AngularFrequency),
		scalar("period", "s", o.Period),
		scalar("position", "m", o.Position),
		scalar("velocity", "m/s", o.Velocity),
		scalar("acceleration", "m/s²", o.Acceleration),
		scalar("max_velocity", "m/s", o.MaxVelocity),
		scalar("max_acceleration", "m/s²", o.MaxAcceleration),
		scalar("spring_constant", "N/m", o.SpringConstant),
		scalar("total_energy", "J", o.TotalEnergy),
	}
}

var harmonicModel = model{
	rule: validate.Rule{
		Domain: engine.Harmonic,
		Inputs: []string{"amplitude", "frequency", "time", "phase", "mass"},
		Groups: [][]string{{"amplitude", "frequency", "time"}},
		Checks: []validate.Check{
			{Quantity: "amplitude", Must: validate.NonNegative()},
			{Quantity: "frequency", Must: validate.Positive()},
			{Quantity: "time", Must: validate.NonNegative()},
			{Quantity: "mass", Must: validate.Positive()},
		},
	},
	defaults: map[engine.Slot]float64{shmPhase: 0},
	relations: []engine.Relation{
		{Name: "ω = 2πf", Needs: engine.Needs(shmFrequency), Gives: shmOmega, Eval: func(v engine.Values) (float64, bool) {
			return 2 * math.Pi * v.At(shmFrequency), true
		}},
		{Name: "T = 1/f", Needs: engine.Needs(shmFrequency), Gives: shmPeriod, Eval: func(v engine.Values) (float64, bool) {
			return div(1, v.At(shmFrequency))
		}},
		{Name: "x = A sin(ωt + φ)", Needs: engine.Needs(shmAmplitude, shmOmega, shmTime, shmPhase), Gives: shmPosition, Eval: func(v engine.Values) (float64, bool) {
			return v.At(shmAmplitude) * math.Sin(v.At(shmOmega)*v.At(shmTime)+v.At(shmPhase)), true
		}},
		{Name: "v = Aω cos(ωt + φ)", Needs: engine.Needs(shmAmplitude, shmOmega, shmTime, shmPhase), Gives: shmVelocity, Eval: func(v engine.Values) (float64, bool) {
			w := v.At(shmOmega)
			return v.At(shmAmplitude) * w * math.Cos(w*v.At(shmTime)+v.At(shmPhase)), true
		}},
		{Name: "a = -ω² x", Needs: engine.Needs(shmOmega, shmPosition), Gives: shmAcceleration, Eval: func(v engine.Values) (float64, bool) {
			w := v.At(shmOmega)
			return -w * w * v.At(shmPosition), true
		}},
		{Name: "v_max = Aω", Needs: engine.Needs(shmAmplitude, shmOmega), Gives: shmMaxVelocity, Eval: func(v engine.Values) (float64, bool) {
			return v.At(shmAmplitude) * v.At(shmOmega), true
		}},
		{Name: "a_max = Aω²", Needs: engine.Needs(shmAmplitude, shmOmega), Gives: shmMaxAcceleration, Eval: func(v engine.Values) (float64, bool) {
			w := v.At(shmOmega)
			return v.At(shmAmplitude) * w * w, true
		}},
		{Name: "k = mω²", Needs: engine.Needs(shmMass, shmOmega), Gives: shmSpringConstant, Eval: func(v engine.Values) (float64, bool) {
			w := v.At(shmOmega)
			return v.At(shmMass) * w * w, true
		}},
		{Name: "E = ½kA²", Needs: engine.Needs(shmSpringConstant, shmAmplitude), Gives: shmEnergy, Eval: func(v engine.Values) (float64, bool) {
			a := v.At(shmAmplitude)
			return 0.5 * v.At(shmSpringConstant) * a * a, true
		}},
	},
}

// Harmonic resolves the oscillator state at the given time and samples one
// full period.
func Harmonic(in HarmonicInput) (engine.Result[HarmonicOutputs], error) {
	return harmonic(in.Set())
}

func harmonic(in quantity.Set) (engine.Result[HarmonicOutputs], error) {
	v, err := harmonicModel.solve(in)
	if err != nil {
		return engine.Result[HarmonicOutputs]{}, err
	}

	out := HarmonicOutputs{
		Amplitude:        v.Quantity(shmAmplitude),
		Frequency:        v.Quantity(shmFrequency),
		Time:             v.Quantity(shmTime),
		Phase:            v.Quantity(shmPhase),
		Mass:             v.Quantity(shmMass),
		AngularFrequency: v.Quantity(shmOmega),
		Period:           v.Quantity(shmPeriod),
		Position:         v.Quantity(shmPosition),
		Velocity:         v.Quantity(shmVelocity),
		Acceleration:     v.Quantity(shmAcceleration),
		MaxVelocity:      v.Quantity(shmMaxVelocity),
		MaxAcceleration:  v.Quantity(shmMaxAcceleration),
		SpringConstant:   v.Quantity(shmSpringConstant),
		TotalEnergy:      v.Quantity(shmEnergy),
	}

	a, w, phi, period := v.At(shmAmplitude), v.At(shmOmega), v.At(shmPhase), v.At(shmPeriod)
	curves := []engine.Series{
		{
			Name: "position", XLabel: "t (s)", YLabel: "x (m)",
			Points: engine.Sample(0, period, harmonicSamples, func(t float64) float64 {
				return a * math.Sin(w*t+phi)
			}),
		},
		{
			Name: "velocity", XLabel: "t (s)", YLabel: "v (m/s)",
			Points: engine.Sample(0, period, harmonicSamples, func(t float64) float64 {
				return a * w * math.Cos(w*t+phi)
			}),
		},
		{
			Name: "acceleration", XLabel: "t (s)", YLabel: "a (m/s²)",
			Points: engine.Sample(0, period, harmonicSamples, func(t float64) float64 {
				return -a * w * w * math.Sin(w*t+phi)
			}),
		},
	}

	return engine.Assemble(engine.Harmonic, out, curves, nil)
}
