package physics

import (
	"math"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const waveSamples = 200

const (
	wvFrequency engine.Slot = iota
	wvWavelength
	wvSpeed
	wvPeriod
	wvAmplitude
	wvOmega
	wvWaveNumber
)

// WaveInput describes a sinusoidal travelling wave. Amplitude only scales
// the displacement curves.
type WaveInput struct {
	Frequency  quantity.Quantity
	Wavelength quantity.Quantity
	Speed      quantity.Quantity
	Period     quantity.Quantity
	Amplitude  quantity.Quantity
}

func (in WaveInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"frequency":  in.Frequency,
		"wavelength": in.Wavelength,
		"speed":      in.Speed,
		"period":     in.Period,
		"amplitude":  in.Amplitude,
	})
}

type WaveOutputs struct {
	Frequency        quantity.Quantity
	Wavelength       quantity.Quantity
	Speed            quantity.Quantity
	Period           quantity.Quantity
	Amplitude        quantity.Quantity
	AngularFrequency quantity.Quantity
	WaveNumber       quantity.Quantity
}

func (o WaveOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("frequency", "Hz", o.Frequency),
		scalar("wavelength", "m", o.Wavelength),
		scalar("speed", "m/s", o.Speed),
		scalar("period", "s", o.Period),
		scalar("amplitude", "m", o.Amplitude),
		scalar("angular_frequency", "rad/s", o.AngularFrequency),
		scalar("wave_number", "rad/m", o.WaveNumber),
	}
}

var waveModel = model{
	rule: validate.Rule{
		Domain:    engine.Wave,
		Inputs:    []string{"frequency", "wavelength", "speed", "period", "amplitude"},
		MinInputs: 2,
		Counted:   []string{"frequency", "wavelength", "speed", "period"},
		Checks: []validate.Check{
			{Quantity: "frequency", Must: validate.Positive()},
			{Quantity: "wavelength", Must: validate.Positive()},
			{Quantity: "speed", Must: validate.Positive()},
			{Quantity: "period", Must: validate.Positive()},
			{Quantity: "amplitude", Must: validate.NonNegative()},
		},
	},
	relations: []engine.Relation{
		{Name: "f = 1/T", Needs: engine.Needs(wvPeriod), Gives: wvFrequency, Eval: func(v engine.Values) (float64, bool) {
			return div(1, v.At(wvPeriod))
		}},
		{Name: "f = v/λ", Needs: engine.Needs(wvSpeed, wvWavelength), Gives: wvFrequency, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(wvSpeed), v.At(wvWavelength))
		}},
		{Name: "T = 1/f", Needs: engine.Needs(wvFrequency), Gives: wvPeriod, Eval: func(v engine.Values) (float64, bool) {
			return div(1, v.At(wvFrequency))
		}},
		{Name: "v = fλ", Needs: engine.Needs(wvFrequency, wvWavelength), Gives: wvSpeed, Eval: func(v engine.Values) (float64, bool) {
			return v.At(wvFrequency) * v.At(wvWavelength), true
		}},
		{Name: "λ = v/f", Needs: engine.Needs(wvSpeed, wvFrequency), Gives: wvWavelength, Eval: func(v engine.Values) (float64, bool) {
			return div(v.At(wvSpeed), v.At(wvFrequency))
		}},
		{Name: "ω = 2πf", Needs: engine.Needs(wvFrequency), Gives: wvOmega, Eval: func(v engine.Values) (float64, bool) {
			return 2 * math.Pi * v.At(wvFrequency), true
		}},
		{Name: "k = 2π/λ", Needs: engine.Needs(wvWavelength), Gives: wvWaveNumber, Eval: func(v engine.Values) (float64, bool) {
			return div(2*math.Pi, v.At(wvWavelength))
		}},
	},
}

// Wave relates frequency, period, wavelength and speed from any two of them.
func Wave(in WaveInput) (engine.Result[WaveOutputs], error) {
	return wave(in.Set())
}

func wave(in quantity.Set) (engine.Result[WaveOutputs], error) {
	v, err := waveModel.solve(in)
	if err != nil {
		return engine.Result[WaveOutputs]{}, err
	}

	out := WaveOutputs{
		Frequency:        v.Quantity(wvFrequency),
		Wavelength:       v.Quantity(wvWavelength),
		Speed:            v.Quantity(wvSpeed),
		Period:           v.Quantity(wvPeriod),
		Amplitude:        v.Quantity(wvAmplitude),
		AngularFrequency: v.Quantity(wvOmega),
		WaveNumber:       v.Quantity(wvWaveNumber),
	}

	// Curves are drawn at unit amplitude when none was given.
	a := 1.0
	if x, ok := v.Get(wvAmplitude); ok {
		a = x
	}

	var curves []engine.Series
	if v.HasAll(engine.Needs(wvPeriod, wvOmega)) {
		w := v.At(wvOmega)
		curves = append(curves, engine.Series{
			Name: "displacement_time", XLabel: "t (s)", YLabel: "y (m)",
			Points: engine.Sample(0, v.At(wvPeriod), waveSamples, func(t float64) float64 {
				return a * math.Sin(w*t)
			}),
		})
	}
	if v.HasAll(engine.Needs(wvWavelength, wvWaveNumber)) {
		k := v.At(wvWaveNumber)
		curves = append(curves, engine.Series{
			Name: "displacement_space", XLabel: "x (m)", YLabel: "y (m)",
			Points: engine.Sample(0, v.At(wvWavelength), waveSamples, func(x float64) float64 {
				return a * math.Sin(k*x)
			}),
		})
	}

	return engine.Assemble(engine.Wave, out, curves, nil)
}
