package physics

import (
	"fmt"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

// Entry describes one registered domain.
type Entry struct {
	Domain engine.Domain
	Title  string

	model   model
	compute func(quantity.Set) (engine.Summary, error)
}

// Rule returns the validation rule of the domain.
func (e Entry) Rule() validate.Rule { return e.model.rule }

// Inputs lists the accepted input names in slot order.
func (e Entry) Inputs() []string {
	return append([]string(nil), e.model.rule.Inputs...)
}

// Compute runs the domain calculator on in.
func (e Entry) Compute(in quantity.Set) (engine.Summary, error) {
	return e.compute(in)
}

func summarize[R engine.Record](f func(quantity.Set) (engine.Result[R], error)) func(quantity.Set) (engine.Summary, error) {
	return func(in quantity.Set) (engine.Summary, error) {
		res, err := f(in)
		if err != nil {
			return engine.Summary{}, err
		}
		return res.Summary(), nil
	}
}

var registry = []Entry{
	{Domain: engine.Projectile, Title: "Projectile motion", model: projectileModel, compute: summarize(projectile)},
	{Domain: engine.Harmonic, Title: "Simple harmonic motion", model: harmonicModel, compute: summarize(harmonic)},
	{Domain: engine.Circuit, Title: "DC circuit", model: circuitModel, compute: summarize(circuit)},
	{Domain: engine.Wave, Title: "Waves", model: waveModel, compute: summarize(wave)},
	{Domain: engine.Kinematics, Title: "Kinematics", model: kinematicsModel, compute: summarize(kinematics)},
	{Domain: engine.Energy, Title: "Mechanical energy", model: energyModel, compute: summarize(energy)},
	{Domain: engine.Fluid, Title: "Fluid mechanics", model: fluidModel, compute: summarize(fluid)},
	{Domain: engine.Rotation, Title: "Rotational motion", model: rotationModel, compute: summarize(rotation)},
	{Domain: engine.Thermo, Title: "Thermodynamics", model: thermoModel, compute: summarize(thermo)},
	{Domain: engine.Magnetism, Title: "Magnetism", model: magnetismModel, compute: summarize(magnetism)},
	{Domain: engine.Electrostatics, Title: "Electrostatics", model: electrostaticsModel, compute: summarize(electrostatics)},
}

// Entries returns every registered domain in the order of [engine.Domains].
func Entries() []Entry {
	return append([]Entry(nil), registry...)
}

// Lookup returns the entry of d.
func Lookup(d engine.Domain) (Entry, error) {
	for _, e := range registry {
		if e.Domain == d {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", engine.ErrUnknownDomain, d)
}

// Compute validates and evaluates in for domain d.
func Compute(d engine.Domain, in quantity.Set) (engine.Summary, error) {
	e, err := Lookup(d)
	if err != nil {
		return engine.Summary{}, err
	}
	return e.compute(in)
}
