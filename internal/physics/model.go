package physics

import (
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

// model ties a domain's rule table to its relation table. Input quantity i
// of rule.Inputs occupies slot i of the value vector; derived quantities use
// the slots after the inputs.
type model struct {
	rule      validate.Rule
	relations []engine.Relation

	// defaults fill optional inputs that have a conventional value when absent.
	defaults map[engine.Slot]float64
}

// solve validates in, loads it into a value vector and derives every
// reachable quantity.
func (m model) solve(in quantity.Set) (engine.Values, error) {
	if err := m.rule.Validate(in); err != nil {
		return engine.Values{}, err
	}

	var v engine.Values
	for i, name := range m.rule.Inputs {
		v.SetQuantity(engine.Slot(i), in.Get(name))
	}
	for slot, x := range m.defaults {
		if !v.Known(slot) {
			v.Set(slot, x)
		}
	}

	v, _ = engine.Solve(m.relations, v)
	if bad := engine.Inconsistencies(m.relations, v); len(bad) > 0 {
		return engine.Values{}, &engine.InconsistencyError{Domain: m.rule.Domain, Relations: bad}
	}
	return v, nil
}

// Relations exposes a domain's relation table, in priority order.
func Relations(d engine.Domain) ([]engine.Relation, error) {
	e, err := Lookup(d)
	if err != nil {
		return nil, err
	}
	return e.model.relations, nil
}

func scalar(name, unit string, q quantity.Quantity) engine.Scalar {
	return engine.Scalar{Name: name, Unit: unit, Value: q}
}
