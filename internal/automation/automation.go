package automation

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/EEseka/physiquest/internal/config"
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
)

// ErrScenario reports a malformed scenario or sweep definition.
var ErrScenario = errors.New("automation: invalid scenario")

// Scenario is a scripted batch of calculations.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one calculation of a scenario. Inputs override the preset's
// values; a null input removes it.
type Step struct {
	Domain string         `yaml:"domain"`
	Preset string         `yaml:"preset"`
	Inputs map[string]any `yaml:"inputs"`
	SaveAs string         `yaml:"save_as"`
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScenario, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrScenario)
	}
	return &scenario, nil
}

// Request resolves the step into a domain and an input set.
func (s Step) Request() (engine.Domain, quantity.Set, error) {
	d, err := engine.ParseDomain(s.Domain)
	if err != nil {
		return "", quantity.Set{}, err
	}

	in := quantity.NewSet(nil)
	if s.Preset != "" {
		in, err = config.PresetSet(d, s.Preset)
		if err != nil {
			return "", quantity.Set{}, err
		}
	}

	names := make([]string, 0, len(s.Inputs))
	for name := range s.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		raw := s.Inputs[name]
		if raw == nil {
			in = in.With(name, quantity.Absent)
			continue
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return "", quantity.Set{}, fmt.Errorf("%w: input %s: %v", ErrScenario, name, err)
		}
		in = in.With(name, quantity.Of(v))
	}
	return d, in, nil
}
