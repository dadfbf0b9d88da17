package config

import (
	"fmt"
	"sort"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
)

// Presets holds named example input sets per domain.
var Presets = map[engine.Domain]map[string]map[string]float64{
	engine.Projectile: {
		"45deg":    {"velocity": 20, "angle": 45},
		"cliff":    {"velocity": 15, "angle": 30, "height": 50},
		"lob":      {"velocity": 12, "angle": 75},
		"vertical": {"velocity": 20, "angle": 90},
	},
	engine.Harmonic: {
		"spring": {"amplitude": 0.1, "frequency": 2, "time": 0, "mass": 0.5},
		"tuning": {"amplitude": 0.001, "frequency": 440, "time": 0},
	},
	engine.Circuit: {
		"battery": {"voltage": 9, "resistance": 330},
		"mains":   {"voltage": 230, "current": 10},
	},
	engine.Wave: {
		"sound": {"frequency": 440, "speed": 343},
		"light": {"wavelength": 5.5e-7, "speed": 2.998e8},
	},
	engine.Kinematics: {
		"braking": {"initial_velocity": 27, "final_velocity": 0, "acceleration": -6},
		"drop":    {"initial_velocity": 0, "acceleration": 9.81, "time": 2},
	},
	engine.Energy: {
		"roller": {"mass": 500, "height": 40, "velocity": 2},
		"ball":   {"mass": 0.45, "velocity": 25},
	},
	engine.Fluid: {
		"pool":  {"density": 1000, "depth": 3, "area": 0.25},
		"ocean": {"density": 1025, "depth": 100},
		"hose":  {"area": 3e-4, "flow_velocity": 4},
	},
	engine.Rotation: {
		"wheel":    {"inertia": 0.8, "angular_velocity": 2, "torque": 4, "time": 5},
		"flywheel": {"mass": 20, "radius": 0.3, "angular_velocity": 50},
	},
	engine.Thermo: {
		"kettle": {"temperature": 293, "mass": 1.5, "specific_heat": 4186, "temperature_change": 80, "heating_power": 2000},
		"stp":    {"pressure": 101325, "moles": 1, "temperature": 273.15},
	},
	engine.Magnetism: {
		"electron": {"charge": -1.602e-19, "velocity": 2e6, "field": 0.01, "mass": 9.109e-31},
		"solenoid": {"turns": 500, "current": 3, "solenoid_length": 0.25, "area": 0.002},
		"wire":     {"field": 0.5, "current": 10, "wire_length": 0.2, "angle": 60},
	},
	engine.Electrostatics: {
		"coulomb":   {"charge1": 2e-6, "charge2": -3e-6, "distance": 0.05},
		"capacitor": {"capacitance": 4.7e-6, "voltage": 12},
		"plates":    {"area": 0.02, "separation": 5e-4, "voltage": 100},
	},
}

// GetPreset returns the named preset of domain d, or nil.
func GetPreset(d engine.Domain, name string) map[string]float64 {
	domainPresets, ok := Presets[d]
	if !ok {
		return nil
	}
	p, ok := domainPresets[name]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// PresetSet resolves a preset into an input set.
func PresetSet(d engine.Domain, name string) (quantity.Set, error) {
	p := GetPreset(d, name)
	if p == nil {
		return quantity.Set{}, fmt.Errorf("unknown preset %q for %s (available: %v)", name, d, ListPresets(d))
	}
	return quantity.Values(p), nil
}

// ListPresets returns the preset names of d, sorted.
func ListPresets(d engine.Domain) []string {
	domainPresets, ok := Presets[d]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(domainPresets))
	for name := range domainPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
