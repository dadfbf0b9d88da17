package engine

import (
	"fmt"
	"math"
	"strings"
)

// Domain names one physics subject area.
type Domain string

const (
	Projectile     Domain = "projectile"
	Harmonic       Domain = "harmonic"
	Circuit        Domain = "circuit"
	Wave           Domain = "wave"
	Kinematics     Domain = "kinematics"
	Energy         Domain = "energy"
	Fluid          Domain = "fluid"
	Rotation       Domain = "rotation"
	Thermo         Domain = "thermo"
	Magnetism      Domain = "magnetism"
	Electrostatics Domain = "electrostatics"
)

// Domains lists every domain in a stable order.
var Domains = []Domain{
	Projectile, Harmonic, Circuit, Wave, Kinematics, Energy,
	Fluid, Rotation, Thermo, Magnetism, Electrostatics,
}

var domainAliases = map[string]Domain{
	"shm":         Harmonic,
	"oscillator":  Harmonic,
	"dc":          Circuit,
	"ohm":         Circuit,
	"waves":       Wave,
	"suvat":       Kinematics,
	"fluids":      Fluid,
	"rotational":  Rotation,
	"heat":        Thermo,
	"electricity": Electrostatics,
	"coulomb":     Electrostatics,
}

// ParseDomain resolves a domain name or one of its aliases.
func ParseDomain(s string) (Domain, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Domains {
		if string(d) == name {
			return d, nil
		}
	}
	if d, ok := domainAliases[name]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}

// Point is one plotted sample. Never NaN or Inf once assembled.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) IsValid() bool {
	return finite(p.X) && finite(p.Y)
}

// Series is a function curve ordered by X.
type Series struct {
	Name   string  `json:"name"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Points []Point `json:"points"`
}

// Ys returns the Y values in order.
func (s Series) Ys() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}

// Path is a geometric polyline such as a field line or an orbit. Its points
// are ordered along the curve, not by X.
type Path struct {
	Name   string  `json:"name"`
	Closed bool    `json:"closed"`
	Points []Point `json:"points"`
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
