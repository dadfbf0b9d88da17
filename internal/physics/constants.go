package physics

import "math"

// Physical constants, SI units.
const (
	Gravity     = 9.81             // m/s²
	CoulombK    = 8.9875517923e9   // N·m²/C²
	Epsilon0    = 8.8541878128e-12 // F/m
	Mu0         = 1.25663706212e-6 // N/A²
	GasConstant = 8.314462618      // J/(mol·K)
	AtmPressure = 101325.0         // Pa
)

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }

// sinDeg and cosDeg return exact values at multiples of 90° so that vertical
// and horizontal launches produce exact zero components.
func sinDeg(d float64) float64 {
	switch d {
	case 0, 180:
		return 0
	case 90:
		return 1
	}
	return math.Sin(rad(d))
}

func cosDeg(d float64) float64 {
	switch d {
	case 0:
		return 1
	case 90:
		return 0
	case 180:
		return -1
	}
	return math.Cos(rad(d))
}

func div(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// positive declines non-positive results, for quantities that must be > 0.
func positive(x float64, ok bool) (float64, bool) {
	return x, ok && x > 0
}

// nonNegative declines negative results, for times and magnitudes.
func nonNegative(x float64, ok bool) (float64, bool) {
	return x, ok && x >= 0
}

func sqrt(x float64) (float64, bool) {
	if x < 0 {
		return 0, false
	}
	return math.Sqrt(x), true
}

// span orders 0 and x into an ascending interval.
func span(x float64) (float64, float64) {
	if x < 0 {
		return x, 0
	}
	return 0, x
}
