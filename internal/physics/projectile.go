package physics

import (
	"math"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

const projectileSamples = 100

const (
	pjVelocity engine.Slot = iota
	pjAngle
	pjHeight
	pjVx
	pjVy
	pjApexTime
	pjFlightTime
	pjMaxHeight
	pjRange
	pjImpactSpeed
	pjImpactAngle
)

// ProjectileInput is a launch from height above level ground. Angle is in
// degrees above the horizontal. Height defaults to 0.
type ProjectileInput struct {
	Velocity quantity.Quantity
	Angle    quantity.Quantity
	Height   quantity.Quantity
}

func (in ProjectileInput) Set() quantity.Set {
	return quantity.NewSet(map[string]quantity.Quantity{
		"velocity": in.Velocity,
		"angle":    in.Angle,
		"height":   in.Height,
	})
}

// ProjectileOutputs holds the resolved launch.
type ProjectileOutputs struct {
	Velocity           quantity.Quantity
	Angle              quantity.Quantity
	Height             quantity.Quantity
	HorizontalVelocity quantity.Quantity
	VerticalVelocity   quantity.Quantity
	TimeToApex         quantity.Quantity
	FlightTime         quantity.Quantity
	MaxHeight          quantity.Quantity
	Range              quantity.Quantity
	ImpactSpeed        quantity.Quantity
	ImpactAngle        quantity.Quantity
}

func (o ProjectileOutputs) Scalars() []engine.Scalar {
	return []engine.Scalar{
		scalar("velocity", "m/s", o.Velocity),
		scalar("angle", "deg", o.Angle),
		scalar("height", "m", o.Height),
		scalar("horizontal_velocity", "m/s", o.HorizontalVelocity),
		scalar("vertical_velocity", "m/s", o.VerticalVelocity),
		scalar("time_to_apex", "s", o.TimeToApex),
		scalar("flight_time", "s", o.FlightTime),
		scalar("max_height", "m", o.MaxHeight),
		scalar("range", "m", o.Range),
		scalar("impact_speed", "m/s", o.ImpactSpeed),
		scalar("impact_angle", "deg", o.ImpactAngle),
	}
}

var projectileModel = model{
	rule: validate.Rule{
		Domain: engine.Projectile,
		Inputs: []string{"velocity", "angle", "height"},
		Groups: [][]string{{"velocity", "angle"}},
		Checks: []validate.Check{
			{Quantity: "velocity", Must: validate.NonNegative()},
			{Quantity: "angle", Must: validate.Between(0, 90)},
			{Quantity: "height", Must: validate.NonNegative()},
		},
	},
	defaults: map[engine.Slot]float64{pjHeight: 0},
	relations: []engine.Relation{
		{Name: "vx = v cos θ", Needs: engine.Needs(pjVelocity, pjAngle), Gives: pjVx, Eval: func(v engine.Values) (float64, bool) {
			return v.At(pjVelocity) * cosDeg(v.At(pjAngle)), true
		}},
		{Name: "vy = v sin θ", Needs: engine.Needs(pjVelocity, pjAngle), Gives: pjVy, Eval: func(v engine.Values) (float64, bool) {
			return v.At(pjVelocity) * sinDeg(v.At(pjAngle)), true
		}},
		{Name: "t_apex = vy / g", Needs: engine.Needs(pjVy), Gives: pjApexTime, Eval: func(v engine.Values) (float64, bool) {
			return v.At(pjVy) / Gravity, true
		}},
		{Name: "t_flight = (vy + √(vy² + 2gh)) / g", Needs: engine.Needs(pjVy, pjHeight), Gives: pjFlightTime, Eval: func(v engine.Values) (float64, bool) {
			vy := v.At(pjVy)
			r, ok := sqrt(vy*vy + 2*Gravity*v.At(pjHeight))
			return (vy + r) / Gravity, ok
		}},
		{Name: "h_max = h + vy² / 2g", Needs: engine.Needs(pjVy, pjHeight), Gives: pjMaxHeight, Eval: func(v engine.Values) (float64, bool) {
			vy := v.At(pjVy)
			return v.At(pjHeight) + vy*vy/(2*Gravity), true
		}},
		{Name: "range = vx t_flight", Needs: engine.Needs(pjVx, pjFlightTime), Gives: pjRange, Eval: func(v engine.Values) (float64, bool) {
			return v.At(pjVx) * v.At(pjFlightTime), true
		}},
		{Name: "v_impact = √(v² + 2gh)", Needs: engine.Needs(pjVelocity, pjHeight), Gives: pjImpactSpeed, Eval: func(v engine.Values) (float64, bool) {
			v0 := v.At(pjVelocity)
			return sqrt(v0*v0 + 2*Gravity*v.At(pjHeight))
		}},
		{Name: "θ_impact = atan(vy_impact / vx)", Needs: engine.Needs(pjVx, pjVy, pjHeight), Gives: pjImpactAngle, Eval: func(v engine.Values) (float64, bool) {
			vy := v.At(pjVy)
			down, ok := sqrt(vy*vy + 2*Gravity*v.At(pjHeight))
			return deg(math.Atan2(down, v.At(pjVx))), ok
		}},
	},
}

// Projectile resolves a launch and samples its trajectory over the flight time.
func Projectile(in ProjectileInput) (engine.Result[ProjectileOutputs], error) {
	return projectile(in.Set())
}

func projectile(in quantity.Set) (engine.Result[ProjectileOutputs], error) {
	v, err := projectileModel.solve(in)
	if err != nil {
		return engine.Result[ProjectileOutputs]{}, err
	}

	out := ProjectileOutputs{
		Velocity:           v.Quantity(pjVelocity),
		Angle:              v.Quantity(pjAngle),
		Height:             v.Quantity(pjHeight),
		HorizontalVelocity: v.Quantity(pjVx),
		VerticalVelocity:   v.Quantity(pjVy),
		TimeToApex:         v.Quantity(pjApexTime),
		FlightTime:         v.Quantity(pjFlightTime),
		MaxHeight:          v.Quantity(pjMaxHeight),
		Range:              v.Quantity(pjRange),
		ImpactSpeed:        v.Quantity(pjImpactSpeed),
		ImpactAngle:        v.Quantity(pjImpactAngle),
	}

	vx, vy, h, tf := v.At(pjVx), v.At(pjVy), v.At(pjHeight), v.At(pjFlightTime)
	y := func(t float64) float64 {
		// the last sample lands on the ground, not a rounding error below it
		return math.Max(0, h+vy*t-0.5*Gravity*t*t)
	}

	trajectory := engine.Trace(0, tf, projectileSamples, func(t float64) engine.Point {
		return engine.Point{X: vx * t, Y: y(t)}
	})
	curves := []engine.Series{
		{
			Name: "height", XLabel: "t (s)", YLabel: "y (m)",
			Points: engine.Sample(0, tf, projectileSamples, y),
		},
		{
			Name: "vertical_velocity", XLabel: "t (s)", YLabel: "vy (m/s)",
			Points: engine.Sample(0, tf, projectileSamples, func(t float64) float64 { return vy - Gravity*t }),
		},
	}

	// Without horizontal motion the flight is a vertical line, which is not a
	// function of x, so it is returned as a path.
	var paths []engine.Path
	if vx > 0 || len(trajectory) == 1 {
		curves = append([]engine.Series{{Name: "trajectory", XLabel: "x (m)", YLabel: "y (m)", Points: trajectory}}, curves...)
	} else {
		paths = append(paths, engine.Path{Name: "trajectory", Points: trajectory})
	}

	return engine.Assemble(engine.Projectile, out, curves, paths)
}
