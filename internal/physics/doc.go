// Package physics provides the closed-form calculators of the eleven domains.
//
// Each domain exposes one typed operation taking a struct of optional inputs
// and returning an immutable [engine.Result]:
//
//   - [Projectile]: launch speed and angle to range, apex and trajectory
//   - [Harmonic]: simple harmonic motion over one period
//   - [Circuit]: Ohm's law and power
//   - [Wave]: frequency, wavelength, speed and period
//   - [Kinematics]: constant acceleration (suvat) relations
//   - [Energy]: kinetic and potential energy exchange
//   - [Fluid]: hydrostatic pressure, buoyancy and flow
//   - [Rotation]: torque, angular momentum and rotational energy
//   - [Thermo]: ideal gas law and sensible heat
//   - [Magnetism]: solenoid field, flux, Lorentz force and cyclotron motion
//   - [Electrostatics]: Coulomb's law, point-charge fields and capacitors
//
// Every operation validates its inputs against the domain rule table, solves
// the domain relation table with [engine.Solve], rejects over-determined
// inputs that disagree, samples the domain curves from the solved values and
// assembles the result. [Compute] dispatches the same operations by domain
// name over a [quantity.Set].
//
// # Example
//
//	res, err := physics.Circuit(physics.CircuitInput{
//	    Voltage:    quantity.Of(12),
//	    Resistance: quantity.Of(4),
//	})
//	current, _ := res.Outputs.Current.Get() // 3
package physics
