package physics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/physics"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

var q = quantity.Of

var _ = Describe("Projectile", func() {
	It("lands a 45° launch from the ground", func() {
		res, err := physics.Projectile(physics.ProjectileInput{Velocity: q(20), Angle: q(45), Height: q(0)})
		Expect(err).NotTo(HaveOccurred())

		Expect(value(res.Outputs.Range)).To(BeNumerically("~", 40.77, 0.01))
		Expect(value(res.Outputs.MaxHeight)).To(BeNumerically("~", 10.19, 0.01))
		approx(res.Outputs.TimeToApex, value(res.Outputs.FlightTime)/2)
		approx(res.Outputs.ImpactSpeed, 20)
		approx(res.Outputs.ImpactAngle, 45)

		traj, ok := res.Curve("trajectory")
		Expect(ok).To(BeTrue())
		Expect(traj.Points).To(HaveLen(100))
		last := traj.Points[len(traj.Points)-1]
		Expect(last.Y).To(BeNumerically("~", 0, 1e-9))
		Expect(last.X).To(BeNumerically("~", value(res.Outputs.Range), 1e-9))
	})

	It("defaults the launch height to zero", func() {
		res, err := physics.Projectile(physics.ProjectileInput{Velocity: q(20), Angle: q(30)})
		Expect(err).NotTo(HaveOccurred())
		Expect(value(res.Outputs.Height)).To(BeZero())
	})

	It("has zero range when fired straight up", func() {
		res, err := physics.Projectile(physics.ProjectileInput{Velocity: q(20), Angle: q(90)})
		Expect(err).NotTo(HaveOccurred())
		Expect(value(res.Outputs.Range)).To(BeNumerically("~", 0, 1e-12))
		approx(res.Outputs.MaxHeight, 400/(2*physics.Gravity))

		_, ok := res.Curve("trajectory")
		Expect(ok).To(BeFalse())
		Expect(res.Paths).To(HaveLen(1))
		Expect(res.Paths[0].Name).To(Equal("trajectory"))
		for _, p := range res.Paths[0].Points {
			Expect(p.X).To(BeZero())
		}
	})

	It("samples every curve strictly increasing in x", func() {
		for _, in := range []physics.ProjectileInput{
			{Velocity: q(20), Angle: q(45)},
			{Velocity: q(20), Angle: q(90)},
			{Velocity: q(0), Angle: q(0), Height: q(10)},
			{Velocity: q(15), Angle: q(0), Height: q(5)},
		} {
			res, err := physics.Projectile(in)
			Expect(err).NotTo(HaveOccurred())
			for _, c := range res.Curves {
				for i := 1; i < len(c.Points); i++ {
					Expect(c.Points[i].X).To(BeNumerically(">", c.Points[i-1].X), c.Name)
				}
			}
		}
	})

	It("drops from a height with a horizontal launch", func() {
		res, err := physics.Projectile(physics.ProjectileInput{Velocity: q(0), Angle: q(0), Height: q(10)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.FlightTime, math.Sqrt(2*10/physics.Gravity))
		approx(res.Outputs.ImpactSpeed, math.Sqrt(2*physics.Gravity*10))
		approx(res.Outputs.ImpactAngle, 90)
		Expect(value(res.Outputs.Range)).To(BeZero())
	})

	It("needs both speed and angle", func() {
		_, err := physics.Projectile(physics.ProjectileInput{Velocity: q(20)})
		Expect(err).To(MatchError(validate.ErrInsufficientInput))
	})

	It("reports every illegal value together", func() {
		_, err := physics.Projectile(physics.ProjectileInput{Velocity: q(-1), Angle: q(95)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))

		var verr *validate.Error
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Violations).To(HaveLen(2))
		Expect(verr.Violates("velocity")).To(BeTrue())
		Expect(verr.Violates("angle")).To(BeTrue())
	})
})

var _ = Describe("Harmonic", func() {
	It("starts at equilibrium with maximum speed", func() {
		res, err := physics.Harmonic(physics.HarmonicInput{Amplitude: q(5), Frequency: q(1), Time: q(0), Phase: q(0)})
		Expect(err).NotTo(HaveOccurred())

		Expect(value(res.Outputs.Position)).To(BeNumerically("~", 0, 1e-12))
		Expect(value(res.Outputs.Velocity)).To(BeNumerically("~", 31.4, 0.05))
		approx(res.Outputs.Velocity, 2*math.Pi*5)
		approx(res.Outputs.Period, 1)
		approx(res.Outputs.MaxVelocity, 2*math.Pi*5)
		Expect(res.Outputs.SpringConstant.Present()).To(BeFalse())
		Expect(res.Outputs.TotalEnergy.Present()).To(BeFalse())

		pos, ok := res.Curve("position")
		Expect(ok).To(BeTrue())
		Expect(pos.Points).To(HaveLen(200))
		Expect(pos.Points[0].X).To(BeZero())
		Expect(pos.Points[199].X).To(Equal(1.0))
	})

	It("applies the phase", func() {
		res, err := physics.Harmonic(physics.HarmonicInput{Amplitude: q(5), Frequency: q(1), Time: q(0), Phase: q(math.Pi / 2)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Position, 5)
		approx(res.Outputs.Acceleration, -4*math.Pi*math.Pi*5)
	})

	It("derives spring constant and energy from the mass", func() {
		res, err := physics.Harmonic(physics.HarmonicInput{Amplitude: q(5), Frequency: q(1), Time: q(0), Mass: q(2)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.SpringConstant, 78.95683520871486)
		approx(res.Outputs.TotalEnergy, 986.9604401089358)
	})

	It("rejects a zero frequency", func() {
		_, err := physics.Harmonic(physics.HarmonicInput{Amplitude: q(5), Frequency: q(0), Time: q(0)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))

		var verr *validate.Error
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Violates("frequency")).To(BeTrue())
	})
})

var _ = Describe("Kinematics", func() {
	DescribeTable("solves from any three quantities",
		func(in physics.KinematicsInput, u, v, a, t, s float64) {
			res, err := physics.Kinematics(in)
			Expect(err).NotTo(HaveOccurred())
			approx(res.Outputs.InitialVelocity, u)
			approx(res.Outputs.FinalVelocity, v)
			approx(res.Outputs.Acceleration, a)
			approx(res.Outputs.Time, t)
			approx(res.Outputs.Displacement, s)
			approx(res.Outputs.AverageVelocity, (u+v)/2)
		},
		Entry("u, a, t", physics.KinematicsInput{InitialVelocity: q(0), Acceleration: q(2), Time: q(3)}, 0.0, 6.0, 2.0, 3.0, 9.0),
		Entry("u, a, s", physics.KinematicsInput{InitialVelocity: q(0), Acceleration: q(2), Displacement: q(9)}, 0.0, 6.0, 2.0, 3.0, 9.0),
		Entry("u, v, a", physics.KinematicsInput{InitialVelocity: q(10), FinalVelocity: q(0), Acceleration: q(-2)}, 10.0, 0.0, -2.0, 5.0, 25.0),
		Entry("v, a, s", physics.KinematicsInput{FinalVelocity: q(6), Acceleration: q(2), Displacement: q(9)}, 0.0, 6.0, 2.0, 3.0, 9.0),
		Entry("u, v, s", physics.KinematicsInput{InitialVelocity: q(2), FinalVelocity: q(8), Displacement: q(15)}, 2.0, 8.0, 2.0, 3.0, 15.0),
		Entry("a, t, s", physics.KinematicsInput{Acceleration: q(2), Time: q(3), Displacement: q(9)}, 0.0, 6.0, 2.0, 3.0, 9.0),
		Entry("v, t, s", physics.KinematicsInput{FinalVelocity: q(6), Time: q(3), Displacement: q(9)}, 0.0, 6.0, 2.0, 3.0, 9.0),
	)

	It("takes the earliest time when the body passes the point twice", func() {
		res, err := physics.Kinematics(physics.KinematicsInput{InitialVelocity: q(10), Acceleration: q(-2), Displacement: q(21)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Time, 3)
		approx(res.Outputs.FinalVelocity, 4)
	})

	It("samples position and velocity over the elapsed time", func() {
		res, err := physics.Kinematics(physics.KinematicsInput{InitialVelocity: q(0), Acceleration: q(2), Time: q(3)})
		Expect(err).NotTo(HaveOccurred())
		pos, ok := res.Curve("position")
		Expect(ok).To(BeTrue())
		Expect(pos.Points).To(HaveLen(100))
		Expect(pos.Points[99]).To(Equal(engine.Point{X: 3, Y: 9}))
	})

	It("rejects inconsistent motion", func() {
		_, err := physics.Kinematics(physics.KinematicsInput{InitialVelocity: q(0), Acceleration: q(2), Time: q(3), FinalVelocity: q(7)})
		Expect(err).To(MatchError(engine.ErrInconsistentInput))
	})

	It("needs three quantities", func() {
		_, err := physics.Kinematics(physics.KinematicsInput{InitialVelocity: q(0), Acceleration: q(2)})
		Expect(err).To(MatchError(validate.ErrInsufficientInput))
	})

	It("rejects negative time", func() {
		_, err := physics.Kinematics(physics.KinematicsInput{InitialVelocity: q(0), Acceleration: q(2), Time: q(-1)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))
	})
})

var _ = Describe("Energy", func() {
	It("computes kinetic energy and momentum", func() {
		res, err := physics.Energy(physics.EnergyInput{Mass: q(2), Velocity: q(3)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.KineticEnergy, 9)
		approx(res.Outputs.Momentum, 6)
		Expect(res.Outputs.PotentialEnergy.Present()).To(BeFalse())
	})

	It("computes potential energy and fall speed", func() {
		res, err := physics.Energy(physics.EnergyInput{Mass: q(2), Height: q(10)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.PotentialEnergy, 196.2)
		approx(res.Outputs.FallSpeed, 14.007141035914502)
	})

	It("recovers speed and mass from energies", func() {
		res, err := physics.Energy(physics.EnergyInput{KineticEnergy: q(9), Mass: q(2)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Velocity, 3)

		res, err = physics.Energy(physics.EnergyInput{PotentialEnergy: q(196.2), Height: q(10)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Mass, 2)
	})

	It("trades potential for kinetic energy up to the top", func() {
		res, err := physics.Energy(physics.EnergyInput{Mass: q(1), Velocity: q(0), Height: q(10)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.TotalEnergy, 98.1)

		pe, ok := res.Curve("potential")
		Expect(ok).To(BeTrue())
		top := pe.Points[len(pe.Points)-1]
		Expect(top.X).To(BeNumerically("~", 10, 1e-9))
		Expect(top.Y).To(BeNumerically("~", 98.1, 1e-9))

		ke, _ := res.Curve("kinetic")
		Expect(ke.Points[len(ke.Points)-1].Y).To(BeNumerically("~", 0, 1e-9))
	})

	It("rejects inconsistent kinetic energy", func() {
		_, err := physics.Energy(physics.EnergyInput{Mass: q(2), Velocity: q(3), KineticEnergy: q(10)})
		Expect(err).To(MatchError(engine.ErrInconsistentInput))
	})
})

var _ = Describe("Rotation", func() {
	It("applies τ = Iα in every direction", func() {
		res, err := physics.Rotation(physics.RotationInput{Inertia: q(2), AngularAcceleration: q(3)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Torque, 6)

		res, err = physics.Rotation(physics.RotationInput{Torque: q(6), AngularAcceleration: q(3)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Inertia, 2)
	})

	It("treats mass and radius as a point mass", func() {
		res, err := physics.Rotation(physics.RotationInput{Mass: q(2), Radius: q(0.5)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Inertia, 0.5)
	})

	It("prefers an explicit moment of inertia over the point mass", func() {
		res, err := physics.Rotation(physics.RotationInput{Inertia: q(1), Mass: q(2), Radius: q(0.5)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Inertia, 1)
	})

	It("spins up under constant angular acceleration", func() {
		res, err := physics.Rotation(physics.RotationInput{Inertia: q(2), AngularVelocity: q(1), AngularAcceleration: q(2), Time: q(3)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.FinalAngularVelocity, 7)
		approx(res.Outputs.Angle, 12)
		approx(res.Outputs.AngularMomentum, 2)
		approx(res.Outputs.KineticEnergy, 1)

		angle, ok := res.Curve("angle")
		Expect(ok).To(BeTrue())
		Expect(angle.Points[len(angle.Points)-1].Y).To(BeNumerically("~", 12, 1e-9))
	})

	It("rejects a non-positive moment of inertia", func() {
		_, err := physics.Rotation(physics.RotationInput{Inertia: q(0), Torque: q(1)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))
	})
})
