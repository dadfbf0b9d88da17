package physics_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/physics"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

var _ = Describe("Circuit", func() {
	DescribeTable("solves Ohm's law from any two quantities",
		func(in physics.CircuitInput, v, i, r float64) {
			res, err := physics.Circuit(in)
			Expect(err).NotTo(HaveOccurred())
			approx(res.Outputs.Voltage, v)
			approx(res.Outputs.Current, i)
			approx(res.Outputs.Resistance, r)
			approx(res.Outputs.Power, v*i)
			approx(res.Outputs.Conductance, 1/r)
		},
		Entry("voltage and resistance", physics.CircuitInput{Voltage: q(12), Resistance: q(4)}, 12.0, 3.0, 4.0),
		Entry("current and resistance", physics.CircuitInput{Current: q(2), Resistance: q(5)}, 10.0, 2.0, 5.0),
		Entry("voltage and current", physics.CircuitInput{Voltage: q(10), Current: q(2)}, 10.0, 2.0, 5.0),
		Entry("negative voltage", physics.CircuitInput{Voltage: q(-6), Resistance: q(3)}, -6.0, -2.0, 3.0),
	)

	It("rejects a lone voltage as insufficient", func() {
		res, err := physics.Circuit(physics.CircuitInput{Voltage: q(12)})
		Expect(err).To(MatchError(validate.ErrInsufficientInput))
		Expect(res).To(BeZero())
	})

	It("rejects a negative resistance by name", func() {
		_, err := physics.Circuit(physics.CircuitInput{Voltage: q(10), Resistance: q(-5)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))

		var verr *validate.Error
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Violates("resistance")).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("resistance"))
	})

	It("rejects voltage and current of opposite sign as a negative resistance", func() {
		res, err := physics.Circuit(physics.CircuitInput{Voltage: q(12), Current: q(-2)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))
		Expect(res).To(BeZero())

		var verr *validate.Error
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Violates("resistance")).To(BeTrue())
		Expect(verr.Violations[0].Value).To(BeNumerically("~", -6, 1e-12))
	})

	It("rejects three values that disagree", func() {
		_, err := physics.Circuit(physics.CircuitInput{Voltage: q(10), Current: q(1), Resistance: q(5)})
		Expect(err).To(MatchError(engine.ErrInconsistentInput))

		var ierr *engine.InconsistencyError
		Expect(errors.As(err, &ierr)).To(BeTrue())
		Expect(ierr.Relations).NotTo(BeEmpty())
	})

	It("accepts three values that agree", func() {
		res, err := physics.Circuit(physics.CircuitInput{Voltage: q(10), Current: q(2), Resistance: q(5)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Power, 20)
	})

	It("leaves the resistance absent when no current flows", func() {
		res, err := physics.Circuit(physics.CircuitInput{Voltage: q(0), Current: q(0)})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Outputs.Resistance.Present()).To(BeFalse())
		Expect(value(res.Outputs.Power)).To(BeZero())
		Expect(res.Curves).To(BeEmpty())
	})

	It("samples the I-V line through the origin", func() {
		res, err := physics.Circuit(physics.CircuitInput{Voltage: q(-6), Resistance: q(3)})
		Expect(err).NotTo(HaveOccurred())
		iv, ok := res.Curve("iv")
		Expect(ok).To(BeTrue())
		Expect(iv.Points).To(HaveLen(50))
		Expect(iv.Points[0]).To(Equal(engine.Point{X: -6, Y: -2}))
		Expect(iv.Points[49]).To(Equal(engine.Point{X: 0, Y: 0}))
	})
})

var _ = Describe("Magnetism", func() {
	It("moves an electron on a circle", func() {
		res, err := physics.Magnetism(physics.MagnetismInput{
			Charge: q(1.6e-19), Velocity: q(1e6), Field: q(0.5), Mass: q(9.11e-31),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Angle, 90)
		approx(res.Outputs.LorentzForce, 8e-14)
		approx(res.Outputs.CyclotronRadius, 1.13875e-05)
		approx(res.Outputs.CyclotronPeriod, 7.154977268550754e-11)
		approx(res.Outputs.CyclotronFrequency, 1/7.154977268550754e-11)

		Expect(res.Paths).To(HaveLen(1))
		orbit := res.Paths[0]
		Expect(orbit.Name).To(Equal("orbit"))
		Expect(orbit.Closed).To(BeTrue())
		Expect(orbit.Points).To(HaveLen(121))
		Expect(orbit.Points[0]).To(Equal(orbit.Points[120]))

		fa, ok := res.Curve("force_angle")
		Expect(ok).To(BeTrue())
		Expect(fa.Points).To(HaveLen(181))
		Expect(fa.Points[90].Y).To(BeNumerically("~", 8e-14, 1e-20))
	})

	It("exerts no force along the field", func() {
		res, err := physics.Magnetism(physics.MagnetismInput{
			Charge: q(1.6e-19), Velocity: q(1e6), Field: q(0.5), Angle: q(0),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(value(res.Outputs.LorentzForce)).To(BeZero())
	})

	It("computes the solenoid field and flux", func() {
		res, err := physics.Magnetism(physics.MagnetismInput{
			Turns: q(1000), Current: q(2), SolenoidLength: q(0.5), Area: q(0.01),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Field, 0.00502654824848)
		approx(res.Outputs.Flux, 0.0000502654824848)

		fc, ok := res.Curve("field_current")
		Expect(ok).To(BeTrue())
		Expect(fc.Points).To(HaveLen(50))
	})

	It("computes the force on a wire", func() {
		res, err := physics.Magnetism(physics.MagnetismInput{
			Field: q(0.2), Current: q(3), WireLength: q(0.5), Angle: q(30),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.WireForce, 0.15)
		_, ok := res.Curve("force_angle")
		Expect(ok).To(BeTrue())
	})

	It("rejects a supplied field that disagrees with the solenoid", func() {
		_, err := physics.Magnetism(physics.MagnetismInput{
			Field: q(1), Turns: q(1000), Current: q(2), SolenoidLength: q(0.5),
		})
		Expect(err).To(MatchError(engine.ErrInconsistentInput))
	})

	It("rejects a zero charge and an out-of-range angle together", func() {
		_, err := physics.Magnetism(physics.MagnetismInput{Charge: q(0), Angle: q(200)})
		var verr *validate.Error
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Kind).To(Equal(validate.ErrIllegalValue))
		Expect(verr.Violations).To(HaveLen(2))
	})
})

var _ = Describe("Electrostatics", func() {
	It("applies Coulomb's law to two point charges", func() {
		res, err := physics.Electrostatics(physics.ElectrostaticsInput{
			Charge1: q(1e-6), Charge2: q(2e-6), Distance: q(0.1),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Force, 1.7975103584599998)
		approx(res.Outputs.Field, 898755.1792299999)
		approx(res.Outputs.Potential, 89875.51792299998)
		approx(res.Outputs.PotentialEnergy, 0.17975103584599998)

		Expect(res.Curves).To(HaveLen(2))
		fd, _ := res.Curve("field_distance")
		Expect(fd.Points[0].X).To(BeNumerically("~", 0.025, 1e-12))
		Expect(fd.Points[len(fd.Points)-1].X).To(BeNumerically("~", 0.2, 1e-12))

		Expect(res.Paths).To(HaveLen(13))
		Expect(res.Paths[0].Name).To(Equal("field_line_1"))
		Expect(res.Paths[0].Points[0].X).To(BeNumerically("~", 0.025, 1e-12))
		Expect(res.Paths[8].Name).To(Equal("equipotential_1"))
		Expect(res.Paths[8].Points).To(HaveLen(73))
	})

	It("draws field lines into a negative charge", func() {
		res, err := physics.Electrostatics(physics.ElectrostaticsInput{
			Charge1: q(-1e-6), Charge2: q(2e-6), Distance: q(0.1),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(value(res.Outputs.Force)).To(BeNumerically("<", 0))
		line := res.Paths[0].Points
		Expect(line[0].X).To(BeNumerically("~", 0.2, 1e-12))
		Expect(line[len(line)-1].X).To(BeNumerically("~", 0.025, 1e-12))
	})

	It("locates the source from field and potential", func() {
		res, err := physics.Electrostatics(physics.ElectrostaticsInput{
			Field: q(898755.17923), Potential: q(89875.517923),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Distance, 0.1)
		approx(res.Outputs.Charge1, 1e-6)
		Expect(res.Outputs.Force.Present()).To(BeFalse())
	})

	It("charges a capacitor", func() {
		res, err := physics.Electrostatics(physics.ElectrostaticsInput{Capacitance: q(1e-6), Voltage: q(9)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.StoredCharge, 9e-6)
		approx(res.Outputs.StoredEnergy, 4.05e-5)

		_, ok := res.Curve("charge_voltage")
		Expect(ok).To(BeTrue())
		_, ok = res.Curve("energy_voltage")
		Expect(ok).To(BeTrue())
	})

	It("assumes a default separation for plates given only their area", func() {
		res, err := physics.Electrostatics(physics.ElectrostaticsInput{Area: q(0.01)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Separation, physics.DefaultPlateSeparation)
		approx(res.Outputs.Capacitance, physics.Epsilon0*0.01/physics.DefaultPlateSeparation)
		Expect(res.Paths).To(HaveLen(9))
	})

	It("derives the plate separation from area and capacitance", func() {
		res, err := physics.Electrostatics(physics.ElectrostaticsInput{Area: q(1), Capacitance: q(1e-9), Voltage: q(5)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Separation, physics.Epsilon0/1e-9)
		approx(res.Outputs.PlateField, 5*1e-9/physics.Epsilon0)
		approx(res.Outputs.StoredCharge, 5e-9)
		Expect(res.Paths).NotTo(BeEmpty())
	})

	It("still rejects a separation that disagrees with area and capacitance", func() {
		_, err := physics.Electrostatics(physics.ElectrostaticsInput{Area: q(1), Capacitance: q(1e-9), Separation: q(1e-3)})
		Expect(err).To(MatchError(engine.ErrInconsistentInput))
	})

	It("needs one complete group", func() {
		_, err := physics.Electrostatics(physics.ElectrostaticsInput{Charge1: q(1e-6), Distance: q(0.1)})
		Expect(err).To(MatchError(validate.ErrInsufficientInput))
	})

	It("rejects a zero charge", func() {
		_, err := physics.Compute(engine.Electrostatics, quantity.Values(map[string]float64{
			"charge1": 0, "charge2": 1e-6, "distance": 0.1,
		}))
		Expect(err).To(MatchError(validate.ErrIllegalValue))
	})
})
