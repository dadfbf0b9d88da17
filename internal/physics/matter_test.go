package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/physics"
	"github.com/EEseka/physiquest/internal/validate"
)

var _ = Describe("Wave", func() {
	It("relates frequency and wavelength to speed", func() {
		res, err := physics.Wave(physics.WaveInput{Frequency: q(5), Wavelength: q(2)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Speed, 10)
		approx(res.Outputs.Period, 0.2)
		approx(res.Outputs.AngularFrequency, 10*math.Pi)
		approx(res.Outputs.WaveNumber, math.Pi)
		Expect(res.Outputs.Amplitude.Present()).To(BeFalse())

		dt, ok := res.Curve("displacement_time")
		Expect(ok).To(BeTrue())
		peak := 0.0
		for _, p := range dt.Points {
			peak = math.Max(peak, p.Y)
		}
		Expect(peak).To(BeNumerically("~", 1, 1e-3))
	})

	It("works from period and speed", func() {
		res, err := physics.Wave(physics.WaveInput{Period: q(0.5), Speed: q(340)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Frequency, 2)
		approx(res.Outputs.Wavelength, 170)
		_, ok := res.Curve("displacement_space")
		Expect(ok).To(BeTrue())
	})

	It("omits the spatial curve when the wavelength is unknown", func() {
		res, err := physics.Wave(physics.WaveInput{Frequency: q(2), Period: q(0.5)})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Outputs.Wavelength.Present()).To(BeFalse())
		_, ok := res.Curve("displacement_space")
		Expect(ok).To(BeFalse())
	})

	It("does not count amplitude toward the minimum", func() {
		_, err := physics.Wave(physics.WaveInput{Frequency: q(5), Amplitude: q(1)})
		Expect(err).To(MatchError(validate.ErrInsufficientInput))
	})

	It("rejects a period that disagrees with the frequency", func() {
		_, err := physics.Wave(physics.WaveInput{Frequency: q(5), Period: q(1)})
		Expect(err).To(MatchError(engine.ErrInconsistentInput))
	})
})

var _ = Describe("Fluid", func() {
	It("computes hydrostatic pressure at depth", func() {
		res, err := physics.Fluid(physics.FluidInput{Density: q(1000), Depth: q(10), Area: q(0.5)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Pressure, 98100)
		approx(res.Outputs.AbsolutePressure, 98100+physics.AtmPressure)
		approx(res.Outputs.Force, 49050)

		pd, ok := res.Curve("pressure_depth")
		Expect(ok).To(BeTrue())
		Expect(pd.Points).To(HaveLen(50))
		Expect(pd.Points[49].Y).To(BeNumerically("~", 98100, 1e-6))
	})

	It("finds the depth of a pressure from force and area", func() {
		res, err := physics.Fluid(physics.FluidInput{Density: q(1000), Force: q(500), Area: q(2)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Pressure, 250)
		approx(res.Outputs.Depth, 250/(1000*physics.Gravity))
	})

	It("computes buoyancy and flow rate", func() {
		res, err := physics.Fluid(physics.FluidInput{Density: q(1000), Volume: q(0.02), Area: q(0.5), FlowVelocity: q(3)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.BuoyantForce, 196.2)
		approx(res.Outputs.FlowRate, 1.5)
		_, ok := res.Curve("buoyancy_volume")
		Expect(ok).To(BeTrue())
	})

	It("rejects a non-positive density", func() {
		_, err := physics.Fluid(physics.FluidInput{Density: q(0), Depth: q(1)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))
	})
})

var _ = Describe("Thermo", func() {
	It("solves the ideal gas law for temperature", func() {
		res, err := physics.Thermo(physics.ThermoInput{Pressure: q(101325), Volume: q(0.0224), Moles: q(1)})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Temperature, 272.97975879840556)
		approx(res.Outputs.InternalEnergy, 1.5*101325*0.0224)

		iso, ok := res.Curve("isotherm")
		Expect(ok).To(BeTrue())
		Expect(iso.Points).To(HaveLen(100))
		Expect(iso.Points[0].X).To(BeNumerically("~", 0.0112, 1e-12))
		Expect(iso.Points[0].Y).To(BeNumerically("~", 2*101325, 1e-6))
		Expect(iso.Points[99].X).To(BeNumerically("~", 0.0448, 1e-12))
	})

	It("heats water with a heater", func() {
		res, err := physics.Thermo(physics.ThermoInput{
			Temperature: q(293), Mass: q(1), SpecificHeat: q(4186), TemperatureChange: q(10), HeatingPower: q(1000),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.Heat, 41860)
		approx(res.Outputs.HeatingTime, 41.86)
		approx(res.Outputs.FinalTemperature, 303)

		tt, ok := res.Curve("temperature_time")
		Expect(ok).To(BeTrue())
		Expect(tt.Points[len(tt.Points)-1].Y).To(BeNumerically("~", 303, 1e-9))
	})

	It("plots temperature against heat without a heater", func() {
		res, err := physics.Thermo(physics.ThermoInput{
			Temperature: q(293), Mass: q(1), SpecificHeat: q(4186), Heat: q(-4186),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.TemperatureChange, -1)

		th, ok := res.Curve("temperature_heat")
		Expect(ok).To(BeTrue())
		Expect(th.Points[0].X).To(Equal(-4186.0))
		Expect(th.Points[0].Y).To(BeNumerically("~", 292, 1e-9))
	})

	It("leaves a final temperature below absolute zero underived", func() {
		res, err := physics.Thermo(physics.ThermoInput{Temperature: q(300), TemperatureChange: q(-400)})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Outputs.FinalTemperature.Present()).To(BeFalse())
	})

	It("draws no temperature curve that would cross absolute zero", func() {
		res, err := physics.Thermo(physics.ThermoInput{
			Temperature:       q(300),
			TemperatureChange: q(-400),
			Mass:              q(1),
			SpecificHeat:      q(1000),
			HeatingPower:      q(100),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Outputs.FinalTemperature.Present()).To(BeFalse())
		Expect(res.Outputs.HeatingTime.Present()).To(BeTrue())

		_, ok := res.Curve("temperature_time")
		Expect(ok).To(BeFalse())
		_, ok = res.Curve("temperature_heat")
		Expect(ok).To(BeFalse())
	})

	It("ends the heating curve on the final temperature", func() {
		res, err := physics.Thermo(physics.ThermoInput{
			Temperature:       q(300),
			TemperatureChange: q(-200),
			Mass:              q(1),
			SpecificHeat:      q(1000),
			HeatingPower:      q(100),
		})
		Expect(err).NotTo(HaveOccurred())
		approx(res.Outputs.FinalTemperature, 100)

		tt, ok := res.Curve("temperature_time")
		Expect(ok).To(BeTrue())
		last := tt.Points[len(tt.Points)-1]
		Expect(last.Y).To(BeNumerically("~", 100, 1e-9))
		for _, p := range tt.Points {
			Expect(p.Y).To(BeNumerically(">", 0))
		}
	})

	It("rejects a gas state off the ideal gas law", func() {
		_, err := physics.Thermo(physics.ThermoInput{Pressure: q(100000), Volume: q(1), Moles: q(1), Temperature: q(300)})
		Expect(err).To(MatchError(engine.ErrInconsistentInput))
	})

	It("rejects a non-positive temperature", func() {
		_, err := physics.Thermo(physics.ThermoInput{Temperature: q(0), Pressure: q(1)})
		Expect(err).To(MatchError(validate.ErrIllegalValue))
	})
})
