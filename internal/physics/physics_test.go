package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/physics"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/validate"
)

// representative accepted inputs per domain, each exercising the curves
var representative = map[engine.Domain]map[string]float64{
	engine.Projectile:     {"velocity": 20, "angle": 45, "height": 5},
	engine.Harmonic:       {"amplitude": 5, "frequency": 1, "time": 0.3, "mass": 2},
	engine.Circuit:        {"voltage": 12, "resistance": 4},
	engine.Wave:           {"frequency": 5, "wavelength": 2, "amplitude": 0.1},
	engine.Kinematics:     {"initial_velocity": 2, "acceleration": 1.5, "time": 4},
	engine.Energy:         {"mass": 2, "velocity": 3, "height": 10},
	engine.Fluid:          {"density": 1000, "depth": 10, "area": 0.5, "volume": 0.02, "flow_velocity": 3},
	engine.Rotation:       {"mass": 2, "radius": 0.5, "angular_velocity": 1, "angular_acceleration": 2, "time": 3},
	engine.Thermo:         {"pressure": 101325, "volume": 0.0224, "moles": 1, "mass": 1, "specific_heat": 4186, "heat": 41860, "heating_power": 1000},
	engine.Magnetism:      {"charge": 1.6e-19, "velocity": 1e6, "field": 0.5, "mass": 9.11e-31},
	engine.Electrostatics: {"charge1": 1e-6, "charge2": 2e-6, "distance": 0.1, "voltage": 9, "area": 0.01, "separation": 1e-3},
}

var _ = Describe("Registry", func() {
	It("registers every domain in order", func() {
		entries := physics.Entries()
		Expect(entries).To(HaveLen(len(engine.Domains)))
		for i, e := range entries {
			Expect(e.Domain).To(Equal(engine.Domains[i]))
			Expect(e.Title).NotTo(BeEmpty())
			Expect(e.Inputs()).To(Equal(e.Rule().Inputs))
		}
	})

	It("rejects unknown domains", func() {
		_, err := physics.Lookup("alchemy")
		Expect(err).To(MatchError(engine.ErrUnknownDomain))

		_, err = physics.Compute("alchemy", quantity.Values(nil))
		Expect(err).To(MatchError(engine.ErrUnknownDomain))
	})

	It("rejects unknown quantity names", func() {
		_, err := physics.Compute(engine.Circuit, quantity.Values(map[string]float64{"voltage": 1, "mass": 2}))
		Expect(err).To(MatchError(validate.ErrUnknownQuantity))
	})

	It("exposes relation tables", func() {
		for _, d := range engine.Domains {
			rels, err := physics.Relations(d)
			Expect(err).NotTo(HaveOccurred())
			Expect(rels).NotTo(BeEmpty(), string(d))
		}
	})

	DescribeTable("representative inputs",
		func(d engine.Domain) {
			in := quantity.Values(representative[d])

			first, err := physics.Compute(d, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Domain).To(Equal(d))
			Expect(first.Curves).NotTo(BeEmpty())
			expectWellFormed(first)

			second, err := physics.Compute(d, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		},
		Entry("projectile", engine.Projectile),
		Entry("harmonic", engine.Harmonic),
		Entry("circuit", engine.Circuit),
		Entry("wave", engine.Wave),
		Entry("kinematics", engine.Kinematics),
		Entry("energy", engine.Energy),
		Entry("fluid", engine.Fluid),
		Entry("rotation", engine.Rotation),
		Entry("thermo", engine.Thermo),
		Entry("magnetism", engine.Magnetism),
		Entry("electrostatics", engine.Electrostatics),
	)

	DescribeTable("empty input is insufficient",
		func(d engine.Domain) {
			_, err := physics.Compute(d, quantity.Values(nil))
			Expect(err).To(MatchError(validate.ErrInsufficientInput))
		},
		Entry("projectile", engine.Projectile),
		Entry("circuit", engine.Circuit),
		Entry("kinematics", engine.Kinematics),
		Entry("magnetism", engine.Magnetism),
		Entry("electrostatics", engine.Electrostatics),
	)
})
