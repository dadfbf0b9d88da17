package physics_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
)

func TestPhysics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Physics Suite")
}

// value unwraps a quantity that must be present.
func value(q quantity.Quantity) float64 {
	GinkgoHelper()
	x, ok := q.Get()
	Expect(ok).To(BeTrue(), "expected a present quantity")
	return x
}

// approx expects q present and within 1e-6 relative of want.
func approx(q quantity.Quantity, want float64) {
	GinkgoHelper()
	margin := 1e-6 * abs(want)
	if margin == 0 {
		margin = 1e-12
	}
	Expect(value(q)).To(BeNumerically("~", want, margin))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func expectWellFormed(s engine.Summary) {
	GinkgoHelper()
	for _, sc := range s.Scalars {
		if sc.Value.Present() {
			Expect(sc.Value.Finite()).To(BeTrue(), "scalar %s", sc.Name)
		}
	}
	for _, c := range s.Curves {
		Expect(c.Points).NotTo(BeEmpty(), "curve %s", c.Name)
		for i, p := range c.Points {
			Expect(p.IsValid()).To(BeTrue(), "curve %s point %d", c.Name, i)
			if i > 0 {
				Expect(p.X).To(BeNumerically(">=", c.Points[i-1].X), "curve %s point %d", c.Name, i)
			}
		}
	}
	for _, p := range s.Paths {
		Expect(p.Points).NotTo(BeEmpty(), "path %s", p.Name)
		for i, pt := range p.Points {
			Expect(pt.IsValid()).To(BeTrue(), "path %s point %d", p.Name, i)
		}
	}
}
