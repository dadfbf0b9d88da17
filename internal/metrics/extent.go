package metrics

import (
	"math"

	"github.com/EEseka/physiquest/internal/engine"
)

// Peak is the largest Y observed.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak", max: math.Inf(-1)}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(pt engine.Point) {
	p.max = math.Max(p.max, pt.Y)
}

func (p *Peak) Value() float64 {
	if math.IsInf(p.max, -1) {
		return 0
	}
	return p.max
}

func (p *Peak) Reset() { p.max = math.Inf(-1) }

// Trough is the smallest Y observed.
type Trough struct {
	name string
	min  float64
}

func NewTrough() *Trough {
	return &Trough{name: "trough", min: math.Inf(1)}
}

func (t *Trough) Name() string { return t.name }

func (t *Trough) Observe(pt engine.Point) {
	t.min = math.Min(t.min, pt.Y)
}

func (t *Trough) Value() float64 {
	if math.IsInf(t.min, 1) {
		return 0
	}
	return t.min
}

func (t *Trough) Reset() { t.min = math.Inf(1) }
