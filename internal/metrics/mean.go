package metrics

import "github.com/EEseka/physiquest/internal/engine"

// Mean is the average Y over the samples, unweighted.
type Mean struct {
	name    string
	sum     float64
	samples int
}

func NewMean() *Mean {
	return &Mean{name: "mean"}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(p engine.Point) {
	m.sum += p.Y
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// Area integrates Y over X with the trapezoidal rule. For a curve of power
// against time it is the energy delivered.
type Area struct {
	name  string
	sum   float64
	prev  engine.Point
	begun bool
}

func NewArea() *Area {
	return &Area{name: "area"}
}

func (a *Area) Name() string { return a.name }

func (a *Area) Observe(p engine.Point) {
	if a.begun {
		a.sum += (p.X - a.prev.X) * (p.Y + a.prev.Y) / 2
	}
	a.prev = p
	a.begun = true
}

func (a *Area) Value() float64 { return a.sum }

func (a *Area) Reset() {
	a.sum = 0
	a.prev = engine.Point{}
	a.begun = false
}
