package engine

import "math"

// Sample evaluates f at n evenly spaced x values over [from, to], ascending.
// A degenerate span or n < 2 yields the single point (from, f(from)).
func Sample(from, to float64, n int, f func(x float64) float64) []Point {
	if to < from {
		from, to = to, from
	}
	if n < 2 || to == from {
		return []Point{{X: from, Y: f(from)}}
	}
	pts := make([]Point, n)
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		x := from + step*float64(i)
		if i == n-1 {
			x = to
		}
		pts[i] = Point{X: x, Y: f(x)}
	}
	return pts
}

// Trace evaluates a parametric curve at n evenly spaced parameter values
// over [from, to]. Used for trajectories whose X is itself a function of time.
func Trace(from, to float64, n int, f func(t float64) Point) []Point {
	if n < 2 || to == from {
		return []Point{f(from)}
	}
	pts := make([]Point, n)
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		t := from + step*float64(i)
		if i == n-1 {
			t = to
		}
		pts[i] = f(t)
	}
	return pts
}

// Circle returns n points around a circle, the last repeating the first.
// A zero radius collapses to the centre point.
func Circle(cx, cy, r float64, n int) []Point {
	if r == 0 || n < 3 {
		return []Point{{X: cx, Y: cy}}
	}
	pts := make([]Point, n)
	for i := 0; i < n-1; i++ {
		a := 2 * math.Pi * float64(i) / float64(n-1)
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	pts[n-1] = pts[0]
	return pts
}

// Segment returns n points from a to b inclusive.
func Segment(a, b Point, n int) []Point {
	if n < 2 || a == b {
		return []Point{a}
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		pts[i] = Point{X: a.X + (b.X-a.X)*f, Y: a.Y + (b.Y-a.Y)*f}
	}
	pts[n-1] = b
	return pts
}
