package engine

import (
	"fmt"

	"github.com/EEseka/physiquest/internal/quantity"
)

// Scalar is one named output quantity of a result.
type Scalar struct {
	Name  string            `json:"name"`
	Unit  string            `json:"unit,omitempty"`
	Value quantity.Quantity `json:"value"`
}

// Record is a domain-specific outputs record.
type Record interface {
	Scalars() []Scalar
}

// Result is the immutable outcome of one calculation. Outputs holds the
// domain-specific scalar record; absent outputs could not be derived.
type Result[R Record] struct {
	Domain  Domain
	Outputs R
	Curves  []Series
	Paths   []Path
}

// Curve returns the named curve.
func (r Result[R]) Curve(name string) (Series, bool) {
	return findCurve(r.Curves, name)
}

// Summary flattens the result into its non-generic form.
func (r Result[R]) Summary() Summary {
	return Summary{
		Domain:  r.Domain,
		Scalars: r.Outputs.Scalars(),
		Curves:  r.Curves,
		Paths:   r.Paths,
	}
}

// Summary is the domain-agnostic view of a Result used by storage, export
// and rendering.
type Summary struct {
	Domain  Domain   `json:"domain"`
	Scalars []Scalar `json:"scalars"`
	Curves  []Series `json:"curves"`
	Paths   []Path   `json:"paths,omitempty"`
}

// Scalar returns the named scalar, Absent if unknown.
func (s Summary) Scalar(name string) quantity.Quantity {
	for _, sc := range s.Scalars {
		if sc.Name == name {
			return sc.Value
		}
	}
	return quantity.Absent
}

// Curve returns the named curve.
func (s Summary) Curve(name string) (Series, bool) {
	return findCurve(s.Curves, name)
}

func findCurve(curves []Series, name string) (Series, bool) {
	for _, c := range curves {
		if c.Name == name {
			return c, true
		}
	}
	return Series{}, false
}

// Assemble builds a Result from calculator outputs and sampler curves. It
// performs no computation. Point slices are copied so later changes by the
// caller cannot reach the result. Any NaN or Inf, empty sequence, or series
// not strictly increasing in X is a calculator defect and yields an *InvariantError.
func Assemble[R Record](d Domain, out R, curves []Series, paths []Path) (Result[R], error) {
	for _, sc := range out.Scalars() {
		if sc.Value.Present() && !sc.Value.Finite() {
			return Result[R]{}, &InvariantError{Domain: d, Field: sc.Name, Detail: fmt.Sprintf("non-finite value %v", sc.Value)}
		}
	}

	res := Result[R]{
		Domain:  d,
		Outputs: out,
		Curves:  make([]Series, len(curves)),
		Paths:   make([]Path, len(paths)),
	}

	for i, c := range curves {
		if err := checkPoints(d, "curve "+c.Name, c.Points, true); err != nil {
			return Result[R]{}, err
		}
		c.Points = append([]Point(nil), c.Points...)
		res.Curves[i] = c
	}
	for i, p := range paths {
		if err := checkPoints(d, "path "+p.Name, p.Points, false); err != nil {
			return Result[R]{}, err
		}
		p.Points = append([]Point(nil), p.Points...)
		res.Paths[i] = p
	}
	return res, nil
}

func checkPoints(d Domain, field string, pts []Point, ordered bool) error {
	if len(pts) == 0 {
		return &InvariantError{Domain: d, Field: field, Detail: "empty point sequence"}
	}
	for i, p := range pts {
		if !p.IsValid() {
			return &InvariantError{Domain: d, Field: field, Detail: fmt.Sprintf("non-finite point %d (%v, %v)", i, p.X, p.Y)}
		}
		if ordered && i > 0 && p.X <= pts[i-1].X {
			return &InvariantError{Domain: d, Field: field, Detail: fmt.Sprintf("x does not increase at point %d", i)}
		}
	}
	return nil
}
