// Package quantity models optional physical measurements.
//
// A [Quantity] is either present with a finite value or absent. The zero value
// is absent, so a struct of quantities starts out fully unknown. Absent is never
// the same as zero: callers must check [Quantity.Get] or [Quantity.Present].
//
// A [Set] is an immutable name to quantity mapping used as the input of one
// calculation request.
package quantity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Quantity is an optional float64.
type Quantity struct {
	value   float64
	present bool
}

// Absent is the unknown quantity. It equals the zero value.
var Absent = Quantity{}

// Of returns a present quantity holding v.
func Of(v float64) Quantity {
	return Quantity{value: v, present: true}
}

// FromPtr maps nil to Absent.
func FromPtr(v *float64) Quantity {
	if v == nil {
		return Absent
	}
	return Of(*v)
}

// Get returns the value and whether it is present.
func (q Quantity) Get() (float64, bool) {
	return q.value, q.present
}

// Present reports whether the quantity holds a value.
func (q Quantity) Present() bool { return q.present }

// Or returns the value, or def when absent.
func (q Quantity) Or(def float64) float64 {
	if !q.present {
		return def
	}
	return q.value
}

// Finite reports whether the quantity is present and neither NaN nor Inf.
func (q Quantity) Finite() bool {
	return q.present && !math.IsNaN(q.value) && !math.IsInf(q.value, 0)
}

// Ptr returns nil when absent.
func (q Quantity) Ptr() *float64 {
	if !q.present {
		return nil
	}
	v := q.value
	return &v
}

func (q Quantity) String() string {
	if !q.present {
		return "-"
	}
	return strconv.FormatFloat(q.value, 'g', 6, 64)
}

// Parse reads a quantity from text. Empty, "-", "null" and "none" are absent.
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "-", "null", "none":
		return Absent, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Absent, fmt.Errorf("quantity: parse %q: %w", s, err)
	}
	return Of(v), nil
}

var jsonNull = []byte("null")

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.present {
		return jsonNull, nil
	}
	if math.IsNaN(q.value) || math.IsInf(q.value, 0) {
		return nil, fmt.Errorf("quantity: cannot encode non-finite value %v", q.value)
	}
	return json.Marshal(q.value)
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*q = Absent
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = Of(v)
	return nil
}

func (q Quantity) MarshalYAML() (interface{}, error) {
	if !q.present {
		return nil, nil
	}
	return q.value, nil
}

func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("quantity: line %d: expected a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*q = Absent
		return nil
	}
	parsed, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*q = parsed
	return nil
}
