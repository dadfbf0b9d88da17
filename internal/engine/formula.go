package engine

import (
	"math"

	"github.com/EEseka/physiquest/internal/quantity"
)

// MaxSlots bounds the number of quantities one domain may relate.
const MaxSlots = 32

// RelTol is the relative tolerance used when checking that supplied and
// derived quantities agree.
const RelTol = 1e-6

// Slot indexes a quantity within a domain's value vector.
type Slot uint8

// Mask is a presence bitmask over slots.
type Mask uint32

// Needs builds the mask of the given slots.
func Needs(slots ...Slot) Mask {
	var m Mask
	for _, s := range slots {
		m |= 1 << s
	}
	return m
}

// Values is a fixed-size vector of optionally known quantities.
type Values struct {
	v     [MaxSlots]float64
	known Mask
}

// Set marks slot s known with value x.
func (v *Values) Set(s Slot, x float64) {
	v.v[s] = x
	v.known |= 1 << s
}

// SetQuantity copies q into slot s when present.
func (v *Values) SetQuantity(s Slot, q quantity.Quantity) {
	if x, ok := q.Get(); ok {
		v.Set(s, x)
	}
}

// Get returns the slot value and whether it is known.
func (v Values) Get(s Slot) (float64, bool) {
	return v.v[s], v.known&(1<<s) != 0
}

// At returns the slot value. Only meaningful when the slot is known.
func (v Values) At(s Slot) float64 { return v.v[s] }

// Known reports whether slot s holds a value.
func (v Values) Known(s Slot) bool { return v.known&(1<<s) != 0 }

// HasAll reports whether every slot in m is known.
func (v Values) HasAll(m Mask) bool { return v.known&m == m }

// Mask returns the known slots.
func (v Values) Mask() Mask { return v.known }

// Quantity returns slot s as an optional quantity.
func (v Values) Quantity(s Slot) quantity.Quantity {
	if !v.Known(s) {
		return quantity.Absent
	}
	return quantity.Of(v.v[s])
}

// Relation is one closed-form formula: when every slot in Needs is known,
// Eval yields the value of Gives. Eval declines with ok=false where the
// formula is undefined for the current values (zero divisor, negative radicand,
// non-physical result).
//
// Assumed relations encode a modelling assumption or a branch choice (the sign
// of a square root). They derive values but are not used to check supplied
// inputs for consistency.
type Relation struct {
	Name    string
	Needs   Mask
	Gives   Slot
	Assumed bool
	Eval    func(v Values) (float64, bool)
}

// Solve fills unknown slots from the relation table. Table order is priority
// order: each round fires the first applicable relation and restarts from the
// top, so a more specific relation listed earlier always wins. Every firing
// fills one slot, so Solve terminates after at most MaxSlots rounds.
// It returns the completed vector and the names of the relations fired.
func Solve(table []Relation, v Values) (Values, []string) {
	var fired []string
	for round := 0; round < MaxSlots; round++ {
		applied := false
		for _, r := range table {
			if v.Known(r.Gives) || !v.HasAll(r.Needs) {
				continue
			}
			x, ok := r.Eval(v)
			if !ok || !finite(x) {
				continue
			}
			v.Set(r.Gives, x)
			fired = append(fired, r.Name)
			applied = true
			break
		}
		if !applied {
			break
		}
	}
	return v, fired
}

// Inconsistencies re-evaluates every non-assumed relation whose slots are all
// known and returns the names of those whose result disagrees with the value
// held in its output slot.
func Inconsistencies(table []Relation, v Values) []string {
	var bad []string
	for _, r := range table {
		if r.Assumed || !v.Known(r.Gives) || !v.HasAll(r.Needs) {
			continue
		}
		x, ok := r.Eval(v)
		if !ok || !finite(x) {
			continue
		}
		if !Close(x, v.At(r.Gives), RelTol) {
			bad = append(bad, r.Name)
		}
	}
	return bad
}

// Close reports whether a and b agree to relative tolerance tol.
func Close(a, b, tol float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= tol*scale || math.Abs(a-b) <= 1e-15
}
