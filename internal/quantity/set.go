package quantity

import "sort"

// Set is an immutable mapping from quantity name to Quantity.
// Absent entries are dropped on construction; looking up a missing name yields Absent.
type Set struct {
	m map[string]Quantity
}

// NewSet copies values into a new Set.
func NewSet(values map[string]Quantity) Set {
	m := make(map[string]Quantity, len(values))
	for name, q := range values {
		if q.Present() {
			m[name] = q
		}
	}
	return Set{m: m}
}

// Values builds a Set from plain floats, all present.
func Values(values map[string]float64) Set {
	m := make(map[string]Quantity, len(values))
	for name, v := range values {
		m[name] = Of(v)
	}
	return Set{m: m}
}

// Get returns the named quantity, Absent if unknown.
func (s Set) Get(name string) Quantity {
	return s.m[name]
}

// Has reports whether the named quantity is present.
func (s Set) Has(name string) bool {
	_, ok := s.m[name]
	return ok
}

// Len returns the number of present quantities.
func (s Set) Len() int { return len(s.m) }

// Count returns how many of names are present.
func (s Set) Count(names ...string) int {
	n := 0
	for _, name := range names {
		if s.Has(name) {
			n++
		}
	}
	return n
}

// Names returns the present names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.m))
	for name := range s.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the present values.
func (s Set) Map() map[string]float64 {
	out := make(map[string]float64, len(s.m))
	for name, q := range s.m {
		out[name] = q.value
	}
	return out
}

// With returns a new Set with name set to q. The receiver is unchanged.
func (s Set) With(name string, q Quantity) Set {
	m := make(map[string]Quantity, len(s.m)+1)
	for k, v := range s.m {
		m[k] = v
	}
	if q.Present() {
		m[name] = q
	} else {
		delete(m, name)
	}
	return Set{m: m}
}
