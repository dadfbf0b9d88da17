package validate

import "fmt"

// Predicate is a named legality test on one value.
type Predicate struct {
	Reason string
	Test   func(v float64) bool
}

// Positive requires v > 0.
func Positive() Predicate {
	return Predicate{Reason: "must be > 0", Test: func(v float64) bool { return v > 0 }}
}

// NonNegative requires v >= 0.
func NonNegative() Predicate {
	return Predicate{Reason: "must be >= 0", Test: func(v float64) bool { return v >= 0 }}
}

// NonZero requires v != 0.
func NonZero() Predicate {
	return Predicate{Reason: "must be non-zero", Test: func(v float64) bool { return v != 0 }}
}

// Between requires lo <= v <= hi.
func Between(lo, hi float64) Predicate {
	return Predicate{
		Reason: fmt.Sprintf("must be in [%g, %g]", lo, hi),
		Test:   func(v float64) bool { return v >= lo && v <= hi },
	}
}
