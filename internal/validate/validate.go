// Package validate gates calculations on sufficient and physically legal input.
//
// Validation rules are plain data: a [Rule] lists the accepted quantities, how
// many must be present, which groups of them are required, and which
// predicates each present value must satisfy. [Rule.Validate] is a pure
// function of the rule and the input set.
//
// Check order is fixed: unknown names, then cardinality, then legality.
// Insufficient input is reported on its own. Every legality violation of a
// request is reported together in a single *Error.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/quantity"
)

var (
	// ErrInsufficientInput indicates fewer present inputs than the rule requires.
	ErrInsufficientInput = errors.New("validate: insufficient input")

	// ErrIllegalValue indicates at least one present input violates a predicate.
	ErrIllegalValue = errors.New("validate: illegal value")

	// ErrUnknownQuantity indicates an input name the domain does not accept.
	ErrUnknownQuantity = errors.New("validate: unknown quantity")
)

// Violation is one failed legality predicate.
type Violation struct {
	Quantity string  `json:"quantity"`
	Value    float64 `json:"value"`
	Reason   string  `json:"reason"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s=%g %s", v.Quantity, v.Value, v.Reason)
}

// Error carries the detail of a rejected request. It unwraps to one of the
// package sentinels.
type Error struct {
	Domain     engine.Domain
	Kind       error
	Detail     string
	Violations []Violation
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	sb.WriteString(": ")
	sb.WriteString(string(e.Domain))
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	for i, v := range e.Violations {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Violates reports whether the error names the given quantity.
func (e *Error) Violates(name string) bool {
	for _, v := range e.Violations {
		if v.Quantity == name {
			return true
		}
	}
	return false
}

// Check attaches a predicate to one quantity.
type Check struct {
	Quantity string
	Must     Predicate
}

// Rule is the validation table of one domain.
type Rule struct {
	Domain engine.Domain

	// Inputs lists every accepted quantity name.
	Inputs []string

	// MinInputs is the number of present quantities required among Counted.
	MinInputs int

	// Counted restricts which inputs count toward MinInputs. Empty means Inputs.
	Counted []string

	// Groups lists alternative required combinations. When non-empty, at
	// least one group must be fully present.
	Groups [][]string

	Checks []Check
}

// Validate checks in against the rule.
func (r Rule) Validate(in quantity.Set) error {
	if err := r.checkNames(in); err != nil {
		return err
	}
	if err := r.checkCardinality(in); err != nil {
		return err
	}
	return r.checkLegality(in)
}

func (r Rule) checkNames(in quantity.Set) error {
	var unknown []string
	for _, name := range in.Names() {
		if !contains(r.Inputs, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return &Error{
		Domain: r.Domain,
		Kind:   ErrUnknownQuantity,
		Detail: fmt.Sprintf("%s (accepted: %s)", strings.Join(unknown, ", "), strings.Join(r.Inputs, ", ")),
	}
}

func (r Rule) checkCardinality(in quantity.Set) error {
	counted := r.Counted
	if len(counted) == 0 {
		counted = r.Inputs
	}
	if n := in.Count(counted...); n < r.MinInputs {
		return &Error{
			Domain: r.Domain,
			Kind:   ErrInsufficientInput,
			Detail: fmt.Sprintf("need at least %d of %s, got %d", r.MinInputs, strings.Join(counted, ", "), n),
		}
	}
	if len(r.Groups) == 0 {
		return nil
	}
	for _, g := range r.Groups {
		if in.Count(g...) == len(g) {
			return nil
		}
	}
	alts := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		alts[i] = "{" + strings.Join(g, ", ") + "}"
	}
	return &Error{
		Domain: r.Domain,
		Kind:   ErrInsufficientInput,
		Detail: "need all of one of " + strings.Join(alts, " or "),
	}
}

func (r Rule) checkLegality(in quantity.Set) error {
	var violations []Violation
	for _, name := range in.Names() {
		v, _ := in.Get(name).Get()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			violations = append(violations, Violation{Quantity: name, Value: v, Reason: "must be finite"})
			continue
		}
		for _, c := range r.Checks {
			if c.Quantity == name && !c.Must.Test(v) {
				violations = append(violations, Violation{Quantity: name, Value: v, Reason: c.Must.Reason})
			}
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &Error{Domain: r.Domain, Kind: ErrIllegalValue, Violations: violations}
}

// Describe renders the cardinality part of the rule for humans.
func (r Rule) Describe() string {
	counted := r.Counted
	if len(counted) == 0 {
		counted = r.Inputs
	}
	desc := fmt.Sprintf("%d of %d", r.MinInputs, len(counted))
	if len(r.Groups) > 0 {
		alts := make([]string, len(r.Groups))
		for i, g := range r.Groups {
			alts[i] = strings.Join(g, "+")
		}
		desc = strings.Join(alts, " | ")
		if r.MinInputs > 0 {
			desc += fmt.Sprintf(" (min %d)", r.MinInputs)
		}
	}
	return desc
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
