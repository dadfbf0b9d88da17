package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for engine operations.
var (
	// ErrInvariant indicates a defect: a non-finite value or malformed point
	// sequence reached result assembly.
	ErrInvariant = errors.New("engine: internal invariant violated")

	// ErrInconsistentInput indicates over-determined inputs that disagree with
	// the domain's governing equations.
	ErrInconsistentInput = errors.New("engine: inconsistent input")

	// ErrUnknownDomain indicates a domain name with no registered calculator.
	ErrUnknownDomain = errors.New("engine: unknown domain")
)

// InvariantError wraps ErrInvariant with the offending field.
type InvariantError struct {
	Domain Domain
	Field  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrInvariant, e.Domain, e.Field, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// InconsistencyError lists the relations that supplied inputs violate.
type InconsistencyError struct {
	Domain    Domain
	Relations []string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s: %s violates %s", ErrInconsistentInput, e.Domain, strings.Join(e.Relations, ", "))
}

func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistentInput
}
