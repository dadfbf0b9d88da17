// Package engine provides the shared primitives of the physics calculators.
//
// The package defines the types and helpers every domain calculator is built on:
//
//   - [Domain]: identifier of one of the eleven physics domains
//   - [Relation]: one closed-form formula filling one slot of a [Values] vector
//   - [Solve]: priority-ordered evaluation of a relation table
//   - [Sample], [Circle], [Segment]: point sequence generation
//   - [Assemble]: final, checked construction of a [Result]
//   - [Batch]: concurrent evaluation of independent requests
//
// # Example
//
//	v := engine.Values{}
//	v.Set(voltage, 12)
//	v.Set(resistance, 4)
//	v, fired := engine.Solve(circuitRelations, v)
//
// # Thread Safety
//
// Everything here is pure. Relation tables are read-only after package
// initialization and may be shared by any number of goroutines.
package engine
