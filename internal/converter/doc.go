// Package converter implements the path-search conversion engine: given a
// populated unit graph, a numeric value and two unit identifiers, it finds a
// relation path between the units and composes the factors along it.
//
// The traversal is a plain recursive depth-first search. Termination is
// guaranteed by the per-call visited set and the finite unit count; the
// first path that reaches the destination wins and the search returns
// immediately. Failure modes are explicit error types: UnknownUnitError,
// UnreachableError and ZeroValueError.
package converter
