// Package ginisolver is a reference solve.Solver for the boolean-only
// fragment of the predicate language: every leaf and connective scenarios
// S1-S6 exercise. It Tseitin-encodes a predicate.Expr into CNF and hands
// it to github.com/irifrance/gini's CDCL search.
//
// This is not the general SMT encoding spec.md §1 excludes from the
// core's scope — bit-vector and opaque-typed leaves are rejected with
// ErrUnsupportedFragment rather than approximated. It exists so this
// module's tests can turn a bug-node predicate into an
// actual Satisfiable/Unsatisfiable answer without a real SMT binary.
package ginisolver
