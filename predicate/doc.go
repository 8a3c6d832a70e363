// Package predicate implements the closed first-order expression language
// shared by GCL commands (package gcl) and reachability predicates
// (package reach): boolean literals, typed variable references (plain and
// SSA-versioned), uninterpreted function leaves, and the usual boolean
// connectives plus typed equality and if-then-else.
//
// Every Expr carries a Type (types.go). Construction of a boolean connective
// over a non-boolean operand fails with ErrTypeMismatch — the predicate
// language has no binders, so Substitute is capture-free by construction.
//
// Expression trees are immutable value trees: none of the functions in this
// package mutate an Expr in place, so a single sub-expression may be shared
// by many callers without defensive copying.
package predicate
