// Package ir defines the typed intermediate representation consumed by
// package gcl. It is produced by an external collaborator — a frontend
// lexer/parser plus type-checker, out of scope for this module (spec.md
// §1, §6) — that has already resolved every variable to a dense VarID and
// annotated every expression with its predicate.Type.
//
// Expressions reuse predicate.Expr directly: the IR's expression language
// (boolean literal, variable reference, and/or/not, uninterpreted call) is
// exactly the predicate algebra's leaf-and-connective set restricted to
// unversioned variables, so lowering a source expression into a GCL
// command body (package gcl) is a verbatim copy, never a translation.
package ir
