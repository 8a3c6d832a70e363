// Package p4gcl is a static bug-finder for a P4-like dataplane
// description language: it lowers a typed intermediate representation of
// control/action/table declarations into a guarded-command-language
// control-flow graph, computes a reachability predicate for every
// program point via forward symbolic execution with
// SSA variable versioning, and asks an SMT collaborator whether each bug
// node's predicate is satisfiable.
//
// Everything is organized under focused subpackages:
//
//	ir/              — the typed program representation the frontend hands in
//	predicate/       — the boolean/bit-vector predicate algebra and its rewrites
//	gcl/             — the guarded-command control-flow graph and its builder
//	optimize/        — graph-shrinking passes that preserve reachability
//	reach/           — the reachability engine (SSA versioning, predicate computation)
//	solve/           — the SMT collaborator contract
//	solve/ginisolver — a boolean-fragment SAT-backed reference collaborator
//	report/          — the structured error taxonomy and bug report
//
// See SPEC_FULL.md for the full specification and DESIGN.md for the
// grounding ledger behind each package's design.
package p4gcl
