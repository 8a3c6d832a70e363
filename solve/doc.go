// Package solve defines the SMT collaborator contract of spec.md §6: for
// each bug node, hand the collaborator the bug-node predicate plus the
// type context, and receive Satisfiable(witness) or Unsatisfiable back.
// The collaborator itself — a concrete SMT encoding — is out of scope for
// the core (spec.md §1); this package only shapes the boundary.
//
// solve/ginisolver is a bounded, boolean-only reference implementation of
// Solver used by this module's own tests, not a general SMT
// encoder (spec.md §1 non-goals are unaffected by its existence).
package solve
