package solve

import (
	"context"

	"github.com/mcat12/p4gcl/ir"
	"github.com/mcat12/p4gcl/predicate"
	"github.com/mcat12/p4gcl/report"
)

// Query bundles the predicate the collaborator must answer about together
// with the declaration-ordered type context spec.md §6 says accompanies
// it.
type Query struct {
	Predicate predicate.Expr
	Types     ir.Metadata
}

// Outcome is the collaborator's answer for one Query: Satisfiable with a
// witness, or Unsatisfiable (Witness is nil in that case).
type Outcome struct {
	Satisfiable bool
	Witness     report.Witness
}

// Solver is the SMT collaborator contract. Implementations may block —
// spec.md §5 names the SMT query as the core's only external blocking
// call — so Solve takes a context for cancellation.
type Solver interface {
	Solve(ctx context.Context, q Query) (Outcome, error)
}

// Mode selects which node set gets handed to a Solver by Run — the
// "--full-reachability" feature SPEC_FULL.md's SUPPLEMENTED FEATURES
// section carries over from original_source/src/main.rs: the core always
// computes every node's predicate, but a caller may ask the collaborator
// about only the bug nodes (the default, and all spec.md §8 scenarios
// need) or about every node.
type Mode int

const (
	// BugsOnly asks the collaborator only about bug-node predicates.
	BugsOnly Mode = iota
	// AllNodes asks the collaborator about every node's predicate.
	AllNodes
)
