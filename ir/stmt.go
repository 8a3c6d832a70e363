package ir

import "github.com/mcat12/p4gcl/predicate"

// StmtKind discriminates the Stmt variants listed in spec.md §3: block,
// if/else, assignment, or (action/table) call. StmtAssert is this module's
// own addition for the assertion sites spec.md §4.1 requires the builder
// to lower into a bug-node branch — the frontend collaborator lowers both
// explicit check directives and table invariants into StmtAssert nodes.
type StmtKind int

const (
	StmtBlock StmtKind = iota
	StmtIf
	StmtAssign
	StmtCall
	StmtAssert
	// StmtVarDecl is a local variable/constant declaration occurring inline
	// in a statement sequence (e.g. "bool y = false;" inside an apply
	// block) — spec.md §4.1's lowering table lists "Variable decl" as its
	// own IR construct alongside statements, so a Block's sequence can
	// interleave declarations and statements freely.
	StmtVarDecl
)

// Stmt is a single IR statement. Only the fields relevant to Kind are
// populated; this mirrors the tagged-variant dispatch spec.md §9 calls for
// ("a tagged-variant match per node") without an open-ended type hierarchy.
type Stmt struct {
	Kind StmtKind

	// StmtBlock
	Block []Stmt

	// StmtIf
	Cond Predicate
	Then []Stmt
	Else []Stmt // nil/empty => no else branch

	// StmtAssign
	Target predicate.VarID
	Value  Predicate

	// StmtCall: Callee is an ActionDecl.ID or TableDecl.ID in scope.
	Callee predicate.VarID
	Args   []Predicate

	// StmtAssert
	Assert Predicate
	// Flagged distinguishes an explicit source-level check directive
	// (Flagged = true) from a table-invariant assertion the frontend
	// synthesized during lowering (Flagged = false) — both arrive as
	// StmtAssert per this file's doc comment, but gcl.Builder's
	// WithBugNodeForEveryAssert(false) option only materializes a bug
	// node for the former.
	Flagged bool

	// StmtVarDecl
	Decl *VarDecl
}

// Predicate is a type alias kept distinct from predicate.Expr only to make
// IR statement fields self-documenting at call sites; it is always exactly
// a predicate.Expr.
type Predicate = predicate.Expr

// Block returns a StmtBlock wrapping stmts in source order.
func Block(stmts ...Stmt) Stmt {
	return Stmt{Kind: StmtBlock, Block: stmts}
}

// If returns an if/then/else statement. A nil els means "no else branch".
func If(cond Predicate, then []Stmt, els []Stmt) Stmt {
	return Stmt{Kind: StmtIf, Cond: cond, Then: then, Else: els}
}

// Assign returns v := value.
func Assign(v predicate.VarID, value Predicate) Stmt {
	return Stmt{Kind: StmtAssign, Target: v, Value: value}
}

// Call returns a call to the action or table identified by callee.
func Call(callee predicate.VarID, args ...Predicate) Stmt {
	return Stmt{Kind: StmtCall, Callee: callee, Args: args}
}

// Assert returns an explicit, user-flagged assert(cond).
func Assert(cond Predicate) Stmt {
	return Stmt{Kind: StmtAssert, Assert: cond, Flagged: true}
}

// AssertFrom returns assert(cond) with an explicit Flagged value, for a
// frontend-synthesized table-invariant assertion (Flagged = false) as
// opposed to an explicit source-level check directive (Flagged = true).
func AssertFrom(cond Predicate, flagged bool) Stmt {
	return Stmt{Kind: StmtAssert, Assert: cond, Flagged: flagged}
}

// DeclStmt wraps a local declaration as a statement so it can appear
// inline in a Block's sequence.
func DeclStmt(d VarDecl) Stmt {
	return Stmt{Kind: StmtVarDecl, Decl: &d}
}
