package ir

import "github.com/mcat12/p4gcl/predicate"

// MatchKind tags how a table key element is compared. It is opaque to the
// core (spec.md §3, Glossary): the GCL builder does not read table keys or
// their match kinds, and symbolic-apply guard names do not mention them.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchLPM
	MatchTernary
)

func (k MatchKind) String() string {
	switch k {
	case MatchLPM:
		return "lpm"
	case MatchTernary:
		return "ternary"
	default:
		return "exact"
	}
}

// ParamDecl is a single typed, named parameter of a Control or Action.
type ParamDecl struct {
	ID   predicate.VarID
	Name string
	Typ  predicate.Type
}

// VarDecl is a local variable or constant declaration. Init is nil when
// the source left the declaration uninitialized; the builder lowers that
// to a havoc command (spec.md §4.1, and the "havoc on uninitialized
// locals" open question in spec.md §9). A later read before any
// assignment is not reported as a warning.
type VarDecl struct {
	ID   predicate.VarID
	Name string
	Typ  predicate.Type
	Init predicate.Expr // nil => no initializer
}

// ActionDecl is a named, parameterized action body. The same ActionDecl is
// captured once by its owning Control and may be the Callee of any number
// of StmtCall sites; each call site gets its own freshly-built sub-graph
// (spec.md §4.1).
type ActionDecl struct {
	ID     predicate.VarID
	Name   string
	Params []ParamDecl
	Body   []Stmt
}

// KeyElement is one element of a table's key: a match expression plus the
// kind of comparison applied to it.
type KeyElement struct {
	Expr predicate.Expr
	Kind MatchKind
}

// TableDecl is a table entity: a set of key elements and an ordered list
// of candidate actions.
type TableDecl struct {
	ID      predicate.VarID
	Name    string
	Keys    []KeyElement
	Actions []predicate.VarID // ids of ActionDecl values in scope
}

// InstantiationDecl captures an extern/control instantiation. Its
// parameters never influence control flow in the supported subset, so the
// builder only needs its identity to keep scoping consistent.
type InstantiationDecl struct {
	ID   predicate.VarID
	Name string
}

// LocalKind tags which alternative of ControlLocal is populated.
type LocalKind int

const (
	LocalVar LocalKind = iota
	LocalAction
	LocalTable
	LocalInstantiation
)

// ControlLocal is one local declaration inside a Control block's body.
type ControlLocal struct {
	Kind   LocalKind
	Var    *VarDecl
	Action *ActionDecl
	Table  *TableDecl
	Inst   *InstantiationDecl
}

// ControlDecl is a control block: parameters, local declarations, and an
// apply body.
type ControlDecl struct {
	Name   string
	Params []ParamDecl
	Locals []ControlLocal
	Apply  []Stmt
}

// Program is the root of the typed IR: the declaration-ordered sequence of
// controls the frontend produced.
type Program struct {
	Controls []ControlDecl
}

// Metadata is the collaborator-supplied record accompanying a Program:
// every variable's type, and the declaration-ordered list of types used to
// seed the SMT collaborator's type context (spec.md §6).
type Metadata struct {
	VarType      map[predicate.VarID]predicate.Type
	TypesInOrder []predicate.Type
}

// TypeOf looks up v's type, defaulting to predicate.Bool if v is unknown
// (which would itself indicate an InternalInvariant violation upstream).
// Package gcl uses it for an assignment target's type without checking
// presence first, so a target missing from VarType is typed bool.
func (m Metadata) TypeOf(v predicate.VarID) predicate.Type {
	if t, ok := m.VarType[v]; ok {
		return t
	}
	return predicate.Bool
}
