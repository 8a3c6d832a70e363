package gcl

import "github.com/mcat12/p4gcl/predicate"

// CmdKind discriminates the four basic GCL commands of spec.md §3.
type CmdKind int

const (
	// CmdAssume conditions the continuation of control flow on Pred.
	CmdAssume CmdKind = iota
	// CmdAssert behaves like CmdAssume during predicate computation
	// (spec.md §4.3 step 4) — this builder never emits it bundled into a
	// node's own command list (see DESIGN.md "assert lowering"); it is
	// retained so the command set matches spec.md §3 exactly and so
	// package reach can process one if another producer emits it.
	CmdAssert
	// CmdAssign records v#new = e[current versions] and updates v's
	// current version.
	CmdAssign
	// CmdHavoc allocates a fresh, unconstrained version of v.
	CmdHavoc
)

func (k CmdKind) String() string {
	switch k {
	case CmdAssume:
		return "assume"
	case CmdAssert:
		return "assert"
	case CmdAssign:
		return "assign"
	case CmdHavoc:
		return "havoc"
	default:
		return "unknown"
	}
}

// Command is one basic GCL command within a Node's ordered command
// sequence. Only the fields relevant to Kind are populated.
type Command struct {
	Kind CmdKind

	// CmdAssume, CmdAssert
	Pred predicate.Expr

	// CmdAssign, CmdHavoc
	Var predicate.VarID
	Typ predicate.Type

	// CmdAssign
	Value predicate.Expr
}

// Assume returns an assume(p) command.
func Assume(p predicate.Expr) Command { return Command{Kind: CmdAssume, Pred: p} }

// Assert returns an assert(p) command.
func Assert(p predicate.Expr) Command { return Command{Kind: CmdAssert, Pred: p} }

// AssignCmd returns a v := e command.
func AssignCmd(v predicate.VarID, typ predicate.Type, e predicate.Expr) Command {
	return Command{Kind: CmdAssign, Var: v, Typ: typ, Value: e}
}

// Havoc returns a havoc(v) command.
func Havoc(v predicate.VarID, typ predicate.Type) Command {
	return Command{Kind: CmdHavoc, Var: v, Typ: typ}
}
