package gcl

import (
	"fmt"
	"math/rand"

	"github.com/hashicorp/go-multierror"

	"github.com/mcat12/p4gcl/ir"
	"github.com/mcat12/p4gcl/predicate"
	"github.com/mcat12/p4gcl/report"
)

// subgraph is the sub-graph-with-entry/exit shape spec.md §4.1 lowers every
// IR construct into: a unique entry node and a unique exit node, spliced
// together by the caller. It never crosses a package boundary — callers of
// Builder only ever see the finished Graph.
type subgraph struct {
	entry, exit NodeIndex
}

// builderOptions holds the functional-option state described in
// SPEC_FULL.md's AMBIENT STACK: a table-apply fan-out bound, a seed for
// per-call-site guard-name salting, and the assert materialization toggle.
type builderOptions struct {
	maxTableFanout        int
	guardSeed             int64
	bugNodeForEveryAssert bool
}

// BuilderOption configures a Builder at construction time, mirroring
// lvlath/core's GraphOption pattern.
type BuilderOption func(*builderOptions)

// WithMaxTableFanout bounds the number of actions a single table apply may
// branch over; tables exceeding it fail with an UnsupportedConstruct error
// instead of growing the graph unboundedly. n <= 0 means unbounded (the
// default).
func WithMaxTableFanout(n int) BuilderOption {
	return func(o *builderOptions) { o.maxTableFanout = n }
}

// WithGuardNameSeed seeds the per-call-site salt appended to a table's
// synthetic `<table>_hits_<action>` guard names, so that two independent
// apply sites of the same table never produce the same uninterpreted guard
// (which would wrongly alias two distinct hits). The seed only selects
// which deterministic salt stream is used — two Builders built with the
// same seed over the same IR always produce identical guard names
// (spec.md §8 invariant 6, Determinism).
func WithGuardNameSeed(seed int64) BuilderOption {
	return func(o *builderOptions) { o.guardSeed = seed }
}

// WithBugNodeForEveryAssert controls whether a StmtAssert with
// Flagged = false (a frontend-synthesized table-invariant assertion, as
// opposed to an explicit source-level check directive) still materializes
// a branch-and-bug-node pair. Default true. When false, an unflagged
// assert lowers to a plain assume(p) command instead.
func WithBugNodeForEveryAssert(b bool) BuilderOption {
	return func(o *builderOptions) { o.bugNodeForEveryAssert = b }
}

// Builder lowers a typed ir.Program into a Graph (spec.md §4.1). A Builder
// is single-use: construct one, call Lower once, discard it.
type Builder struct {
	graph   *Graph
	meta    ir.Metadata
	actions map[predicate.VarID]*ir.ActionDecl
	tables  map[predicate.VarID]*ir.TableDecl
	rng     *rand.Rand
	opts    builderOptions
}

// NewBuilder returns a Builder that will lower against the given
// collaborator-supplied metadata (spec.md §6).
func NewBuilder(meta ir.Metadata, opts ...BuilderOption) *Builder {
	o := builderOptions{bugNodeForEveryAssert: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{
		graph:   NewGraph(),
		meta:    meta,
		actions: make(map[predicate.VarID]*ir.ActionDecl),
		tables:  make(map[predicate.VarID]*ir.TableDecl),
		rng:     rand.New(rand.NewSource(o.guardSeed)),
		opts:    o,
	}
}

// Lower translates prog into a Graph and returns it along with the start
// node index (spec.md §4.1 "Output"). Control declarations are lowered and
// spliced in program order; the first control's entry is the graph's
// start. Errors from independent controls are accumulated with
// github.com/hashicorp/go-multierror rather than failing on the first one,
// so one broken control does not hide a sibling's error.
func (b *Builder) Lower(prog *ir.Program) (*Graph, NodeIndex, error) {
	if len(prog.Controls) == 0 {
		return nil, 0, report.Unsupported("program", "no control declarations to lower", ErrEmptyProgram)
	}

	var errs *multierror.Error
	var start, prevExit NodeIndex
	haveStart := false

	for _, c := range prog.Controls {
		sg, err := b.lowerControl(c)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if !haveStart {
			start = sg.entry
			haveStart = true
		} else {
			b.connect(prevExit, sg.entry, predicate.True)
		}
		prevExit = sg.exit
	}

	if !haveStart {
		return nil, 0, errs.ErrorOrNil()
	}
	b.graph.SetStart(start)
	return b.graph, start, errs.ErrorOrNil()
}

// connect adds a guarded edge between two nodes this Builder itself
// created earlier in the same Lower call. AddEdge can only fail given an
// out-of-range index, which cannot happen here — a failure would mean the
// Builder passed an index from a different Graph or a tombstoned one,
// itself an InternalInvariant violation (spec.md §4.3 "Failure
// semantics"), so it is treated as fatal rather than threaded through
// every call site's error return.
func (b *Builder) connect(from, to NodeIndex, guard predicate.Expr) {
	if _, err := b.graph.AddEdge(from, to, guard); err != nil {
		panic(report.Internal("builder", int(from), "connect: invalid node index", err))
	}
}

func (b *Builder) lowerControl(c ir.ControlDecl) (subgraph, error) {
	var errs *multierror.Error

	// Register actions/tables into scope before lowering the apply body so
	// forward-declared calls resolve regardless of declaration order.
	for _, loc := range c.Locals {
		switch loc.Kind {
		case ir.LocalAction:
			b.actions[loc.Action.ID] = loc.Action
		case ir.LocalTable:
			b.tables[loc.Table.ID] = loc.Table
		}
	}

	entry := b.graph.AddNode(c.Name+".entry", false)
	entryNode, err := b.graph.Node(entry)
	if err != nil {
		return subgraph{}, report.Internal(c.Name, int(entry), "lowerControl: entry node just created is missing", err)
	}
	// Control parameters are unconstrained inputs with no declaration
	// statement of their own in the apply body — havoc is the GCL command
	// the glossary itself defines as modeling "unknown input", so each
	// parameter gets its first version via an implicit havoc at the
	// control's entry, rather than reach lazily minting one on first use.
	for _, p := range c.Params {
		entryNode.Commands = append(entryNode.Commands, Havoc(p.ID, p.Typ))
	}

	cur := entry
	for _, loc := range c.Locals {
		if loc.Kind != ir.LocalVar {
			continue
		}
		sg, err := b.lowerVarDecl(*loc.Var, c.Name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		b.connect(cur, sg.entry, predicate.True)
		cur = sg.exit
	}

	bodySg, err := b.lowerBlock(c.Apply, c.Name)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	b.connect(cur, bodySg.entry, predicate.True)

	exit := b.graph.AddNode(c.Name+".exit", false)
	b.connect(bodySg.exit, exit, predicate.True)

	return subgraph{entry: entry, exit: exit}, errs.ErrorOrNil()
}

// lowerBlock lowers a statement sequence into a single sub-graph, serially
// concatenating each statement's own sub-graph (spec.md §4.1, "Block of
// stmts"). The returned entry is always a fresh passthrough node, even for
// an empty block, so callers never need to special-case "no statements".
func (b *Builder) lowerBlock(stmts []ir.Stmt, ctx string) (subgraph, error) {
	var errs *multierror.Error
	entry := b.graph.AddNode(ctx+".block", false)
	cur := entry
	for _, s := range stmts {
		sg, err := b.lowerStmt(s, ctx)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		b.connect(cur, sg.entry, predicate.True)
		cur = sg.exit
	}
	return subgraph{entry: entry, exit: cur}, errs.ErrorOrNil()
}

func (b *Builder) lowerStmt(s ir.Stmt, ctx string) (subgraph, error) {
	switch s.Kind {
	case ir.StmtBlock:
		return b.lowerBlock(s.Block, ctx)
	case ir.StmtVarDecl:
		return b.lowerVarDecl(*s.Decl, ctx)
	case ir.StmtAssign:
		return b.lowerAssign(s, ctx)
	case ir.StmtIf:
		return b.lowerIf(s, ctx)
	case ir.StmtCall:
		return b.lowerCall(s, ctx)
	case ir.StmtAssert:
		return b.lowerAssert(s, ctx)
	default:
		return subgraph{}, report.Unsupported(ctx, fmt.Sprintf("statement kind %d", s.Kind), nil)
	}
}

// lowerVarDecl implements the two "Variable decl" rows of spec.md §4.1's
// table: assign(v := e) when Init is present, havoc(v) otherwise.
func (b *Builder) lowerVarDecl(d ir.VarDecl, ctx string) (subgraph, error) {
	n := b.graph.AddNode(ctx+"."+d.Name, false)
	node, err := b.graph.Node(n)
	if err != nil {
		return subgraph{}, report.Internal(ctx, int(n), "lowerVarDecl: node just created is missing", err)
	}
	if d.Init != nil {
		node.Commands = append(node.Commands, AssignCmd(d.ID, d.Typ, d.Init))
	} else {
		node.Commands = append(node.Commands, Havoc(d.ID, d.Typ))
	}
	return subgraph{entry: n, exit: n}, nil
}

func (b *Builder) lowerAssign(s ir.Stmt, ctx string) (subgraph, error) {
	n := b.graph.AddNode(ctx+".assign", false)
	node, err := b.graph.Node(n)
	if err != nil {
		return subgraph{}, report.Internal(ctx, int(n), "lowerAssign: node just created is missing", err)
	}
	node.Commands = append(node.Commands, AssignCmd(s.Target, b.meta.TypeOf(s.Target), s.Value))
	return subgraph{entry: n, exit: n}, nil
}

// lowerIf implements spec.md §4.1's "If c then A else B" row: a branch
// node guarded by c and ¬c joining at a fresh merge node. An absent else
// branch is an empty passthrough, per the table's own "If without else"
// row, so the merge still has exactly two predecessors.
func (b *Builder) lowerIf(s ir.Stmt, ctx string) (subgraph, error) {
	var errs *multierror.Error

	notC, err := predicate.NewNot(s.Cond)
	if err != nil {
		return subgraph{}, report.Internal(ctx, -1, "if condition is not boolean", err)
	}

	branch := b.graph.AddNode(ctx+".if", false)

	thenSg, err := b.lowerBlock(s.Then, ctx+".then")
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	b.connect(branch, thenSg.entry, s.Cond)

	var elseSg subgraph
	if len(s.Else) > 0 {
		elseSg, err = b.lowerBlock(s.Else, ctx+".else")
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	} else {
		pass := b.graph.AddNode(ctx+".else", false)
		elseSg = subgraph{entry: pass, exit: pass}
	}
	b.connect(branch, elseSg.entry, notC)

	merge := b.graph.AddNode(ctx+".endif", false)
	b.connect(thenSg.exit, merge, predicate.True)
	b.connect(elseSg.exit, merge, predicate.True)

	return subgraph{entry: branch, exit: merge}, errs.ErrorOrNil()
}

// lowerAssert implements the "Assertions" paragraph of spec.md §4.1: a
// branch node with a continuation edge guarded p and a bug edge guarded
// ¬p, rather than folding assert(p) into the node's own command list —
// baking assert into π and guarding the bug edge with ¬p in the same node
// would make π ∧ p ∧ ¬p unsatisfiable by construction, permanently hiding
// the bug (see scenario S2). When Flagged is false and
// WithBugNodeForEveryAssert(false) was set, the assertion instead lowers
// to a plain assume(p), never materializing a branch.
func (b *Builder) lowerAssert(s ir.Stmt, ctx string) (subgraph, error) {
	if !s.Flagged && !b.opts.bugNodeForEveryAssert {
		n := b.graph.AddNode(ctx+".assume", false)
		node, err := b.graph.Node(n)
		if err != nil {
			return subgraph{}, report.Internal(ctx, int(n), "lowerAssert: node just created is missing", err)
		}
		node.Commands = append(node.Commands, Assume(s.Assert))
		return subgraph{entry: n, exit: n}, nil
	}

	notP, err := predicate.NewNot(s.Assert)
	if err != nil {
		return subgraph{}, report.Internal(ctx, -1, "assert condition is not boolean", err)
	}

	branch := b.graph.AddNode(ctx+".assert", false)
	bug := b.graph.AddNode(ctx+".bug", true)
	b.connect(branch, bug, notP)

	cont := b.graph.AddNode(ctx+".assert.ok", false)
	b.connect(branch, cont, s.Assert)

	return subgraph{entry: branch, exit: cont}, nil
}

func (b *Builder) lowerCall(s ir.Stmt, ctx string) (subgraph, error) {
	if act, ok := b.actions[s.Callee]; ok {
		return b.lowerActionCall(act, s.Args, ctx)
	}
	if tbl, ok := b.tables[s.Callee]; ok {
		return b.lowerTableApply(tbl, ctx)
	}
	return subgraph{}, report.Unsupported(ctx,
		fmt.Sprintf("call to unresolved callee v%d", s.Callee),
		fmt.Errorf("%w: v%d", ErrUnresolvedCallee, s.Callee))
}

// lowerActionCall implements spec.md §4.1's action-call row: parameters
// bound by assign of the argument expressions at entry, then the action
// body inlined. The ActionDecl is captured once by its owning control but
// each call site gets its own freshly-built sub-graph — no node indices
// are shared between call sites, even of the same action.
func (b *Builder) lowerActionCall(act *ir.ActionDecl, args []predicate.Expr, ctx string) (subgraph, error) {
	if len(args) != len(act.Params) {
		return subgraph{}, report.Unsupported(ctx,
			fmt.Sprintf("action %s called with %d args, wants %d", act.Name, len(args), len(act.Params)),
			fmt.Errorf("%w: action=%s got=%d want=%d", ErrArityMismatch, act.Name, len(args), len(act.Params)))
	}

	entry := b.graph.AddNode(ctx+"."+act.Name+".call", false)
	cur := entry
	for i, p := range act.Params {
		n := b.graph.AddNode(ctx+"."+act.Name+".bind."+p.Name, false)
		node, err := b.graph.Node(n)
		if err != nil {
			return subgraph{}, report.Internal(ctx, int(n), "lowerActionCall: node just created is missing", err)
		}
		node.Commands = append(node.Commands, AssignCmd(p.ID, p.Typ, args[i]))
		b.connect(cur, n, predicate.True)
		cur = n
	}

	bodySg, err := b.lowerBlock(act.Body, ctx+"."+act.Name)
	b.connect(cur, bodySg.entry, predicate.True)
	return subgraph{entry: entry, exit: bodySg.exit}, err
}

// lowerTableActionRow lowers an action invoked as one row of a table apply.
// A table apply carries no argument expressions of its own — the
// match-action entry data that would supply them is an external
// collaborator's concern, out of scope here — so each of the action's own
// parameters is instead bound to an unconstrained runtime value via havoc,
// exactly as a control's own parameters are at its entry (see the havoc
// loop in lowerControl above). This keeps a parameterized action usable
// from a table row without requiring lowerActionCall's arity check, which
// exists for genuine call-site argument lists, not table rows.
func (b *Builder) lowerTableActionRow(act *ir.ActionDecl, ctx string) (subgraph, error) {
	entry := b.graph.AddNode(ctx+"."+act.Name+".call", false)
	node, err := b.graph.Node(entry)
	if err != nil {
		return subgraph{}, report.Internal(ctx, int(entry), "lowerTableActionRow: node just created is missing", err)
	}
	for _, p := range act.Params {
		node.Commands = append(node.Commands, Havoc(p.ID, p.Typ))
	}

	bodySg, err := b.lowerBlock(act.Body, ctx+"."+act.Name)
	b.connect(entry, bodySg.entry, predicate.True)
	return subgraph{entry: entry, exit: bodySg.exit}, err
}

// lowerTableApply implements spec.md §4.1's table-call row: a branch over
// the table's action list, one outgoing edge per action guarded by a
// fresh uninterpreted `<table>_hits_<action>` predicate, converging at a
// post-apply merge node. Per the "Open question — table semantics" design
// note (spec.md §9), this always materializes an explicit miss edge
// guarded by the negation of the disjunction of every hit guard, rather
// than silently pruning the default (no action matched) case.
func (b *Builder) lowerTableApply(tbl *ir.TableDecl, ctx string) (subgraph, error) {
	if b.opts.maxTableFanout > 0 && len(tbl.Actions) > b.opts.maxTableFanout {
		return subgraph{}, report.Unsupported(ctx,
			fmt.Sprintf("table %s has %d actions, exceeds configured fan-out bound %d", tbl.Name, len(tbl.Actions), b.opts.maxTableFanout),
			fmt.Errorf("%w: table=%s n=%d bound=%d", ErrTableFanoutExceeded, tbl.Name, len(tbl.Actions), b.opts.maxTableFanout))
	}

	var errs *multierror.Error
	apply := b.graph.AddNode(ctx+"."+tbl.Name+".apply", false)
	merge := b.graph.AddNode(ctx+"."+tbl.Name+".postapply", false)

	var hitGuards []predicate.Expr
	for _, actID := range tbl.Actions {
		act, ok := b.actions[actID]
		if !ok {
			errs = multierror.Append(errs, report.Unsupported(ctx,
				fmt.Sprintf("table %s references unresolved action v%d", tbl.Name, actID),
				fmt.Errorf("%w: v%d", ErrUnresolvedCallee, actID)))
			continue
		}

		hitName := fmt.Sprintf("%s_hits_%s_%d", tbl.Name, act.Name, b.rng.Int31n(1<<30))
		hitGuard := predicate.NewCall(hitName, predicate.Bool)
		hitGuards = append(hitGuards, hitGuard)

		actionSg, err := b.lowerTableActionRow(act, ctx+"."+tbl.Name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		b.connect(apply, actionSg.entry, hitGuard)
		b.connect(actionSg.exit, merge, predicate.True)
	}

	missGuard, err := negateDisjunction(hitGuards)
	if err != nil {
		errs = multierror.Append(errs, report.Internal(ctx, int(apply), "table miss guard construction failed", err))
	} else {
		b.connect(apply, merge, missGuard)
	}

	return subgraph{entry: apply, exit: merge}, errs.ErrorOrNil()
}

// negateDisjunction returns ¬(xs[0] ∨ ... ∨ xs[n-1]), or the literal true
// if xs is empty (a table with no resolvable actions always misses).
func negateDisjunction(xs []predicate.Expr) (predicate.Expr, error) {
	if len(xs) == 0 {
		return predicate.True, nil
	}
	or, err := predicate.NewOr(xs...)
	if err != nil {
		return nil, err
	}
	return predicate.NewNot(or)
}
