package reach

import (
	"fmt"
	"sort"

	"github.com/mcat12/p4gcl/gcl"
	"github.com/mcat12/p4gcl/predicate"
	"github.com/mcat12/p4gcl/report"
)

// Result is the reachability engine's output: the per-node predicate map
// and VariableMap spec.md §6 names as the core's output interface,
// together with the Graph they describe.
type Result struct {
	Graph      *gcl.Graph
	Predicates map[NodeIndex]predicate.Expr
	Variables  VariableMap
}

// Compute runs the algorithm of spec.md §4.3 over g: a topological pass
// that, for every node, conjoins each predecessor's predicate with its
// edge guard rewritten into that predecessor's outgoing-version
// namespace, reconciles live variables at merges, walks the node's own
// commands updating a running predicate and the current version map, and
// simplifies the result before publishing it.
//
// Variable reconciliation at a k-predecessor merge allocates a fresh
// "phi" version (with a per-arm equality conjunct) only when the
// incoming versions for that variable actually disagree across arms;
// when every arm already agrees on one version, that version is reused
// unchanged rather than re-versioned for no reason. Spec.md §4.3 step 2
// states the rule only for the k = 1 case ("may be elided"); eliding it
// whenever incoming versions already agree, for any k, is this module's
// resolved reading of the rule (see DESIGN.md) — it is required to
// reproduce scenario S4, where x#0 is not re-versioned at the merge
// because both arms already agree on it, while y does get a fresh phi
// version because the arms disagree.
func Compute(g *gcl.Graph) (*Result, error) {
	order, err := topologicalOrder(g)
	if err != nil {
		return nil, err
	}
	start, err := g.Start()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Graph:      g,
		Predicates: make(map[NodeIndex]predicate.Expr, len(order)),
		Variables:  make(VariableMap, len(order)),
	}

	outVersions := make(map[NodeIndex]map[predicate.VarID]versionedVar, len(order))
	var nextVersion predicate.Version
	allocVersion := func() predicate.Version {
		v := nextVersion
		nextVersion++
		return v
	}

	for _, n := range order {
		node, err := g.Node(n)
		if err != nil {
			return nil, err
		}

		cur := make(map[predicate.VarID]versionedVar)
		varMap := make(map[predicate.VarID][]predicate.Version)

		var entry predicate.Expr
		if n == start {
			entry = predicate.True
		} else {
			entry, err = computeEntry(g, res, outVersions, n, cur, varMap, allocVersion)
			if err != nil {
				return nil, err
			}
		}

		pi, err := evalCommands(node.Commands, entry, cur, varMap, allocVersion)
		if err != nil {
			return nil, report.Internal("reach", int(n), "command evaluation failed", err)
		}

		res.Predicates[n] = predicate.Simplify(pi)
		res.Variables[n] = varMap
		outVersions[n] = cur
	}

	return res, nil
}

// computeEntry implements spec.md §4.3 steps 1-3 for a non-start node n:
// collecting each predecessor's (predicate ∧ rewritten guard), then
// reconciling every variable live across the incoming arms, and
// populating cur/varMap with the versions visible entering n.
func computeEntry(
	g *gcl.Graph,
	res *Result,
	outVersions map[NodeIndex]map[predicate.VarID]versionedVar,
	n NodeIndex,
	cur map[predicate.VarID]versionedVar,
	varMap map[predicate.VarID][]predicate.Version,
	allocVersion func() predicate.Version,
) (predicate.Expr, error) {
	preds := g.In(n)
	if len(preds) == 0 {
		return nil, report.Internal("reach", int(n), "non-start node has no incoming edges", nil)
	}

	type arm struct {
		pred     predicate.Expr
		versions map[predicate.VarID]versionedVar
	}
	arms := make([]arm, 0, len(preds))
	liveOrder := make([]predicate.VarID, 0)
	live := make(map[predicate.VarID]bool)

	for _, ei := range preds {
		e, err := g.Edge(ei)
		if err != nil {
			return nil, err
		}
		fromVersions, ok := outVersions[e.From]
		if !ok {
			return nil, report.Internal("reach", int(n), fmt.Sprintf("predecessor %d processed out of topological order", e.From), nil)
		}
		fromPred, ok := res.Predicates[e.From]
		if !ok {
			return nil, report.Internal("reach", int(n), fmt.Sprintf("predecessor %d has no published predicate", e.From), nil)
		}

		guard, err := versionExpr(e.Guard, fromVersions)
		if err != nil {
			return nil, report.Internal("reach", int(n), fmt.Sprintf("edge %d->%d guard", e.From, n), err)
		}
		armPred, err := predicate.NewAnd(fromPred, guard)
		if err != nil {
			return nil, report.Internal("reach", int(n), fmt.Sprintf("edge %d->%d: predecessor predicate / guard not boolean", e.From, n), err)
		}

		arms = append(arms, arm{pred: armPred, versions: fromVersions})
		for v := range fromVersions {
			if !live[v] {
				live[v] = true
				liveOrder = append(liveOrder, v)
			}
		}
	}

	// Reconcile variables in a fixed order (ascending VarID), not map
	// iteration order, so that which variable's phi version gets
	// allocated first is a deterministic function of the graph alone
	// (spec.md §8 invariant 6) rather than of Go's randomized map order.
	sort.Slice(liveOrder, func(i, j int) bool { return liveOrder[i] < liveOrder[j] })

	for _, v := range liveOrder {
		first, ok := arms[0].versions[v]
		if !ok {
			return nil, report.Internal("reach", int(n), fmt.Sprintf("variable v%d not defined on every predecessor path", v), nil)
		}
		allSame := true
		for _, a := range arms[1:] {
			vv, ok := a.versions[v]
			if !ok {
				return nil, report.Internal("reach", int(n), fmt.Sprintf("variable v%d not defined on every predecessor path", v), nil)
			}
			if vv.Ver != first.Ver {
				allSame = false
			}
		}

		if allSame {
			cur[v] = first
			varMap[v] = append(varMap[v], first.Ver)
			continue
		}

		phi := versionedVar{Ver: allocVersion(), Typ: first.Typ}
		for i := range arms {
			vv := arms[i].versions[v]
			eq, err := predicate.NewEq(
				predicate.NewVersioned(v, phi.Ver, phi.Typ),
				predicate.NewVersioned(v, vv.Ver, vv.Typ),
			)
			if err != nil {
				return nil, report.Internal("reach", int(n), fmt.Sprintf("phi equality for v%d", v), err)
			}
			conj, err := predicate.NewAnd(arms[i].pred, eq)
			if err != nil {
				return nil, report.Internal("reach", int(n), fmt.Sprintf("phi conjunct for v%d", v), err)
			}
			arms[i].pred = conj
			varMap[v] = append(varMap[v], vv.Ver)
		}
		varMap[v] = append(varMap[v], phi.Ver)
		cur[v] = phi
	}

	armExprs := make([]predicate.Expr, len(arms))
	for i, a := range arms {
		armExprs[i] = a.pred
	}
	return predicate.NewOr(armExprs...)
}

// evalCommands implements spec.md §4.3 step 4: walk n's command sequence
// in order, updating π and cur. Every version it allocates for assign/
// havoc is also appended to varMap, so a node's VariableMap entry covers
// both the versions it merged in and the ones its own commands produced
// (useful for reach.Result.Dump; spec.md §3 only
// requires the mapping cover "versions visible at that node", which both
// are).
func evalCommands(cmds []gcl.Command, entry predicate.Expr, cur map[predicate.VarID]versionedVar, varMap map[predicate.VarID][]predicate.Version, allocVersion func() predicate.Version) (predicate.Expr, error) {
	pi := entry
	for _, c := range cmds {
		switch c.Kind {
		case gcl.CmdAssume, gcl.CmdAssert:
			p, err := versionExpr(c.Pred, cur)
			if err != nil {
				return nil, err
			}
			conj, err := predicate.NewAnd(pi, p)
			if err != nil {
				return nil, err
			}
			pi = conj
		case gcl.CmdAssign:
			rhs, err := versionExpr(c.Value, cur)
			if err != nil {
				return nil, err
			}
			newVer := versionedVar{Ver: allocVersion(), Typ: c.Typ}
			eq, err := predicate.NewEq(predicate.NewVersioned(c.Var, newVer.Ver, newVer.Typ), rhs)
			if err != nil {
				return nil, err
			}
			conj, err := predicate.NewAnd(pi, eq)
			if err != nil {
				return nil, err
			}
			pi = conj
			cur[c.Var] = newVer
			varMap[c.Var] = append(varMap[c.Var], newVer.Ver)
		case gcl.CmdHavoc:
			hv := versionedVar{Ver: allocVersion(), Typ: c.Typ}
			cur[c.Var] = hv
			varMap[c.Var] = append(varMap[c.Var], hv.Ver)
		default:
			return nil, fmt.Errorf("reach: unknown command kind %d", c.Kind)
		}
	}
	return pi, nil
}

// versionExpr rewrites every unversioned predicate.Var leaf in e into the
// predicate.Versioned reference cur holds for it. Every free variable in
// e must already have an entry in cur — spec.md §3's scoping invariant
// guarantees a variable is declared (and thus versioned) on every path
// before any use — so a missing entry is reported as the caller's
// InternalInvariant, not silently patched over here.
func versionExpr(e predicate.Expr, cur map[predicate.VarID]versionedVar) (predicate.Expr, error) {
	free := make(map[predicate.VarID]struct{})
	collectFreeVars(e, free)
	if len(free) == 0 {
		return e, nil
	}
	m := make(map[predicate.VarID]predicate.Expr, len(free))
	for id := range free {
		vv, ok := cur[id]
		if !ok {
			return nil, fmt.Errorf("variable v%d referenced before any defining command", id)
		}
		m[id] = predicate.NewVersioned(id, vv.Ver, vv.Typ)
	}
	return predicate.Substitute(e, m), nil
}

func collectFreeVars(e predicate.Expr, into map[predicate.VarID]struct{}) {
	switch v := e.(type) {
	case predicate.Var:
		into[v.ID] = struct{}{}
	case predicate.Call:
		for _, a := range v.Args {
			collectFreeVars(a, into)
		}
	case predicate.Not:
		collectFreeVars(v.X, into)
	case predicate.And:
		for _, x := range v.Xs {
			collectFreeVars(x, into)
		}
	case predicate.Or:
		for _, x := range v.Xs {
			collectFreeVars(x, into)
		}
	case predicate.Implies:
		collectFreeVars(v.A, into)
		collectFreeVars(v.B, into)
	case predicate.Eq:
		collectFreeVars(v.A, into)
		collectFreeVars(v.B, into)
	case predicate.Ite:
		collectFreeVars(v.Cond, into)
		collectFreeVars(v.Then, into)
		collectFreeVars(v.Else, into)
	}
}
