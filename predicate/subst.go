package predicate

// Substitute returns a copy of e with every unversioned Var leaf whose ID
// is a key of m replaced by the corresponding expression. It never touches
// Versioned leaves, so it cannot accidentally capture or rewrite an
// SSA-versioned reference; this is what makes substitution capture-free
// for a binder-less language (spec.md §4.4).
//
// Substitute is the single primitive the reachability engine (package
// reach) uses to rewrite an edge guard — which is always written in terms
// of plain, unversioned source variables — into a predecessor's
// outgoing-version namespace: Substitute(guard, versionsAtPredecessor).
func Substitute(e Expr, m map[VarID]Expr) Expr {
	if len(m) == 0 {
		return e
	}
	switch v := e.(type) {
	case Lit:
		return v
	case Var:
		if r, ok := m[v.ID]; ok {
			return r
		}
		return v
	case Versioned:
		return v
	case Call:
		return Call{Name: v.Name, Typ: v.Typ, Args: substSlice(v.Args, m)}
	case Not:
		return Not{X: Substitute(v.X, m)}
	case And:
		return And{Xs: substSlice(v.Xs, m)}
	case Or:
		return Or{Xs: substSlice(v.Xs, m)}
	case Implies:
		return Implies{A: Substitute(v.A, m), B: Substitute(v.B, m)}
	case Eq:
		return Eq{A: Substitute(v.A, m), B: Substitute(v.B, m)}
	case Ite:
		return Ite{Cond: Substitute(v.Cond, m), Then: Substitute(v.Then, m), Else: Substitute(v.Else, m)}
	default:
		return v
	}
}

func substSlice(xs []Expr, m map[VarID]Expr) []Expr {
	out := make([]Expr, len(xs))
	for i, x := range xs {
		out[i] = Substitute(x, m)
	}
	return out
}
