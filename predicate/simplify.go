package predicate

// Simplify applies a small set of validity-preserving rewrites, bottom-up:
// constant folding through and/or/not, collapsing x = x to true, folding a
// literal condition of an if-then-else, and dropping trivially-true
// conjuncts / trivially-false disjuncts. Per spec.md §4.3 the simplifier
// "must be strictly validity-preserving; non-obvious transformations are
// forbidden to keep witnesses faithful" — every rule here is a standard,
// obviously sound boolean identity, nothing more.
func Simplify(e Expr) Expr {
	switch v := e.(type) {
	case Lit, Var, Versioned:
		return v
	case Call:
		return Call{Name: v.Name, Typ: v.Typ, Args: simplifySlice(v.Args)}
	case Not:
		x := Simplify(v.X)
		if lit, ok := x.(Lit); ok {
			return Lit{Value: !lit.Value}
		}
		if inner, ok := x.(Not); ok {
			return inner.X // double negation
		}
		return Not{X: x}
	case And:
		return simplifyAnd(v.Xs)
	case Or:
		return simplifyOr(v.Xs)
	case Implies:
		a, b := Simplify(v.A), Simplify(v.B)
		if lit, ok := a.(Lit); ok {
			if !lit.Value {
				return True
			}
			return b
		}
		if lit, ok := b.(Lit); ok && lit.Value {
			return True
		}
		return Implies{A: a, B: b}
	case Eq:
		a, b := Simplify(v.A), Simplify(v.B)
		if Equal(a, b) {
			return True
		}
		if la, ok := a.(Lit); ok {
			if lb, ok := b.(Lit); ok {
				return Lit{Value: la.Value == lb.Value}
			}
		}
		return Eq{A: a, B: b}
	case Ite:
		c, t, f := Simplify(v.Cond), Simplify(v.Then), Simplify(v.Else)
		if lit, ok := c.(Lit); ok {
			if lit.Value {
				return t
			}
			return f
		}
		if Equal(t, f) {
			return t
		}
		return Ite{Cond: c, Then: t, Else: f}
	default:
		return e
	}
}

func simplifySlice(xs []Expr) []Expr {
	out := make([]Expr, len(xs))
	for i, x := range xs {
		out[i] = Simplify(x)
	}
	return out
}

func simplifyAnd(xs []Expr) Expr {
	kept := make([]Expr, 0, len(xs))
	for _, x := range xs {
		sx := Simplify(x)
		if lit, ok := sx.(Lit); ok {
			if !lit.Value {
				return False
			}
			continue // drop trivially-true conjunct
		}
		kept = append(kept, sx)
	}
	switch len(kept) {
	case 0:
		return True
	case 1:
		return kept[0]
	default:
		return And{Xs: kept}
	}
}

func simplifyOr(xs []Expr) Expr {
	kept := make([]Expr, 0, len(xs))
	for _, x := range xs {
		sx := Simplify(x)
		if lit, ok := sx.(Lit); ok {
			if lit.Value {
				return True
			}
			continue // drop trivially-false disjunct
		}
		kept = append(kept, sx)
	}
	switch len(kept) {
	case 0:
		return False
	case 1:
		return kept[0]
	default:
		return Or{Xs: kept}
	}
}
