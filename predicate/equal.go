package predicate

// Equal reports whether a and b are syntactically identical expression
// trees. Per spec.md §4.4, equality is syntactic after simplification —
// there is no alpha-equivalence (the language has no binders) and no
// attempt at semantic/SMT-level equivalence checking here.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case Lit:
		bv, ok := b.(Lit)
		return ok && av.Value == bv.Value
	case Var:
		bv, ok := b.(Var)
		return ok && av.ID == bv.ID && av.Typ.Equal(bv.Typ)
	case Versioned:
		bv, ok := b.(Versioned)
		return ok && av.ID == bv.ID && av.Ver == bv.Ver && av.Typ.Equal(bv.Typ)
	case Call:
		bv, ok := b.(Call)
		if !ok || av.Name != bv.Name || !av.Typ.Equal(bv.Typ) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case Not:
		bv, ok := b.(Not)
		return ok && Equal(av.X, bv.X)
	case And:
		bv, ok := b.(And)
		return ok && equalSlice(av.Xs, bv.Xs)
	case Or:
		bv, ok := b.(Or)
		return ok && equalSlice(av.Xs, bv.Xs)
	case Implies:
		bv, ok := b.(Implies)
		return ok && Equal(av.A, bv.A) && Equal(av.B, bv.B)
	case Eq:
		bv, ok := b.(Eq)
		return ok && Equal(av.A, bv.A) && Equal(av.B, bv.B)
	case Ite:
		bv, ok := b.(Ite)
		return ok && Equal(av.Cond, bv.Cond) && Equal(av.Then, bv.Then) && Equal(av.Else, bv.Else)
	default:
		return false
	}
}

func equalSlice(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
