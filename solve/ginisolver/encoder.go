package ginisolver

import (
	"fmt"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/mcat12/p4gcl/predicate"
)

// encoder Tseitin-encodes predicate.Expr trees into gini's CNF input,
// one fresh boolean variable per subexpression, memoizing leaf atoms
// (Var/Versioned/uninterpreted Call) so the same variable or call always
// maps to the same SAT literal within one encoder's lifetime.
type encoder struct {
	g      *gini.Gini
	atoms  map[string]z.Lit
	trueL  z.Lit
	hasTrue bool
}

func newEncoder() *encoder {
	return &encoder{g: gini.New(), atoms: make(map[string]z.Lit)}
}

func (enc *encoder) encode(e predicate.Expr) (z.Lit, error) {
	switch v := e.(type) {
	case predicate.Lit:
		if v.Value {
			return enc.trueLit(), nil
		}
		return enc.trueLit().Not(), nil

	case predicate.Var:
		return enc.atom(fmt.Sprintf("var:%d", v.ID)), nil

	case predicate.Versioned:
		return enc.atom(fmt.Sprintf("ver:%d#%d", v.ID, v.Ver)), nil

	case predicate.Call:
		if !v.Typ.Equal(predicate.Bool) {
			return 0, fmt.Errorf("%w: non-boolean call %s", ErrUnsupportedFragment, predicate.String(v))
		}
		return enc.atom("call:" + predicate.String(v)), nil

	case predicate.Not:
		x, err := enc.encode(v.X)
		if err != nil {
			return 0, err
		}
		return x.Not(), nil

	case predicate.And:
		lits, err := enc.encodeAll(v.Xs)
		if err != nil {
			return 0, err
		}
		return enc.andGate(lits), nil

	case predicate.Or:
		lits, err := enc.encodeAll(v.Xs)
		if err != nil {
			return 0, err
		}
		return enc.orGate(lits), nil

	case predicate.Implies:
		a, err := enc.encode(v.A)
		if err != nil {
			return 0, err
		}
		b, err := enc.encode(v.B)
		if err != nil {
			return 0, err
		}
		return enc.orGate([]z.Lit{a.Not(), b}), nil

	case predicate.Eq:
		if !v.A.Type().Equal(predicate.Bool) {
			return 0, fmt.Errorf("%w: non-boolean equality %s", ErrUnsupportedFragment, predicate.String(v))
		}
		a, err := enc.encode(v.A)
		if err != nil {
			return 0, err
		}
		b, err := enc.encode(v.B)
		if err != nil {
			return 0, err
		}
		return enc.iffGate(a, b), nil

	case predicate.Ite:
		if !v.Then.Type().Equal(predicate.Bool) {
			return 0, fmt.Errorf("%w: non-boolean if-then-else %s", ErrUnsupportedFragment, predicate.String(v))
		}
		c, err := enc.encode(v.Cond)
		if err != nil {
			return 0, err
		}
		t, err := enc.encode(v.Then)
		if err != nil {
			return 0, err
		}
		f, err := enc.encode(v.Else)
		if err != nil {
			return 0, err
		}
		thenArm := enc.andGate([]z.Lit{c, t})
		elseArm := enc.andGate([]z.Lit{c.Not(), f})
		return enc.orGate([]z.Lit{thenArm, elseArm}), nil

	default:
		return 0, fmt.Errorf("%w: unknown expression node", ErrUnsupportedFragment)
	}
}

func (enc *encoder) encodeAll(xs []predicate.Expr) ([]z.Lit, error) {
	lits := make([]z.Lit, len(xs))
	for i, x := range xs {
		l, err := enc.encode(x)
		if err != nil {
			return nil, err
		}
		lits[i] = l
	}
	return lits, nil
}

func (enc *encoder) atom(key string) z.Lit {
	if l, ok := enc.atoms[key]; ok {
		return l
	}
	l := enc.newLit()
	enc.atoms[key] = l
	return l
}

func (enc *encoder) newLit() z.Lit {
	return enc.g.NewVar().Pos()
}

func (enc *encoder) clause(lits ...z.Lit) {
	for _, l := range lits {
		enc.g.Add(l)
	}
	enc.g.Add(z.LitNull)
}

func (enc *encoder) trueLit() z.Lit {
	if !enc.hasTrue {
		enc.trueL = enc.newLit()
		enc.clause(enc.trueL)
		enc.hasTrue = true
	}
	return enc.trueL
}

// andGate returns a fresh literal Tseitin-equivalent to the conjunction
// of xs: out -> each xi, and (x1 & ... & xn) -> out.
func (enc *encoder) andGate(xs []z.Lit) z.Lit {
	out := enc.newLit()
	for _, x := range xs {
		enc.clause(out.Not(), x)
	}
	impl := make([]z.Lit, 0, len(xs)+1)
	for _, x := range xs {
		impl = append(impl, x.Not())
	}
	impl = append(impl, out)
	enc.clause(impl...)
	return out
}

// orGate returns a fresh literal Tseitin-equivalent to the disjunction of
// xs: each xi -> out, and out -> (x1 | ... | xn).
func (enc *encoder) orGate(xs []z.Lit) z.Lit {
	out := enc.newLit()
	for _, x := range xs {
		enc.clause(out, x.Not())
	}
	impl := make([]z.Lit, 0, len(xs)+1)
	impl = append(impl, xs...)
	impl = append(impl, out.Not())
	enc.clause(impl...)
	return out
}

// iffGate returns a fresh literal Tseitin-equivalent to a <-> b.
func (enc *encoder) iffGate(a, b z.Lit) z.Lit {
	both := enc.andGate([]z.Lit{a, b})
	neither := enc.andGate([]z.Lit{a.Not(), b.Not()})
	return enc.orGate([]z.Lit{both, neither})
}

// VarAssignment is one entry of the witness a satisfiable Query returns:
// the value gini assigned to one program variable version.
type VarAssignment struct {
	ID    predicate.VarID
	Ver   predicate.Version
	Value bool
}
