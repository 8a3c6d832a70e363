package predicate

import (
	"fmt"
	"strings"
)

// String renders e as a compact s-expression-like form, used only for
// debug dumps (gcl.Graph.Dump, reach.Result.Dump) — never parsed back in.
func String(e Expr) string {
	switch v := e.(type) {
	case Lit:
		return fmt.Sprintf("%t", v.Value)
	case Var:
		return fmt.Sprintf("v%d", v.ID)
	case Versioned:
		return fmt.Sprintf("v%d#%d", v.ID, v.Ver)
	case Call:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = String(a)
		}
		return fmt.Sprintf("%s(%s)", v.Name, strings.Join(args, ", "))
	case Not:
		return fmt.Sprintf("!%s", String(v.X))
	case And:
		return joinConnective(v.Xs, " && ")
	case Or:
		return joinConnective(v.Xs, " || ")
	case Implies:
		return fmt.Sprintf("(%s -> %s)", String(v.A), String(v.B))
	case Eq:
		return fmt.Sprintf("(%s = %s)", String(v.A), String(v.B))
	case Ite:
		return fmt.Sprintf("(%s ? %s : %s)", String(v.Cond), String(v.Then), String(v.Else))
	default:
		return "?"
	}
}

func joinConnective(xs []Expr, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = String(x)
	}
	return "(" + strings.Join(parts, sep) + ")"
}
