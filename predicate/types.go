package predicate

import "fmt"

// Kind classifies the value domain of a Type. The core reasons natively
// about booleans; bit-vector and opaque (struct/table/extern) types are
// carried through verbatim for the SMT collaborator but never decomposed
// here — bit-vector arithmetic is out of scope (spec.md §1 Non-goals).
type Kind int

const (
	// KindBool is the only Kind the predicate algebra itself interprets:
	// boolean connectives require both operands to have Kind == KindBool.
	KindBool Kind = iota
	// KindBitVector is a fixed-width integer domain, opaque to this package
	// beyond carrying Width through for the solver.
	KindBitVector
	// KindOpaque covers struct, table, action and other declaration-level
	// types that never appear as the type of a value-carrying leaf except
	// as the result of an uninterpreted Call.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindBitVector:
		return "bitvector"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is the type attached to every predicate-language expression.
// Width is meaningful only for KindBitVector; Name labels an opaque type
// (e.g. a struct or table name) for diagnostics and is otherwise unused.
type Type struct {
	Kind  Kind
	Width int
	Name  string
}

// Bool is the single boolean type; every leaf and connective in scenarios
// S1-S6 uses it exclusively.
var Bool = Type{Kind: KindBool}

// BitVector returns the Type for an unsigned bit-vector of the given width.
func BitVector(width int) Type {
	return Type{Kind: KindBitVector, Width: width}
}

// Opaque returns the Type for a named, uninterpreted value domain.
func Opaque(name string) Type {
	return Type{Kind: KindOpaque, Name: name}
}

func (t Type) String() string {
	switch t.Kind {
	case KindBitVector:
		return fmt.Sprintf("bit<%d>", t.Width)
	case KindOpaque:
		if t.Name != "" {
			return t.Name
		}
		return "opaque"
	default:
		return "bool"
	}
}

// Equal reports whether two types denote the same domain.
func (t Type) Equal(o Type) bool {
	return t.Kind == o.Kind && t.Width == o.Width && t.Name == o.Name
}
