package report

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the two error kinds the core can surface (spec.md §7).
type Kind int

const (
	// KindUnsupportedConstruct marks an IR form the core does not handle
	// (loops, an unsupported type, an unresolved callee, ...). Expected to
	// occur on real input; never treated as fatal to the whole program —
	// package gcl accumulates these across independent declarations.
	KindUnsupportedConstruct Kind = iota
	// KindInternalInvariant marks an SSA, topological, or typing invariant
	// violated by the core itself — a programmer bug, always fatal.
	KindInternalInvariant
)

func (k Kind) String() string {
	if k == KindInternalInvariant {
		return "InternalInvariant"
	}
	return "UnsupportedConstruct"
}

// Error is the structured record every core-surfaced failure takes —
// never a bare string — so a caller can branch on Kind and read Decl/Node
// as a locator (spec.md §7: "structured records ... to permit integration
// into IDE-style reporters").
type Error struct {
	Kind Kind
	// Decl names the declaration (control, action, or table) in which the
	// error occurred.
	Decl string
	// Node is the GCL node index the error relates to, or -1 if the error
	// occurred before any node existed (e.g. during IR validation). Kept
	// as a plain int, not gcl.NodeIndex, so this package never imports
	// package gcl.
	Node int
	// Detail is a short, human-readable description of what went wrong.
	Detail string
	// Cause is the underlying error, if any. InternalInvariant errors wrap
	// Cause with a captured stack trace (github.com/pkg/errors) since a
	// stack is actually useful for tracking down a builder bug; an
	// UnsupportedConstruct has no bug to trace, so it wraps Cause plainly.
	Cause error
}

func (e *Error) Error() string {
	if e.Node >= 0 {
		return fmt.Sprintf("%s: %s (decl=%q, node=%d)", e.Kind, e.Detail, e.Decl, e.Node)
	}
	return fmt.Sprintf("%s: %s (decl=%q)", e.Kind, e.Detail, e.Decl)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Unsupported builds a KindUnsupportedConstruct error with no node locator.
func Unsupported(decl, detail string, cause error) *Error {
	return &Error{Kind: KindUnsupportedConstruct, Decl: decl, Node: -1, Detail: detail, Cause: cause}
}

// UnsupportedAt builds a KindUnsupportedConstruct error located at node.
func UnsupportedAt(decl string, node int, detail string, cause error) *Error {
	return &Error{Kind: KindUnsupportedConstruct, Decl: decl, Node: node, Detail: detail, Cause: cause}
}

// Internal builds a KindInternalInvariant error, capturing a stack trace
// on cause (or on a fresh error built from detail, if cause is nil) so the
// builder bug this indicates can actually be tracked down.
func Internal(decl string, node int, detail string, cause error) *Error {
	var traced error
	if cause != nil {
		traced = errors.WithStack(cause)
	} else {
		traced = errors.New(detail)
	}
	return &Error{Kind: KindInternalInvariant, Decl: decl, Node: node, Detail: detail, Cause: traced}
}
