package predicate

import "errors"

// ErrTypeMismatch is returned by a connective constructor when an operand's
// Type does not satisfy the connective's contract (e.g. a non-boolean
// operand to And/Or/Not). Construction-time only: once built, an Expr tree
// is assumed well-typed by every later stage (spec.md §4.4).
var ErrTypeMismatch = errors.New("predicate: type mismatch")

// ErrArity is returned when a connective is constructed with the wrong
// number of operands (And/Or require at least one).
var ErrArity = errors.New("predicate: wrong number of operands")
