package ginisolver

import "errors"

// ErrUnsupportedFragment is returned when a Query's predicate carries a
// leaf outside the boolean-only fragment this solver encodes — a
// bit-vector or opaque-typed Var/Versioned/Call/Eq, none of which have a
// defined boolean CNF encoding here.
var ErrUnsupportedFragment = errors.New("ginisolver: predicate outside the boolean-only fragment")

// ErrIndeterminate is returned on the rare occasion gini's Solve reports
// neither satisfiable nor unsatisfiable (e.g. an external resource limit
// gini itself enforces) — the core never expects this for the bounded
// boolean formulas this solver builds, so it is surfaced as an error
// rather than silently reported as either outcome.
var ErrIndeterminate = errors.New("ginisolver: solver returned an indeterminate result")
