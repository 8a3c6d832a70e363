package gcl

import "errors"

// Sentinel errors wrapped with fmt.Errorf for context and carried as the
// Cause of a report.Error by Builder.Lower — never returned bare from a
// public Builder method.
var (
	// ErrUnresolvedCallee is the cause of an UnsupportedConstruct error when
	// a StmtCall names a VarID that is neither an action nor a table in
	// scope at the calling control.
	ErrUnresolvedCallee = errors.New("gcl: call to unresolved action or table")
	// ErrArityMismatch is the cause when an action call site supplies a
	// different number of arguments than the action declares parameters.
	ErrArityMismatch = errors.New("gcl: action call argument count does not match parameter count")
	// ErrTableFanoutExceeded is the cause when a table's action list is
	// longer than the Builder's configured WithMaxTableFanout bound.
	ErrTableFanoutExceeded = errors.New("gcl: table action list exceeds configured fan-out bound")
	// ErrEmptyProgram is the cause when a Program has no Control
	// declarations to lower, so no start node can be designated.
	ErrEmptyProgram = errors.New("gcl: program has no control declarations")
)
