// Package reach implements the reachability predicate engine of spec.md
// §4.3: a topological pass over a simplified gcl.Graph that computes, for
// every node, a closed logical predicate satisfiable iff some concrete
// input drives the program to that node, performing SSA-style variable
// renaming across merges along the way.
//
// Compute is the package's sole entry point; its Result is read-only and
// borrows predicate.Expr subtrees by value, never mutating the Graph that
// produced them (spec.md §3 "Ownership and lifecycle").
package reach
