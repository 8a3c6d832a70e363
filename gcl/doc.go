// Package gcl lowers a typed ir.Program into a Guarded Command Language
// control-flow graph: a directed acyclic multigraph of Node values joined
// by guarded Edge values (spec.md §3, §4.1).
//
// Nodes and edges are owned exclusively by a *Graph and referenced by
// integer NodeIndex/EdgeIndex, never by pointer — lowering builds forward
// references before their targets exist, so indices (not pointers)
// sidestep any cyclic-ownership bookkeeping (spec.md §9).
//
// Builder.Lower performs the translation; package optimize's
// MergeTrivialEdges then shrinks the resulting graph in place before it is
// handed to package reach.
package gcl
