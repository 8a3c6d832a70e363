// Package optimize implements the edge simplifier of spec.md §4.2: a
// fixpoint graph rewrite that merges a true-guarded edge into its
// endpoints whenever the target has exactly one predecessor and is
// neither a bug node nor the start node, without changing which bug nodes
// are reachable or the predicate any surviving node denotes.
//
// Grounded on lvlath/dfs's graph-rewrite style (tombstone removal, index
// stability) generalized from vertex-ID maps to gcl.Graph's integer
// NodeIndex/EdgeIndex.
package optimize
