package optimize

import (
	"github.com/mcat12/p4gcl/gcl"
	"github.com/mcat12/p4gcl/predicate"
)

// MergeTrivialEdges shrinks g in place, implementing spec.md §4.2's rule:
// merge an edge u -> v into its endpoints when (1) the guard is the
// literal true, (2) v has exactly one predecessor, (3) v is neither a bug
// node nor the start node, and (4) u's and v's commands can be
// concatenated (always true for this command language). v's commands are
// appended to u's, each of v's outgoing edges is rerouted to originate
// from u, and v is deleted. This repeats to a fixpoint: merging can make a
// previously-two-predecessor node single-predecessor, or turn a freshly
// merged node's own successor into a new candidate.
//
// MergeTrivialEdges never changes which bug nodes are reachable nor the
// predicate any surviving node denotes (spec.md §4.2 "Invariant
// preserved"); running it twice is a no-op the second time (spec.md §8,
// idempotence), since after a fixpoint pass no more edges satisfy rule 2.
func MergeTrivialEdges(g *gcl.Graph) error {
	start, err := g.Start()
	if err != nil {
		return err
	}

	for {
		merged, err := mergeOnePass(g, start)
		if err != nil {
			return err
		}
		if !merged {
			return nil
		}
	}
}

// mergeOnePass scans every live edge once and performs every merge it
// finds valid at scan time, reporting whether it merged anything. A
// single pass can miss merges newly enabled by its own merges (e.g. u now
// has one outgoing true edge to a w that itself now qualifies); the
// fixpoint loop in MergeTrivialEdges re-scans until a pass finds nothing.
func mergeOnePass(g *gcl.Graph, start gcl.NodeIndex) (bool, error) {
	merged := false
	for _, u := range g.Nodes() {
		for _, ei := range g.Out(u) {
			edge, err := g.Edge(ei)
			if err != nil {
				return false, err
			}
			v := edge.To
			if v == u {
				continue // a true self-loop can never satisfy rule 2 (>= 2 edges would terminate at v: itself plus the original incoming one)
			}
			if !literalTrue(edge.Guard) {
				continue
			}
			if v == start {
				continue
			}
			vNode, err := g.Node(v)
			if err != nil {
				return false, err
			}
			if vNode.Bug {
				continue
			}
			if len(g.In(v)) != 1 {
				continue
			}

			uNode, err := g.Node(u)
			if err != nil {
				return false, err
			}
			uNode.AppendCommands(vNode)

			for _, outEdge := range g.Out(v) {
				g.RerouteEdgeFrom(outEdge, u)
			}

			g.RemoveEdge(ei)
			g.RemoveNode(v)
			merged = true
		}
	}
	return merged, nil
}

func literalTrue(e predicate.Expr) bool {
	lit, ok := e.(predicate.Lit)
	return ok && lit.Value
}
