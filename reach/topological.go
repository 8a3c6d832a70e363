package reach

import (
	"errors"
	"fmt"

	"github.com/mcat12/p4gcl/gcl"
)

// Three-color DFS vertex states, grounded on dfs/topological.go's
// White/Gray/Black scheme, reimplemented here over gcl.NodeIndex instead
// of string vertex IDs.
const (
	white = iota
	gray
	black
)

// ErrCycleDetected is returned by topologicalOrder if g is not acyclic —
// which spec.md §3 declares an invariant of every GCL graph the builder
// produces, so surfacing it here is itself evidence of an upstream
// InternalInvariant violation, not an expected runtime condition.
var ErrCycleDetected = errors.New("reach: cycle detected")

// topologicalOrder returns g's live nodes in an order such that for every
// edge u -> v, u precedes v — a deterministic function of g's
// node-insertion order (spec.md §5 "Ordering"), since nodes are visited
// in Nodes()'s ascending-index order and each node's out-edges are
// visited in their own insertion order.
func topologicalOrder(g *gcl.Graph) ([]gcl.NodeIndex, error) {
	state := make(map[gcl.NodeIndex]int, g.NodeCount())
	order := make([]gcl.NodeIndex, 0, g.NodeCount())

	var visit func(n gcl.NodeIndex) error
	visit = func(n gcl.NodeIndex) error {
		switch state[n] {
		case gray:
			return fmt.Errorf("%w: node %d", ErrCycleDetected, n)
		case black:
			return nil
		}
		state[n] = gray
		for _, ei := range g.Out(n) {
			e, err := g.Edge(ei)
			if err != nil {
				return err
			}
			if err := visit(e.To); err != nil {
				return err
			}
		}
		state[n] = black
		order = append(order, n)
		return nil
	}

	for _, n := range g.Nodes() {
		if state[n] == white {
			if err := visit(n); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
