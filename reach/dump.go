package reach

import (
	"fmt"
	"io"
	"sort"

	"github.com/mcat12/p4gcl/predicate"
)

// Dump writes, for every node in ascending index order, its published
// predicate and its VariableMap entry — grounded on
// original_source/src/main.rs's display_node_vars / display_reachability,
// folded here into a single per-node listing since both draw from the
// same Result.
func (r *Result) Dump(w io.Writer) error {
	nodes := make([]NodeIndex, 0, len(r.Predicates))
	for n := range r.Predicates {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "node %d: predicate = %s\n", n, r.Predicates[n]); err != nil {
			return err
		}
		vars := r.Variables[n]
		ids := make([]predicate.VarID, 0, len(vars))
		for id := range vars {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			if _, err := fmt.Fprintf(w, "  v%d: %v\n", id, vars[id]); err != nil {
				return err
			}
		}
	}
	return nil
}
