package gcl

import (
	"fmt"
	"io"
)

// Dump writes a human-readable node/edge listing to w: one line per live
// node naming its commands, followed by its outgoing edges and their
// guards. This is the "optional dump of the graph" spec.md §6 calls for —
// grounded on original_source/src/main.rs's display_node_vars /
// display_reachability, reshaped here as a plain graph dump since the
// predicate/version content is reach.Result's to print (see reach.Result.Dump).
func (g *Graph) Dump(w io.Writer) error {
	for _, idx := range g.Nodes() {
		n := g.nodes[idx]
		bugMark := ""
		if n.Bug {
			bugMark = " [bug]"
		}
		if _, err := fmt.Fprintf(w, "node %d (%s)%s\n", idx, n.Name, bugMark); err != nil {
			return err
		}
		for _, c := range n.Commands {
			if _, err := fmt.Fprintf(w, "  %s\n", describeCommand(c)); err != nil {
				return err
			}
		}
		for _, ei := range g.Out(idx) {
			e := g.edges[ei]
			if _, err := fmt.Fprintf(w, "  -> %d  guard=%s\n", e.To, e.Guard); err != nil {
				return err
			}
		}
	}
	return nil
}

func describeCommand(c Command) string {
	switch c.Kind {
	case CmdAssume:
		return fmt.Sprintf("assume(%s)", c.Pred)
	case CmdAssert:
		return fmt.Sprintf("assert(%s)", c.Pred)
	case CmdAssign:
		return fmt.Sprintf("assign(v%d := %s)", c.Var, c.Value)
	case CmdHavoc:
		return fmt.Sprintf("havoc(v%d)", c.Var)
	default:
		return "?"
	}
}
