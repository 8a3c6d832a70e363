package solve

import (
	"context"
	"fmt"

	"github.com/mcat12/p4gcl/gcl"
	"github.com/mcat12/p4gcl/ir"
	"github.com/mcat12/p4gcl/predicate"
	"github.com/mcat12/p4gcl/reach"
	"github.com/mcat12/p4gcl/report"
)

// Run asks solver about every node res.Graph selects under mode (bug
// nodes only, or every node), in ascending NodeIndex order for
// deterministic output (spec.md §8 invariant 6), and returns one
// report.BugReport per node asked about.
func Run(ctx context.Context, res *reach.Result, types ir.Metadata, mode Mode, solver Solver) ([]report.BugReport, error) {
	var targets []gcl.NodeIndex
	switch mode {
	case AllNodes:
		targets = res.Graph.Nodes()
	default:
		targets = res.Graph.BugNodes()
	}

	out := make([]report.BugReport, 0, len(targets))
	for _, n := range targets {
		pred, ok := res.Predicates[n]
		if !ok {
			return nil, fmt.Errorf("solve: node %d has no published predicate", n)
		}
		outcome, err := solver.Solve(ctx, Query{Predicate: pred, Types: types})
		if err != nil {
			return nil, fmt.Errorf("solve: node %d: %w", n, err)
		}

		verdict := report.VerdictUnsatisfiable
		witness := report.Witness(nil)
		if outcome.Satisfiable {
			verdict = report.VerdictSatisfiable
			witness = outcome.Witness
		}

		out = append(out, report.BugReport{
			Node:      int(n),
			Predicate: predicate.String(pred),
			Verdict:   verdict,
			Witness:   witness,
		})
	}
	return out, nil
}
