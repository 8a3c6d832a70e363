package ginisolver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mcat12/p4gcl/predicate"
	"github.com/mcat12/p4gcl/solve"
)

// Solver implements solve.Solver over the boolean-only fragment of the
// predicate language. The zero value is ready to use; each Solve call
// builds its own fresh gini instance, so a Solver may be reused
// concurrently across queries.
type Solver struct{}

// New returns a ready-to-use Solver.
func New() *Solver { return &Solver{} }

// Solve implements solve.Solver.
func (s *Solver) Solve(_ context.Context, q solve.Query) (solve.Outcome, error) {
	enc := newEncoder()
	top, err := enc.encode(q.Predicate)
	if err != nil {
		return solve.Outcome{}, err
	}
	enc.clause(top)

	switch enc.g.Solve() {
	case 1:
		return solve.Outcome{Satisfiable: true, Witness: enc.witness()}, nil
	case -1:
		return solve.Outcome{Satisfiable: false}, nil
	default:
		return solve.Outcome{}, ErrIndeterminate
	}
}

// witness collects the value gini assigned to every "ver:"-prefixed atom
// — the program variable versions, as opposed to this encoder's internal
// Tseitin gate variables or uninterpreted-call atoms — sorted by
// (VarID, Version) for deterministic output.
func (enc *encoder) witness() []VarAssignment {
	out := make([]VarAssignment, 0, len(enc.atoms))
	for key, lit := range enc.atoms {
		if !strings.HasPrefix(key, "ver:") {
			continue
		}
		var id, ver uint64
		if _, err := parseVerKey(key, &id, &ver); err != nil {
			continue
		}
		out = append(out, VarAssignment{
			ID:    predicate.VarID(id),
			Ver:   predicate.Version(ver),
			Value: enc.g.Value(lit),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Ver < out[j].Ver
	})
	return out
}

// parseVerKey parses a "ver:<id>#<ver>" atom key, as produced by
// encoder.encode's predicate.Versioned case.
func parseVerKey(key string, id, ver *uint64) (int, error) {
	body := strings.TrimPrefix(key, "ver:")
	parts := strings.SplitN(body, "#", 2)
	if len(parts) != 2 {
		return 0, ErrUnsupportedFragment
	}
	if _, err := fmt.Sscanf(parts[0], "%d", id); err != nil {
		return 0, err
	}
	if _, err := fmt.Sscanf(parts[1], "%d", ver); err != nil {
		return 0, err
	}
	return 2, nil
}
