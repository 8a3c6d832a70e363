package ginisolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcat12/p4gcl/ir"
	"github.com/mcat12/p4gcl/predicate"
	"github.com/mcat12/p4gcl/solve"
	"github.com/mcat12/p4gcl/solve/ginisolver"
)

func solve1(t *testing.T, pred predicate.Expr) solve.Outcome {
	t.Helper()
	s := ginisolver.New()
	out, err := s.Solve(context.Background(), solve.Query{Predicate: pred, Types: ir.Metadata{}})
	require.NoError(t, err)
	return out
}

func TestSolveLiteralTrueIsSatisfiable(t *testing.T) {
	out := solve1(t, predicate.True)
	assert.True(t, out.Satisfiable)
}

func TestSolveLiteralFalseIsUnsatisfiable(t *testing.T) {
	out := solve1(t, predicate.False)
	assert.False(t, out.Satisfiable)
	assert.Nil(t, out.Witness)
}

func TestSolveContradictionIsUnsatisfiable(t *testing.T) {
	const v predicate.VarID = 0
	x := predicate.NewVar(v, predicate.Bool)
	notX, err := predicate.NewNot(x)
	require.NoError(t, err)
	contradiction, err := predicate.NewAnd(x, notX)
	require.NoError(t, err)

	out := solve1(t, contradiction)
	assert.False(t, out.Satisfiable)
}

func TestSolveSatisfiableReturnsWitness(t *testing.T) {
	const v predicate.VarID = 0
	out := solve1(t, predicate.NewVersioned(v, 0, predicate.Bool))
	require.True(t, out.Satisfiable)
	require.NotNil(t, out.Witness)

	assignments, ok := out.Witness.([]ginisolver.VarAssignment)
	require.True(t, ok)
	require.Len(t, assignments, 1)
	assert.Equal(t, v, assignments[0].ID)
	assert.Equal(t, predicate.Version(0), assignments[0].Ver)
	assert.True(t, assignments[0].Value)
}

func TestSolveNonBooleanCallIsUnsupportedFragment(t *testing.T) {
	opaque := predicate.NewCall("lookup", predicate.Opaque("Entry"))
	_, err := ginisolver.New().Solve(context.Background(), solve.Query{Predicate: opaque})
	require.Error(t, err)
	assert.ErrorIs(t, err, ginisolver.ErrUnsupportedFragment)
}

func TestSolveEquivalenceHoldsForIdenticalVersionedVar(t *testing.T) {
	const v predicate.VarID = 0
	a := predicate.NewVersioned(v, 3, predicate.Bool)
	eq, err := predicate.NewEq(a, a)
	require.NoError(t, err)

	out := solve1(t, eq)
	assert.True(t, out.Satisfiable)
}
