package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcat12/p4gcl/predicate"
)

func TestConstructorsRejectTypeMismatch(t *testing.T) {
	bv := predicate.NewVar(1, predicate.BitVector(8))
	boolV := predicate.NewVar(2, predicate.Bool)

	_, err := predicate.NewAnd(bv, boolV)
	assert.ErrorIs(t, err, predicate.ErrTypeMismatch)

	_, err = predicate.NewNot(bv)
	assert.ErrorIs(t, err, predicate.ErrTypeMismatch)

	_, err = predicate.NewEq(bv, boolV)
	assert.ErrorIs(t, err, predicate.ErrTypeMismatch)

	_, err = predicate.NewAnd()
	assert.ErrorIs(t, err, predicate.ErrArity)
}

func TestConstructorsAcceptWellTyped(t *testing.T) {
	x := predicate.NewVar(0, predicate.Bool)
	y := predicate.NewVar(1, predicate.Bool)

	and, err := predicate.NewAnd(x, y)
	require.NoError(t, err)
	assert.Equal(t, predicate.Bool, and.Type())

	ite, err := predicate.NewIte(x, predicate.NewLit(true), predicate.NewLit(false))
	require.NoError(t, err)
	assert.Equal(t, predicate.Bool, ite.Type())
}

func TestSimplifyConstantFolding(t *testing.T) {
	x := predicate.NewVar(0, predicate.Bool)

	and, err := predicate.NewAnd(predicate.True, x, predicate.True)
	require.NoError(t, err)
	assert.True(t, predicate.Equal(x, predicate.Simplify(and)))

	or, err := predicate.NewOr(predicate.False, x)
	require.NoError(t, err)
	assert.True(t, predicate.Equal(x, predicate.Simplify(or)))

	and2, err := predicate.NewAnd(predicate.False, x)
	require.NoError(t, err)
	assert.Equal(t, predicate.False, predicate.Simplify(and2))

	eq, err := predicate.NewEq(x, x)
	require.NoError(t, err)
	assert.Equal(t, predicate.True, predicate.Simplify(eq))

	not2, err := predicate.NewNot(x)
	require.NoError(t, err)
	not2, err = predicate.NewNot(not2)
	require.NoError(t, err)
	assert.True(t, predicate.Equal(x, predicate.Simplify(not2)))
}

func TestSimplifyIteConstantCondition(t *testing.T) {
	x := predicate.NewVar(0, predicate.Bool)
	y := predicate.NewVar(1, predicate.Bool)

	ite, err := predicate.NewIte(predicate.True, x, y)
	require.NoError(t, err)
	assert.True(t, predicate.Equal(x, predicate.Simplify(ite)))

	ite, err = predicate.NewIte(predicate.False, x, y)
	require.NoError(t, err)
	assert.True(t, predicate.Equal(y, predicate.Simplify(ite)))
}

func TestSubstituteIsCaptureFree(t *testing.T) {
	raw := predicate.NewVar(0, predicate.Bool)
	versioned := predicate.NewVersioned(0, 3, predicate.Bool)

	rewritten := predicate.Substitute(raw, map[predicate.VarID]predicate.Expr{0: versioned})
	assert.True(t, predicate.Equal(versioned, rewritten))

	// A Versioned leaf with the same ID is untouched: substitution only
	// rewrites unversioned Var leaves.
	again := predicate.Substitute(versioned, map[predicate.VarID]predicate.Expr{0: raw})
	assert.True(t, predicate.Equal(versioned, again))
}
