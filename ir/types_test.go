package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcat12/p4gcl/ir"
	"github.com/mcat12/p4gcl/predicate"
)

func TestMetadataTypeOfFallsBackToBool(t *testing.T) {
	m := ir.Metadata{VarType: map[predicate.VarID]predicate.Type{0: predicate.BitVector(8)}}
	assert.Equal(t, predicate.BitVector(8), m.TypeOf(0))
	assert.Equal(t, predicate.Bool, m.TypeOf(99))
}

func TestMatchKindString(t *testing.T) {
	assert.Equal(t, "exact", ir.MatchExact.String())
	assert.Equal(t, "lpm", ir.MatchLPM.String())
	assert.Equal(t, "ternary", ir.MatchTernary.String())
}
