package report_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcat12/p4gcl/report"
)

func TestUnsupportedHasNoNodeLocator(t *testing.T) {
	cause := errors.New("boom")
	err := report.Unsupported("C.apply", "loop constructs are not supported", cause)

	assert.Equal(t, report.KindUnsupportedConstruct, err.Kind)
	assert.Equal(t, -1, err.Node)
	assert.Equal(t, "C.apply", err.Decl)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "UnsupportedConstruct")
	assert.NotContains(t, err.Error(), "node=")
}

func TestUnsupportedAtIncludesNodeLocator(t *testing.T) {
	err := report.UnsupportedAt("C.apply", 7, "unresolved callee", report.Unsupported("x", "y", nil))

	assert.Equal(t, 7, err.Node)
	assert.Contains(t, err.Error(), "node=7")
}

func TestInternalWrapsCauseWithStack(t *testing.T) {
	cause := errors.New("topological order is not a DAG")
	err := report.Internal("reach", 3, "cycle detected", cause)

	require.Error(t, err)
	assert.Equal(t, report.KindInternalInvariant, err.Kind)
	assert.ErrorIs(t, err, cause)

	// github.com/pkg/errors.WithStack wraps cause in a type that exposes
	// Unwrap (to reach cause) and a StackTrace — confirm Internal actually
	// captured one rather than just returning cause verbatim.
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	_, ok := err.Cause.(stackTracer)
	assert.True(t, ok, "Internal's Cause should be a pkg/errors wrapper exposing StackTrace")
}

func TestInternalWithNilCauseBuildsFreshError(t *testing.T) {
	err := report.Internal("reach", -1, "no start node", nil)
	require.Error(t, err.Cause)
	assert.Equal(t, "no start node", err.Cause.Error())
}

func TestNoBugsFound(t *testing.T) {
	assert.True(t, report.NoBugsFound(nil))
	assert.True(t, report.NoBugsFound([]report.BugReport{
		{Node: 0, Verdict: report.VerdictUnsatisfiable},
		{Node: 1, Verdict: report.VerdictUnsatisfiable},
	}))
	assert.False(t, report.NoBugsFound([]report.BugReport{
		{Node: 0, Verdict: report.VerdictUnsatisfiable},
		{Node: 1, Verdict: report.VerdictSatisfiable},
	}))
}
