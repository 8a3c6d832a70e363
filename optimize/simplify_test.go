package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcat12/p4gcl/gcl"
	"github.com/mcat12/p4gcl/optimize"
	"github.com/mcat12/p4gcl/predicate"
)

const v predicate.VarID = 0

func TestMergeTrivialEdgesCollapsesPassthroughChain(t *testing.T) {
	g := gcl.NewGraph()
	a := g.AddNode("a", false)
	bNode := g.AddNode("b", false)
	// c is a bug node, so the fixpoint stops there instead of absorbing it too.
	c := g.AddNode("c", true)
	g.SetStart(a)

	aNode, err := g.Node(a)
	require.NoError(t, err)
	aNode.Commands = append(aNode.Commands, gcl.Havoc(v, predicate.Bool))

	bn, err := g.Node(bNode)
	require.NoError(t, err)
	bn.Commands = append(bn.Commands, gcl.AssignCmd(v, predicate.Bool, predicate.NewLit(true)))

	_, err = g.AddEdge(a, bNode, predicate.True)
	require.NoError(t, err)
	_, err = g.AddEdge(bNode, c, predicate.True)
	require.NoError(t, err)

	require.NoError(t, optimize.MergeTrivialEdges(g))

	nodes := g.Nodes()
	require.Len(t, nodes, 2, "b should have been merged into a, leaving only a and c")

	aAfter, err := g.Node(a)
	require.NoError(t, err)
	require.Len(t, aAfter.Commands, 2, "a should now carry its own havoc plus b's assign")
	assert.Equal(t, gcl.CmdHavoc, aAfter.Commands[0].Kind)
	assert.Equal(t, gcl.CmdAssign, aAfter.Commands[1].Kind)

	out := g.Out(a)
	require.Len(t, out, 1)
	edge, err := g.Edge(out[0])
	require.NoError(t, err)
	assert.Equal(t, c, edge.To, "a's outgoing edge should now point directly to c")
}

func TestMergeTrivialEdgesNeverMergesStartNode(t *testing.T) {
	g := gcl.NewGraph()
	a := g.AddNode("a", false)
	bNode := g.AddNode("b", false)
	g.SetStart(bNode)

	_, err := g.AddEdge(a, bNode, predicate.True)
	require.NoError(t, err)

	require.NoError(t, optimize.MergeTrivialEdges(g))

	assert.Len(t, g.Nodes(), 2, "the start node must never be absorbed away")
}

func TestMergeTrivialEdgesNeverMergesBugNode(t *testing.T) {
	g := gcl.NewGraph()
	a := g.AddNode("a", false)
	bug := g.AddNode("bug", true)
	g.SetStart(a)

	_, err := g.AddEdge(a, bug, predicate.True)
	require.NoError(t, err)

	require.NoError(t, optimize.MergeTrivialEdges(g))

	assert.Len(t, g.Nodes(), 2, "a bug node must remain a distinct terminal node")
}

func TestMergeTrivialEdgesLeavesGuardedEdgeAlone(t *testing.T) {
	g := gcl.NewGraph()
	a := g.AddNode("a", false)
	bNode := g.AddNode("b", false)
	g.SetStart(a)

	_, err := g.AddEdge(a, bNode, predicate.NewVar(v, predicate.Bool))
	require.NoError(t, err)

	require.NoError(t, optimize.MergeTrivialEdges(g))

	assert.Len(t, g.Nodes(), 2, "a non-true-guarded edge must never be merged")
}

func TestMergeTrivialEdgesSkipsMultiPredecessorNode(t *testing.T) {
	g := gcl.NewGraph()
	a := g.AddNode("a", false)
	other := g.AddNode("other", false)
	m := g.AddNode("m", false)
	g.SetStart(a)

	_, err := g.AddEdge(a, m, predicate.True)
	require.NoError(t, err)
	_, err = g.AddEdge(other, m, predicate.True)
	require.NoError(t, err)

	require.NoError(t, optimize.MergeTrivialEdges(g))

	assert.Len(t, g.Nodes(), 3, "m has two predecessors, so it may not be absorbed into either")
}

func TestMergeTrivialEdgesIsIdempotent(t *testing.T) {
	g := gcl.NewGraph()
	a := g.AddNode("a", false)
	bNode := g.AddNode("b", false)
	c := g.AddNode("c", false)
	g.SetStart(a)
	_, err := g.AddEdge(a, bNode, predicate.True)
	require.NoError(t, err)
	_, err = g.AddEdge(bNode, c, predicate.True)
	require.NoError(t, err)

	require.NoError(t, optimize.MergeTrivialEdges(g))
	firstPass := len(g.Nodes())

	require.NoError(t, optimize.MergeTrivialEdges(g))
	assert.Len(t, g.Nodes(), firstPass, "a second run must not change anything further")
}
