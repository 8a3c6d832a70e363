package gcl

import (
	"errors"
	"fmt"

	"github.com/mcat12/p4gcl/predicate"
)

// NodeIndex addresses a Node within a Graph. Indices are stable for the
// lifetime of the Graph: optimize.MergeTrivialEdges tombstones removed
// nodes in place rather than compacting the slice, so a NodeIndex handed
// out by the builder stays valid (or becomes visibly "removed") across
// simplification — never silently repointed to a different node.
type NodeIndex int

// EdgeIndex addresses an Edge within a Graph, with the same stability
// guarantee as NodeIndex.
type EdgeIndex int

// ErrNoSuchNode is returned by accessors given an out-of-range or removed
// NodeIndex.
var ErrNoSuchNode = errors.New("gcl: no such node")

// ErrNoSuchEdge is returned by accessors given an out-of-range or removed
// EdgeIndex.
var ErrNoSuchEdge = errors.New("gcl: no such edge")

// ErrNoStart is returned when a Graph's start node has not been set.
var ErrNoStart = errors.New("gcl: start node not set")

// Node is one program point: a debug name, an ordered command sequence,
// and whether it is a terminal bug node (spec.md §3).
type Node struct {
	Name     string
	Commands []Command
	Bug      bool
}

// Edge is a directed, guarded connection between two nodes. Multiple
// outgoing edges from one node model nondeterministic branching. The
// builder gives if and assert branches complementary guards (c and ¬c);
// a table apply's hit guards are independent uninterpreted booleans, so
// more than one of them can hold at once, while its miss guard excludes
// all of them.
type Edge struct {
	From, To NodeIndex
	Guard    predicate.Expr
}

// Graph is the GCL control-flow graph. It exclusively owns every Node and
// Edge; consumers address them by index, never by pointer (spec.md §9).
// A Graph is built once by Builder.Lower, optionally shrunk in place by
// optimize.MergeTrivialEdges, and then read-only for package reach.
type Graph struct {
	nodes []*Node // nil entry => removed by the edge simplifier
	edges []*Edge // nil entry => removed by the edge simplifier
	out   [][]EdgeIndex
	in    [][]EdgeIndex
	start NodeIndex
	hasStart bool
}

// NewGraph returns an empty Graph with no start node set.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a new node and returns its index.
func (g *Graph) AddNode(name string, bug bool) NodeIndex {
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, &Node{Name: name, Bug: bug})
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return idx
}

// SetStart designates n as the graph's unique start node.
func (g *Graph) SetStart(n NodeIndex) {
	g.start = n
	g.hasStart = true
}

// Start returns the start node index, or ErrNoStart if none was set.
func (g *Graph) Start() (NodeIndex, error) {
	if !g.hasStart {
		return 0, ErrNoStart
	}
	return g.start, nil
}

// AddEdge adds a guarded edge from -> to and returns its index.
func (g *Graph) AddEdge(from, to NodeIndex, guard predicate.Expr) (EdgeIndex, error) {
	if !g.validNode(from) {
		return 0, fmt.Errorf("%w: from=%d", ErrNoSuchNode, from)
	}
	if !g.validNode(to) {
		return 0, fmt.Errorf("%w: to=%d", ErrNoSuchNode, to)
	}
	idx := EdgeIndex(len(g.edges))
	g.edges = append(g.edges, &Edge{From: from, To: to, Guard: guard})
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)
	return idx, nil
}

func (g *Graph) validNode(n NodeIndex) bool {
	return n >= 0 && int(n) < len(g.nodes) && g.nodes[n] != nil
}

func (g *Graph) validEdge(e EdgeIndex) bool {
	return e >= 0 && int(e) < len(g.edges) && g.edges[e] != nil
}

// Node returns the node at index n.
func (g *Graph) Node(n NodeIndex) (*Node, error) {
	if !g.validNode(n) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchNode, n)
	}
	return g.nodes[n], nil
}

// Edge returns the edge at index e.
func (g *Graph) Edge(e EdgeIndex) (*Edge, error) {
	if !g.validEdge(e) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchEdge, e)
	}
	return g.edges[e], nil
}

// NodeCount returns the number of node slots (including any tombstoned by
// the edge simplifier). Callers that need only live nodes should use
// Nodes().
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Nodes returns the indices of all live (non-removed) nodes, in ascending
// order — the graph's deterministic node-insertion order (spec.md §5).
func (g *Graph) Nodes() []NodeIndex {
	out := make([]NodeIndex, 0, len(g.nodes))
	for i, n := range g.nodes {
		if n != nil {
			out = append(out, NodeIndex(i))
		}
	}
	return out
}

// BugNodes returns the indices of all live bug nodes.
func (g *Graph) BugNodes() []NodeIndex {
	var out []NodeIndex
	for i, n := range g.nodes {
		if n != nil && n.Bug {
			out = append(out, NodeIndex(i))
		}
	}
	return out
}

// Out returns the indices of n's live outgoing edges, in insertion order.
func (g *Graph) Out(n NodeIndex) []EdgeIndex {
	return g.liveEdges(g.out, n)
}

// In returns the indices of n's live incoming edges, in insertion order.
func (g *Graph) In(n NodeIndex) []EdgeIndex {
	return g.liveEdges(g.in, n)
}

func (g *Graph) liveEdges(adj [][]EdgeIndex, n NodeIndex) []EdgeIndex {
	if !g.validNode(n) || int(n) >= len(adj) {
		return nil
	}
	out := make([]EdgeIndex, 0, len(adj[n]))
	for _, e := range adj[n] {
		if g.validEdge(e) {
			out = append(out, e)
		}
	}
	return out
}

// RemoveNode tombstones n without disturbing any other NodeIndex. It is a
// mutation primitive for package optimize's edge-merge pass; callers that
// are not implementing a graph-rewrite pass should not need it.
func (g *Graph) RemoveNode(n NodeIndex) {
	g.nodes[n] = nil
	g.out[n] = nil
	g.in[n] = nil
}

// RemoveEdge tombstones e without disturbing any other EdgeIndex.
func (g *Graph) RemoveEdge(e EdgeIndex) {
	g.edges[e] = nil
}

// RerouteEdgeFrom repoints edge e's From endpoint to newFrom, updating
// adjacency bookkeeping on both the old and new source node.
func (g *Graph) RerouteEdgeFrom(e EdgeIndex, newFrom NodeIndex) {
	edge := g.edges[e]
	old := edge.From
	edge.From = newFrom
	g.out[old] = removeFromSlice(g.out[old], e)
	g.out[newFrom] = append(g.out[newFrom], e)
}
