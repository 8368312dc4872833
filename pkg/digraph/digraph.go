package digraph

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNodeNotFound is returned by [Graph.Node] when no node with the
// requested name exists in the graph.
var ErrNodeNotFound = errors.New("node not found")

// Node is a vertex in the graph, identified by a unique name.
// Nodes record their outgoing neighbors (children) only; parent sets are
// derived by [Graph.Parents]. The zero value is not usable - nodes are
// created through [Graph.AddNode] or [Graph.AddEdge].
type Node struct {
	Name      string
	neighbors map[string]struct{}
}

// HasNeighbor reports whether name is a direct child of this node.
func (n *Node) HasNeighbor(name string) bool {
	_, ok := n.neighbors[name]
	return ok
}

// Neighbors returns the names of this node's children in sorted order.
func (n *Node) Neighbors() []string {
	out := make([]string, 0, len(n.neighbors))
	for name := range n.neighbors {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Edge is a directed parent→child connection. At most one edge exists
// per ordered pair; the weight recorded at first insertion is kept.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a directed graph with idempotent node and edge insertion.
//
// Node iteration order (see [Graph.Nodes]) is insertion order and is
// stable across calls. The zero value is not usable - use [New].
type Graph struct {
	nodes map[string]*Node
	order []string // node names in insertion order
	edges map[[2]string]*Edge
	pairs [][2]string // edge keys in insertion order
}

// New creates an empty directed graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[[2]string]*Edge),
	}
}

// AddNode inserts a node with the given name if absent and returns the
// existing or new node. Insertion is idempotent.
func (g *Graph) AddNode(name string) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{Name: name, neighbors: make(map[string]struct{})}
	g.nodes[name] = n
	g.order = append(g.order, name)
	return n
}

// AddEdge inserts a directed edge with weight 1 between the named nodes,
// creating missing endpoints. See [Graph.AddWeightedEdge].
func (g *Graph) AddEdge(parent, child string) *Edge {
	return g.AddWeightedEdge(parent, child, 1)
}

// AddWeightedEdge inserts a directed edge between the named nodes,
// creating missing endpoints, and records the child as a neighbor of the
// parent. If the ordered pair already has an edge, the existing edge is
// returned unchanged - the new weight is not applied.
func (g *Graph) AddWeightedEdge(parent, child string, weight float64) *Edge {
	key := [2]string{parent, child}
	if e, ok := g.edges[key]; ok {
		return e
	}
	p := g.AddNode(parent)
	g.AddNode(child)
	p.neighbors[child] = struct{}{}

	e := &Edge{From: parent, To: child, Weight: weight}
	g.edges[key] = e
	g.pairs = append(g.pairs, key)
	return e
}

// Node returns the node with the given name.
// Returns ErrNodeNotFound (wrapped with the name) for unknown names.
func (g *Graph) Node(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	return n, nil
}

// Has reports whether a node with the given name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, name := range g.order {
		out[i] = g.nodes[name]
	}
	return out
}

// NodeNames returns all node names in insertion order.
func (g *Graph) NodeNames() []string { return slices.Clone(g.order) }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.pairs))
	for i, key := range g.pairs {
		out[i] = g.edges[key]
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Parents returns the names of every node whose neighbor set contains
// the target, in node-insertion order. This is an O(nodes) scan.
// Returns nil for an unknown target or a target with no parents.
func (g *Graph) Parents(name string) []string {
	var parents []string
	for _, pname := range g.order {
		if g.nodes[pname].HasNeighbor(name) {
			parents = append(parents, pname)
		}
	}
	return parents
}

// Children returns the names of the target's direct children in sorted
// order. Returns nil for an unknown target or a childless target.
func (g *Graph) Children(name string) []string {
	n, ok := g.nodes[name]
	if !ok || len(n.neighbors) == 0 {
		return nil
	}
	return n.Neighbors()
}
