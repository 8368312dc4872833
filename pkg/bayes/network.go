package bayes

import (
	"slices"

	"github.com/probelab/beliefnet/pkg/digraph"
	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/tensor"
)

// Evidence clamps a node to an observed state.
type Evidence struct {
	Node  string `json:"node" bson:"node"`
	State string `json:"state" bson:"state"`
}

// TableSpec is the probability information attached to a node: the
// table itself, the node's state labels (first axis), and the parent
// names matching the table's trailing axes in order.
type TableSpec struct {
	Probs   *tensor.Dense
	States  []string
	Parents []string
}

// table is the owned per-node probability attachment.
type table struct {
	probs   *tensor.Dense
	states  []string
	parents []string
}

// Network is a discrete Bayesian network: a directed graph of named
// variables plus one probability table per node and a transient evidence
// list. The network owns its graph, tables, and evidence; none of them
// are shared with callers.
//
// The zero value is not usable - use [New].
type Network struct {
	graph    *digraph.Graph
	tables   map[string]*table
	evidence []Evidence
}

// New creates an empty network with no nodes and no evidence.
func New() *Network {
	return &Network{
		graph:  digraph.New(),
		tables: make(map[string]*table),
	}
}

// AddNode adds a node to the network. No action occurs if the node
// already exists.
func (n *Network) AddNode(name string) {
	n.graph.AddNode(name)
}

// AddChild adds a directed edge from parent to child, creating either
// node if it does not exist. Adding the same edge twice is a no-op.
func (n *Network) AddChild(parent, child string) {
	n.graph.AddEdge(parent, child)
}

// AddWeightedChild is [Network.AddChild] with an explicit edge weight.
// Weights carry no probabilistic meaning; they are kept only for
// structural round-trips. An existing edge keeps its original weight.
func (n *Network) AddWeightedChild(parent, child string, weight float64) {
	n.graph.AddWeightedEdge(parent, child, weight)
}

// Nodes returns the node names in insertion order.
func (n *Network) Nodes() []string { return n.graph.NodeNames() }

// Edges returns the directed edges in insertion order.
func (n *Network) Edges() []digraph.Edge {
	edges := n.graph.Edges()
	out := make([]digraph.Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}
	return out
}

// Parents returns the names of the node's structural parents, derived
// from the graph by edge scan, in node-insertion order.
func (n *Network) Parents(name string) []string { return n.graph.Parents(name) }

// Children returns the names of the node's direct children.
func (n *Network) Children(name string) []string { return n.graph.Children(name) }

// Has reports whether a node with the given name exists.
func (n *Network) Has(name string) bool { return n.graph.Has(name) }

// Table returns a copy of the probability information attached to the
// node, or false if the node has no table (or does not exist).
func (n *Network) Table(name string) (TableSpec, bool) {
	tbl, ok := n.tables[name]
	if !ok {
		return TableSpec{}, false
	}
	return TableSpec{
		Probs:   tbl.probs.Clone(),
		States:  slices.Clone(tbl.states),
		Parents: slices.Clone(tbl.parents),
	}, true
}

// Complete reports whether every node has an attached probability table.
// Completeness is not enforced until a joint or marginal query runs.
func (n *Network) Complete() bool {
	for _, name := range n.graph.NodeNames() {
		if _, ok := n.tables[name]; !ok {
			return false
		}
	}
	return true
}

// AddProbabilityTable attaches probability information to a node. The
// graph structure must be in place first: the table's rank is validated
// against the node's current structural parent count.
//
// probs holds the marginal distribution for an independent node, or the
// conditional distribution for a dependent node with the node's own
// states on the first axis and one trailing axis per parent. parents
// must name the parents in the exact axis order of those trailing
// dimensions. The engine trusts this ordering: it checks the count, not
// the names - re-deriving the order from the graph would silently
// reinterpret the caller's table.
//
// Attaching a table to a node that already has one overwrites the
// previous attachment. On any validation failure the node's previous
// attachment is left untouched.
func (n *Network) AddProbabilityTable(name string, probs *tensor.Dense, states []string, parents ...string) error {
	if !n.graph.Has(name) {
		return errors.New(errors.ErrCodeNodeNotFound, "unknown node %q", name)
	}
	if probs == nil || probs.Rank() == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "probability table must have at least one axis")
	}
	if err := errors.ValidateStates(states); err != nil {
		return err
	}

	if probs.Shape()[0] != len(states) {
		return errors.New(errors.ErrCodeShapeMismatch, "incorrect states")
	}
	if probs.Rank()-1 != len(n.graph.Parents(name)) {
		return errors.New(errors.ErrCodeShapeMismatch, "incorrect dimensions for conditional/marginal probability")
	}
	if probs.Rank()-1 != len(parents) {
		return errors.New(errors.ErrCodeShapeMismatch, "incorrect dependency list")
	}

	n.tables[name] = &table{
		probs:   probs.Clone(),
		states:  slices.Clone(states),
		parents: slices.Clone(parents),
	}
	return nil
}

// SetEvidence replaces the network's evidence list wholesale. Every
// entry is validated before any of them take effect: an unknown node
// name fails with INVALID_EVIDENCE and an unknown state label fails
// with INVALID_STATE. In both cases the previous evidence list is kept
// unchanged - there is never a partially applied evidence set.
//
// Repeated entries for the same node are not deduplicated; the last
// entry wins when the joint distribution is conditioned.
func (n *Network) SetEvidence(evidence []Evidence) error {
	for _, ev := range evidence {
		if !n.graph.Has(ev.Node) {
			return errors.New(errors.ErrCodeInvalidEvidence, "unknown node %q in evidence", ev.Node)
		}
		tbl, ok := n.tables[ev.Node]
		if !ok {
			return errors.New(errors.ErrCodeMissingTable, "node %q has no probability table", ev.Node)
		}
		if !slices.Contains(tbl.states, ev.State) {
			return errors.New(errors.ErrCodeInvalidState, "invalid state %q for node %q", ev.State, ev.Node)
		}
	}
	n.evidence = slices.Clone(evidence)
	return nil
}

// UnsetEvidence clears the evidence list unconditionally.
func (n *Network) UnsetEvidence() {
	n.evidence = nil
}

// Evidence returns a copy of the current evidence list.
func (n *Network) Evidence() []Evidence {
	return slices.Clone(n.evidence)
}

// ObservedState returns the clamped state for a node if it appears in
// the evidence list. The first matching entry is reported.
func (n *Network) ObservedState(name string) (string, bool) {
	for _, ev := range n.evidence {
		if ev.Node == name {
			return ev.State, true
		}
	}
	return "", false
}

// labels assigns each node in the entire network a unique integer axis
// label, in node-insertion order. The labeling is stable across calls
// within one query so shared parent labels line up across tables.
func (n *Network) labels() map[string]int {
	names := n.graph.NodeNames()
	m := make(map[string]int, len(names))
	for i, name := range names {
		m[name] = i
	}
	return m
}
