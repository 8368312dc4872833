package netio

import (
	"encoding/json"

	"github.com/probelab/beliefnet/pkg/bayes"
	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/tensor"
)

// Network is the canonical document form of a Bayesian network.
// Used for API responses, storage, and caching. Node order is
// significant: it is the insertion order replayed on rebuild.
type Network struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges,omitempty" bson:"edges,omitempty"`
}

// Node is one variable's record in the document form. States, Parents,
// Table, and Shape are empty for a node that has no probability table
// attached yet (a partially built network is a valid document).
type Node struct {
	Name    string    `json:"name" bson:"name"`
	States  []string  `json:"states,omitempty" bson:"states,omitempty"`
	Parents []string  `json:"parents,omitempty" bson:"parents,omitempty"`
	Table   []float64 `json:"table,omitempty" bson:"table,omitempty"`
	Shape   []int     `json:"shape,omitempty" bson:"shape,omitempty"`
}

// Edge is a directed parent→child edge in the document form.
type Edge struct {
	From   string  `json:"from" bson:"from"`
	To     string  `json:"to" bson:"to"`
	Weight float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// FromNetwork converts a network to its document form. Node records
// appear in insertion order; tables are flattened row-major alongside
// their shapes.
func FromNetwork(net *bayes.Network) Network {
	names := net.Nodes()
	out := Network{Nodes: make([]Node, len(names))}

	for i, name := range names {
		nd := Node{Name: name}
		if spec, ok := net.Table(name); ok {
			nd.States = spec.States
			nd.Parents = spec.Parents
			nd.Table = spec.Probs.Data()
			nd.Shape = spec.Probs.Shape()
		}
		out.Nodes[i] = nd
	}

	for _, e := range net.Edges() {
		doc := Edge{From: e.From, To: e.To}
		if e.Weight != 1 {
			doc.Weight = e.Weight
		}
		out.Edges = append(out.Edges, doc)
	}

	return out
}

// ToNetwork rebuilds a network from its document form. All nodes and
// edges are inserted before any table is attached, so the engine's
// parent-count validation sees the final graph shape. Returns an
// INVALID_FORMAT error for malformed tables, or the engine's own error
// for attachments that violate its invariants.
func ToNetwork(doc Network) (*bayes.Network, error) {
	net := bayes.New()

	for _, nd := range doc.Nodes {
		if err := errors.ValidateNodeName(nd.Name); err != nil {
			return nil, err
		}
		net.AddNode(nd.Name)
	}

	for _, e := range doc.Edges {
		w := e.Weight
		if w == 0 {
			w = 1
		}
		net.AddWeightedChild(e.From, e.To, w)
	}

	for _, nd := range doc.Nodes {
		if len(nd.Table) == 0 {
			continue
		}
		shape := nd.Shape
		if len(shape) == 0 {
			shape = []int{len(nd.Table)}
		}
		probs, err := tensor.NewWithData(nd.Table, shape...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "table for node %q", nd.Name)
		}
		if err := net.AddProbabilityTable(nd.Name, probs, nd.States, nd.Parents...); err != nil {
			return nil, err
		}
	}

	return net, nil
}

// UnmarshalNetwork deserializes JSON bytes to a document.
func UnmarshalNetwork(data []byte) (Network, error) {
	var doc Network
	if err := json.Unmarshal(data, &doc); err != nil {
		return Network{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode network document")
	}
	return doc, nil
}
