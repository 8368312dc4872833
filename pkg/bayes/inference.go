package bayes

import (
	"slices"

	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/tensor"
)

// Joint is a joint distribution over a set of nodes. Probs sums to 1;
// its axes correspond one-to-one with Nodes, in order. Nodes clamped by
// evidence have already been collapsed and do not appear.
type Joint struct {
	Probs *tensor.Dense
	Nodes []string
}

// Result is the answer to an inference query. For a node clamped by
// evidence, State holds the observed label and Probs is nil. Otherwise
// Probs is the posterior distribution over States.
type Result struct {
	Node   string    `json:"node"`
	State  string    `json:"state,omitempty"`
	States []string  `json:"states,omitempty"`
	Probs  []float64 `json:"probabilities,omitempty"`
}

// Observed reports whether the queried node was clamped by evidence.
func (r Result) Observed() bool { return r.State != "" }

// JointProbability computes the joint distribution over the given node
// subset, or over the whole network when no subset is given. When
// evidence is set the subset argument is ignored: the full network's
// joint is always computed first and then conditioned, so evidence
// conditioning stays consistent with the whole network regardless of
// what a caller requested.
//
// Conditioning collapses each evidence node's axis by integer indexing
// at the observed state and renormalizes the surviving slice by its own
// sum. The result sums to 1 over the remaining state space.
//
// Any involved node without an attached table fails with MISSING_TABLE.
func (n *Network) JointProbability(subset ...string) (*Joint, error) {
	if len(subset) == 0 || len(n.evidence) > 0 {
		subset = n.graph.NodeNames()
	} else {
		for _, name := range subset {
			if !n.graph.Has(name) {
				return nil, errors.New(errors.ErrCodeNodeNotFound, "unknown node %q", name)
			}
		}
		subset = slices.Clone(subset)
	}

	label := n.labels()

	ops := make([]tensor.Operand, 0, len(subset))
	for _, name := range subset {
		tbl, ok := n.tables[name]
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingTable, "node %q has no probability table", name)
		}
		axes := make([]int, 0, 1+len(tbl.parents))
		axes = append(axes, label[name])
		for _, p := range tbl.parents {
			l, ok := label[p]
			if !ok {
				return nil, errors.New(errors.ErrCodeNodeNotFound, "dependency %q of node %q is not in the network", p, name)
			}
			axes = append(axes, l)
		}
		ops = append(ops, tensor.Operand{Tensor: tbl.probs, Labels: axes})
	}

	out := make([]int, len(subset))
	for i, name := range subset {
		out[i] = label[name]
	}

	joint, err := tensor.Contract(out, ops...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "assemble joint distribution")
	}
	if err := joint.Normalize(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "normalize joint distribution")
	}

	axisNodes := subset
	if len(n.evidence) == 0 {
		return &Joint{Probs: joint, Nodes: axisNodes}, nil
	}

	// Resolve every clamp up front; for repeated names the last entry
	// wins, matching the wholesale-replacement semantics of SetEvidence.
	fixed := make(map[string]int, len(n.evidence))
	for _, ev := range n.evidence {
		tbl, ok := n.tables[ev.Node]
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingTable, "node %q has no probability table", ev.Node)
		}
		si := slices.Index(tbl.states, ev.State)
		if si < 0 {
			return nil, errors.New(errors.ErrCodeInvalidState, "invalid state %q for node %q", ev.State, ev.Node)
		}
		fixed[ev.Node] = si
	}

	// Collapse highest axis first so lower axis positions stay valid.
	for axis := len(axisNodes) - 1; axis >= 0; axis-- {
		si, ok := fixed[axisNodes[axis]]
		if !ok {
			continue
		}
		joint, err = joint.Slice(axis, si)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "condition on evidence")
		}
		axisNodes = slices.Delete(axisNodes, axis, axis+1)
	}

	if err := joint.Normalize(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEvidence, err, "evidence has zero probability")
	}
	return &Joint{Probs: joint, Nodes: axisNodes}, nil
}

// MarginalProbability computes the distribution over one node's states
// by summing a joint distribution over every other axis.
//
// For a parent-free node with no evidence set, the attached table is
// already the marginal and is returned directly. If evidence is set,
// total is forced to true. Otherwise total selects the joint used:
// the full network when true, or just the node and its declared
// dependencies when false.
func (n *Network) MarginalProbability(name string, total bool) (*tensor.Dense, error) {
	tbl, ok := n.tables[name]
	if !ok {
		if !n.graph.Has(name) {
			return nil, errors.New(errors.ErrCodeNodeNotFound, "unknown node %q", name)
		}
		return nil, errors.New(errors.ErrCodeMissingTable, "node %q has no probability table", name)
	}

	if len(tbl.parents) == 0 && len(n.evidence) == 0 {
		return tbl.probs.Clone(), nil
	}

	if len(n.evidence) > 0 {
		total = true
	}

	var subset []string
	if total {
		subset = n.graph.NodeNames()
	} else {
		subset = append([]string{name}, tbl.parents...)
	}

	joint, err := n.JointProbability(subset...)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(joint.Nodes, name) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "node %q is clamped by evidence; use Inference", name)
	}

	label := n.labels()
	axes := make([]int, len(joint.Nodes))
	for i, nn := range joint.Nodes {
		axes[i] = label[nn]
	}

	marg, err := tensor.Contract([]int{label[name]}, tensor.Operand{Tensor: joint.Probs, Labels: axes})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marginalize joint distribution")
	}
	return marg, nil
}

// Inference answers the externally meaningful query: what do we
// currently believe about this variable, given everything set so far.
// A node clamped by evidence returns its observed state directly with
// no distribution computed; any other node returns its posterior
// marginal over the full network.
func (n *Network) Inference(name string) (Result, error) {
	if state, ok := n.ObservedState(name); ok {
		return Result{Node: name, State: state}, nil
	}

	marg, err := n.MarginalProbability(name, true)
	if err != nil {
		return Result{}, err
	}
	tbl := n.tables[name]
	return Result{
		Node:   name,
		States: slices.Clone(tbl.states),
		Probs:  marg.Data(),
	}, nil
}
