package netio

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/probelab/beliefnet/pkg/bayes"
	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/tensor"
)

// definition mirrors the TOML network-definition format.
type definition struct {
	Name  string    `toml:"name"`
	Nodes []defNode `toml:"node"`
}

type defNode struct {
	Name    string    `toml:"name"`
	States  []string  `toml:"states"`
	Parents []string  `toml:"parents"`
	Table   []float64 `toml:"table"`
}

// LoadDefinition reads a TOML network definition file and builds the
// network it describes. See the package documentation for the format.
func LoadDefinition(path string) (*bayes.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseDefinition(f)
}

// ParseDefinition builds a network from a TOML definition read from r.
//
// Edges are derived from each node's declared parent list, and table
// shapes from the parents' state counts, so the definition never spells
// out either. Every node in a definition must carry states and a table;
// partially built networks are a document-form concern, not a
// definition-file concern.
func ParseDefinition(r io.Reader) (*bayes.Network, error) {
	var def definition
	if _, err := toml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode network definition")
	}

	byName := make(map[string]defNode, len(def.Nodes))
	net := bayes.New()

	for _, nd := range def.Nodes {
		if err := errors.ValidateNodeName(nd.Name); err != nil {
			return nil, err
		}
		if _, dup := byName[nd.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "duplicate node %q", nd.Name)
		}
		byName[nd.Name] = nd
		net.AddNode(nd.Name)
	}

	for _, nd := range def.Nodes {
		for _, p := range nd.Parents {
			if _, ok := byName[p]; !ok {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "node %q declares unknown parent %q", nd.Name, p)
			}
			net.AddChild(p, nd.Name)
		}
	}

	for _, nd := range def.Nodes {
		if len(nd.States) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node %q has no states", nd.Name)
		}

		shape := make([]int, 0, 1+len(nd.Parents))
		shape = append(shape, len(nd.States))
		want := len(nd.States)
		for _, p := range nd.Parents {
			n := len(byName[p].States)
			shape = append(shape, n)
			want *= n
		}
		if len(nd.Table) != want {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"table for node %q has %d values, want %d", nd.Name, len(nd.Table), want)
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
