package netio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/probelab/beliefnet/pkg/bayes"
	"github.com/probelab/beliefnet/pkg/errors"
)

// Marshal converts a network to JSON bytes in document form.
func Marshal(net *bayes.Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(net, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a network as indented JSON to an io.Writer.
func Write(net *bayes.Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromNetwork(net)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a network to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(net *bayes.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(net, f)
}

// Read decodes a JSON network document from an io.Reader and rebuilds
// the network. Returns validation errors for malformed documents or
// tables that violate the engine's invariants.
func Read(r io.Reader) (*bayes.Network, error) {
	var doc Network
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode network document")
	}
	return ToNetwork(doc)
}

// ReadFile reads a JSON file and rebuilds the decoded network.
func ReadFile(path string) (*bayes.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
