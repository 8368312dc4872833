// Package render produces Graphviz visualizations of network structure.
//
// [ToDOT] emits the DOT source for a network's directed graph, optionally
// annotated with state labels and evidence clamps; [SVG] rasterizes DOT
// source through the embedded Graphviz engine. Rendering covers structure
// only - probability tables are not drawn.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/probelab/beliefnet/pkg/bayes"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes each node's state labels in its box.
	Detailed bool
}

// ToDOT converts a network's structure to Graphviz DOT format.
//
// Evidence-clamped nodes are drawn filled, annotated with the observed
// state, so a conditioned network is visually distinct from an
// unconditioned one.
func ToDOT(net *bayes.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, name := range net.Nodes() {
		label := fmtLabel(net, name, opts.Detailed)
		attrs := fmtAttrs(net, name, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range net.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(net *bayes.Network, name string, detailed bool) string {
	label := name
	if state, ok := net.ObservedState(name); ok {
		label += fmt.Sprintf("\n= %s", state)
	}
	if !detailed {
		return label
	}
	if spec, ok := net.Table(name); ok {
		label += "\n{" + strings.Join(spec.States, ", ") + "}"
	}
	return label
}

func fmtAttrs(net *bayes.Network, name, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if _, ok := net.ObservedState(name); ok {
		attrs = append(attrs, "fillcolor=lightgoldenrod1")
	}
	return attrs
}

// SVG renders DOT source to SVG using the embedded Graphviz engine.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
