// Package digraph provides a minimal directed graph of named nodes used
// as the structural backbone of a Bayesian network.
//
// # Overview
//
// The graph holds uniquely named nodes and directed parent→child edges.
// It carries no probability semantics: its only job is bookkeeping the
// dependency structure so that parent sets can be derived for each node.
//
// Insertion is idempotent. [Graph.AddNode] returns the existing node if
// the name is already present, and [Graph.AddEdge] inserts missing
// endpoints automatically and leaves an existing edge untouched - a
// second call with a different weight is deliberately a no-op.
//
// # Basic Usage
//
//	g := digraph.New()
//	g.AddNode("cloudy")
//	g.AddEdge("cloudy", "rain")
//	g.AddEdge("cloudy", "sprinkler")
//
//	parents := g.Parents("rain") // ["cloudy"]
//
// Node iteration order is insertion order and is stable across calls,
// which downstream consumers rely on for deterministic axis labeling.
//
// # Parent Lookup
//
// Edges record the child as a neighbor of the parent only. [Graph.Parents]
// therefore scans all nodes for those whose neighbor set contains the
// target. This is O(nodes) per call rather than an indexed reverse-edge
// structure; the networks this package serves are small and parent lookup
// is not a hot path.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must
// synchronize access if multiple goroutines read and modify the same
// graph.
package digraph
