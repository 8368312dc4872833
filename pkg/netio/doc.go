// Package netio provides serialization for Bayesian networks.
//
// # Document Form
//
// [Network] is the canonical document form of a network: node records
// carrying states, dependency lists, and flattened probability tables
// with their shapes, plus the directed edge list. It is used for API
// responses, storage, and caching. The same struct serializes to JSON
// (API, files) and BSON (MongoDB) via parallel tags.
//
// The document preserves node listing order, and rebuilding a network
// replays that order. Axis labeling inside the engine is keyed by node
// insertion order, so a round-trip through the document form reproduces
// identical query results.
//
// Evidence is deliberately not part of the document: it is transient
// per-session state, not network identity.
//
// # Definition Files
//
// [LoadDefinition] reads a TOML network definition, a hand-editable
// format where edges are implied by per-node parent lists:
//
//	name = "sprinkler"
//
//	[[node]]
//	name = "cloudy"
//	states = ["T", "F"]
//	table = [0.5, 0.5]
//
//	[[node]]
//	name = "rain"
//	parents = ["cloudy"]
//	states = ["T", "F"]
//	table = [0.8, 0.2, 0.2, 0.8]
//
// Conditional tables are written row-major: the node's own states vary
// slowest, the last declared parent fastest. The expected value count is
// the product of the node's and all parents' state counts.
package netio
