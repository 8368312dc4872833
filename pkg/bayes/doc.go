// Package bayes implements exact inference over discrete Bayesian
// networks.
//
// # Overview
//
// A Bayesian network is a directed acyclic graph of random variables
// where each variable holds a conditional (or marginal) probability
// table. The joint distribution of the whole network factorizes over
// the graph: it is the product of every node's table, aligned on shared
// parent axes. This package assembles that product by tensor
// contraction, conditions it on observed evidence by slicing and
// renormalizing, and answers posterior marginal queries per node.
//
// # Building a Network
//
// Construction happens in two phases. First the structure:
//
//	net := bayes.New()
//	net.AddNode("cloudy")
//	net.AddChild("cloudy", "rain")
//	net.AddChild("cloudy", "sprinkler")
//
// Then one probability table per node, after the graph shape is fixed:
//
//	err := net.AddProbabilityTable("cloudy", tensor.Vector(0.5, 0.5), []string{"T", "F"})
//
// A conditional table's first axis ranges over the node's own states;
// the remaining axes range over the parents' states in the order given
// by the dependency list:
//
//	rain, _ := tensor.NewWithData([]float64{0.8, 0.2, 0.2, 0.8}, 2, 2)
//	err = net.AddProbabilityTable("rain", rain, []string{"T", "F"}, "cloudy")
//
// The dependency list must name the parents in the exact axis order of
// the table's trailing dimensions. The engine checks the parent count
// against the graph but deliberately does not cross-validate names or
// order - axis order is caller-determined. See [Network.AddProbabilityTable].
//
// # Querying
//
// [Network.SetEvidence] clamps variables to observed states;
// [Network.Inference] answers "what do we currently believe about this
// variable given everything set so far":
//
//	_ = net.SetEvidence([]bayes.Evidence{{Node: "rain", State: "T"}})
//	res, err := net.Inference("grass_wet")
//
// Every query recomputes the joint distribution from the current tables
// and evidence; there is no cached inference state.
//
// # Concurrency
//
// Network instances are not safe for concurrent mutation. A concurrent
// host must serialize all mutating calls and may only run read-only
// queries in parallel while no mutation is in flight.
package bayes
