// Package tensor provides a dense row-major float64 tensor and an
// einsum-style contraction primitive used by the inference engine.
//
// # Overview
//
// Probability tables in a Bayesian network are tensors: the first axis
// ranges over a node's own states and the remaining axes range over its
// parents' states. Assembling a joint distribution multiplies all tables
// together and sums out nothing; marginalization sums out every axis but
// one. Both are instances of a single generalized operation, tensor
// contraction, provided here by [Contract].
//
// # Axis Labels
//
// Contraction inputs are labeled: each operand carries one integer label
// per axis. Axes sharing a label across operands are aligned (and must
// have equal sizes); labels that appear in at least one input but not in
// the requested output are summed out. Integer labels are unbounded, so
// the scheme works for arbitrarily large label spaces rather than being
// capped by an alphabet.
//
//	// P(a) * P(b|a), summed over a -> P(b)
//	out, err := tensor.Contract([]int{1},
//	    tensor.Operand{Tensor: pa, Labels: []int{0}},
//	    tensor.Operand{Tensor: pba, Labels: []int{1, 0}},
//	)
//
// # Cost
//
// Contraction iterates the full joint label space, so its cost is the
// product of all distinct label sizes. For the small networks exact
// inference targets this is acceptable; no factorization or contraction
// ordering is attempted.
//
// # Concurrency
//
// Dense tensors are not safe for concurrent mutation. Read-only use from
// multiple goroutines is safe.
package tensor
