package tensor

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNoOperands is returned by [Contract] when called without inputs.
	ErrNoOperands = errors.New("contraction requires at least one operand")

	// ErrLabelCount is returned by [Contract] when an operand's label
	// sequence does not have one label per tensor axis.
	ErrLabelCount = errors.New("operand label count does not match rank")

	// ErrLabelSize is returned by [Contract] when axes sharing a label
	// have different sizes.
	ErrLabelSize = errors.New("conflicting sizes for shared label")

	// ErrUnknownLabel is returned by [Contract] when an output label does
	// not appear in any operand.
	ErrUnknownLabel = errors.New("output label not present in any operand")

	// ErrDuplicateOutput is returned by [Contract] when the output label
	// sequence repeats a label.
	ErrDuplicateOutput = errors.New("duplicate output label")
)

// Operand is a labeled contraction input: a tensor plus one integer
// label per axis. Axes sharing a label across operands are aligned.
type Operand struct {
	Tensor *Dense
	Labels []int
}

// Contract computes a generalized tensor contraction (Einstein
// summation) over the operands. Each element of the result, indexed by
// the output labels, is the sum over every label absent from output of
// the product of the corresponding elements of all operands carrying
// that label.
//
// An empty output label sequence produces a rank-0 scalar holding the
// full sum of products. Contract never modifies its operands.
func Contract(output []int, operands ...Operand) (*Dense, error) {
	if len(operands) == 0 {
		return nil, ErrNoOperands
	}

	// Collect every label's size, checking cross-operand consistency.
	sizes := make(map[int]int)
	for _, op := range operands {
		if op.Tensor == nil {
			return nil, fmt.Errorf("%w: nil tensor", ErrLabelCount)
		}
		if len(op.Labels) != op.Tensor.Rank() {
			return nil, fmt.Errorf("%w: %d labels for rank %d", ErrLabelCount, len(op.Labels), op.Tensor.Rank())
		}
		for i, l := range op.Labels {
			n := op.Tensor.shape[i]
			if prev, ok := sizes[l]; ok && prev != n {
				return nil, fmt.Errorf("%w: label %d has sizes %d and %d", ErrLabelSize, l, prev, n)
			}
			sizes[l] = n
		}
	}

	seen := make(map[int]struct{}, len(output))
	for _, l := range output {
		if _, ok := sizes[l]; !ok {
			return nil, fmt.Errorf("%w: label %d", ErrUnknownLabel, l)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: label %d", ErrDuplicateOutput, l)
		}
		seen[l] = struct{}{}
	}

	// Iteration order over the joint label space: output labels first
	// (so the leading positions directly address the result), then the
	// summed-out labels in sorted order for determinism.
	order := slices.Clone(output)
	for _, l := range slices.Sorted(maps.Keys(sizes)) {
		if _, ok := seen[l]; !ok {
			order = append(order, l)
		}
	}

	pos := make(map[int]int, len(order))
	dims := make([]int, len(order))
	for i, l := range order {
		pos[l] = i
		dims[i] = sizes[l]
	}

	// Per-operand stride contribution of each joint-space position.
	// A label repeated within one operand accumulates both strides,
	// giving diagonal semantics, though tables never do that here.
	contrib := make([][]int, len(operands))
	for k, op := range operands {
		st := op.Tensor.strides()
		c := make([]int, len(order))
		for i, l := range op.Labels {
			c[pos[l]] += st[i]
		}
		contrib[k] = c
	}

	outShape := dims[:len(output)]
	out := New(outShape...)
	outStrides := out.strides()

	total := 1
	for _, n := range dims {
		total *= n
	}

	idx := make([]int, len(order))
	for flat := 0; flat < total; flat++ {
		prod := 1.0
		for k, op := range operands {
			off := 0
			for j, c := range contrib[k] {
				off += idx[j] * c
			}
			prod *= op.Tensor.data[off]
		}

		outOff := 0
		for j := range output {
			outOff += idx[j] * outStrides[j]
		}
		out.data[outOff] += prod

		// Advance the joint-space odometer, last position fastest.
		for j := len(idx) - 1; j >= 0; j-- {
			idx[j]++
			if idx[j] < dims[j] {
				break
			}
			idx[j] = 0
		}
	}

	return out, nil
}
