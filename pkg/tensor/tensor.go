package tensor

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidShape is returned by [NewWithData] when the data length
	// does not equal the product of the shape dimensions, or when a
	// dimension is not positive.
	ErrInvalidShape = errors.New("data length does not match shape")

	// ErrAxisRange is returned by [Dense.Slice] when the axis is outside
	// the tensor's rank.
	ErrAxisRange = errors.New("axis out of range")

	// ErrIndexRange is returned by [Dense.Slice] when the index is outside
	// the sliced axis.
	ErrIndexRange = errors.New("index out of range")

	// ErrZeroSum is returned by [Dense.Normalize] when the element sum is
	// not a positive finite number, making normalization meaningless.
	ErrZeroSum = errors.New("element sum is not positive")
)

// Dense is a dense tensor of float64 values in row-major order.
// A rank-0 Dense holds a single scalar element.
//
// The zero value is not usable - use [New], [NewWithData], or [Vector].
type Dense struct {
	shape []int
	data  []float64
}

// New creates a zero-filled tensor with the given shape.
// Called with no arguments it creates a rank-0 scalar tensor.
// All dimensions must be positive; New panics otherwise, since a
// negative or zero dimension is always a programming error.
func New(shape ...int) *Dense {
	size := 1
	for _, n := range shape {
		if n <= 0 {
			panic(fmt.Sprintf("tensor: invalid dimension %d", n))
		}
		size *= n
	}
	return &Dense{
		shape: slices.Clone(shape),
		data:  make([]float64, size),
	}
}

// NewWithData creates a tensor wrapping the given backing slice.
// The slice is used directly, not copied; the caller must not modify it
// afterwards. Returns ErrInvalidShape if the slice length does not equal
// the product of the dimensions or a dimension is not positive.
func NewWithData(data []float64, shape ...int) (*Dense, error) {
	size := 1
	for _, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("%w: dimension %d", ErrInvalidShape, n)
		}
		size *= n
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrInvalidShape, len(data), shape)
	}
	return &Dense{shape: slices.Clone(shape), data: data}, nil
}

// Vector creates a rank-1 tensor from the given values.
// It panics when called with no values.
func Vector(values ...float64) *Dense {
	t, err := NewWithData(slices.Clone(values), len(values))
	if err != nil {
		panic(err)
	}
	return t
}

// Shape returns a copy of the tensor's dimensions.
func (t *Dense) Shape() []int { return slices.Clone(t.shape) }

// Rank returns the number of axes. A scalar has rank 0.
func (t *Dense) Rank() int { return len(t.shape) }

// Size returns the total number of elements.
func (t *Dense) Size() int { return len(t.data) }

// Data returns the backing slice in row-major order.
// The slice is live: modifications affect the tensor.
func (t *Dense) Data() []float64 { return t.data }

// Clone returns a deep copy of the tensor.
func (t *Dense) Clone() *Dense {
	return &Dense{
		shape: slices.Clone(t.shape),
		data:  slices.Clone(t.data),
	}
}

// At returns the element at the given multi-index.
// The number of indices must equal the rank; out-of-range indices panic,
// matching slice-indexing semantics.
func (t *Dense) At(indices ...int) float64 {
	return t.data[t.flatten(indices)]
}

// SetAt stores v at the given multi-index.
func (t *Dense) SetAt(v float64, indices ...int) {
	t.data[t.flatten(indices)] = v
}

// Sum returns the sum of all elements.
func (t *Dense) Sum() float64 { return floats.Sum(t.data) }

// Normalize scales the tensor in place so its elements sum to 1.
// Returns ErrZeroSum if the current sum is zero, negative, NaN, or Inf.
func (t *Dense) Normalize() error {
	sum := t.Sum()
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return fmt.Errorf("%w: sum=%v", ErrZeroSum, sum)
	}
	floats.Scale(1/sum, t.data)
	return nil
}

// Slice fixes the given axis to index and drops it, reducing the rank
// by one. Slicing a rank-1 tensor yields a rank-0 scalar.
func (t *Dense) Slice(axis, index int) (*Dense, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("%w: axis %d of rank %d", ErrAxisRange, axis, len(t.shape))
	}
	if index < 0 || index >= t.shape[axis] {
		return nil, fmt.Errorf("%w: index %d of size %d", ErrIndexRange, index, t.shape[axis])
	}

	outer, inner := 1, 1
	for _, n := range t.shape[:axis] {
		outer *= n
	}
	for _, n := range t.shape[axis+1:] {
		inner *= n
	}

	outShape := slices.Concat(t.shape[:axis], t.shape[axis+1:])
	out := New(outShape...)
	for o := 0; o < outer; o++ {
		src := (o*t.shape[axis] + index) * inner
		copy(out.data[o*inner:(o+1)*inner], t.data[src:src+inner])
	}
	return out, nil
}

// EqualApprox reports whether two tensors have the same shape and
// element-wise equal values within the given absolute tolerance.
func (t *Dense) EqualApprox(o *Dense, tol float64) bool {
	if o == nil || !slices.Equal(t.shape, o.shape) {
		return false
	}
	return floats.EqualApprox(t.data, o.data, tol)
}

// strides returns the row-major stride of each axis.
func (t *Dense) strides() []int {
	st := make([]int, len(t.shape))
	acc := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= t.shape[i]
	}
	return st
}

// flatten converts a multi-index to a flat offset, panicking on
// rank mismatch or out-of-range indices.
func (t *Dense) flatten(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: %d indices for rank %d", len(indices), len(t.shape)))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for axis %d (size %d)", idx, i, t.shape[i]))
		}
		flat = flat*t.shape[i] + idx
	}
	return flat
}
