package tensor

import (
	"errors"
	"slices"
	"testing"
)

func mustNew(t *testing.T, data []float64, shape ...int) *Dense {
	t.Helper()
	d, err := NewWithData(data, shape...)
	if err != nil {
		t.Fatalf("NewWithData: %v", err)
	}
	return d
}

func TestContract(t *testing.T) {
	tests := []struct {
		name      string
		output    []int
		operands  func(t *testing.T) []Operand
		wantShape []int
		wantData  []float64
	}{
		{
			name:   "MatrixVectorProduct",
			output: []int{0},
			operands: func(t *testing.T) []Operand {
				return []Operand{
					{Tensor: mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3), Labels: []int{0, 1}},
					{Tensor: Vector(1, 10, 100), Labels: []int{1}},
				}
			},
			wantShape: []int{2},
			wantData:  []float64{321, 654},
		},
		{
			name:   "Transpose",
			output: []int{1, 0},
			operands: func(t *testing.T) []Operand {
				return []Operand{
					{Tensor: mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3), Labels: []int{0, 1}},
				}
			},
			wantShape: []int{3, 2},
			wantData:  []float64{1, 4, 2, 5, 3, 6},
		},
		{
			name:   "OuterProduct",
			output: []int{0, 1},
			operands: func(t *testing.T) []Operand {
				return []Operand{
					{Tensor: Vector(1, 2), Labels: []int{0}},
					{Tensor: Vector(3, 4, 5), Labels: []int{1}},
				}
			},
			wantShape: []int{2, 3},
			wantData:  []float64{3, 4, 5, 6, 8, 10},
		},
		{
			name:   "DotProduct",
			output: nil,
			operands: func(t *testing.T) []Operand {
				return []Operand{
					{Tensor: Vector(1, 2, 3), Labels: []int{7}},
					{Tensor: Vector(4, 5, 6), Labels: []int{7}},
				}
			},
			wantShape: nil,
			wantData:  []float64{32},
		},
		{
			name:   "FullSum",
			output: nil,
			operands: func(t *testing.T) []Operand {
				return []Operand{
					{Tensor: mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3), Labels: []int{0, 1}},
				}
			},
			wantShape: nil,
			wantData:  []float64{21},
		},
		{
			name: "PriorTimesConditional",
			// Sum out label 0: a prior over one variable applied to a
			// conditional table yields the child's marginal.
			output: []int{1},
			operands: func(t *testing.T) []Operand {
				return []Operand{
					{Tensor: Vector(0.5, 0.5), Labels: []int{0}},
					{Tensor: mustNew(t, []float64{0.9, 0.2, 0.1, 0.8}, 2, 2), Labels: []int{1, 0}},
				}
			},
			wantShape: []int{2},
			wantData:  []float64{0.55, 0.45},
		},
		{
			name: "SparseLabels",
			// Labels need not be contiguous or small.
			output: []int{1000},
			operands: func(t *testing.T) []Operand {
				return []Operand{
					{Tensor: Vector(2, 3), Labels: []int{1000}},
					{Tensor: Vector(10, 1), Labels: []int{-5}},
				}
			},
			wantShape: []int{2},
			wantData:  []float64{22, 33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Contract(tt.output, tt.operands(t)...)
			if err != nil {
				t.Fatalf("Contract: %v", err)
			}
			if !slices.Equal(got.Shape(), tt.wantShape) {
				t.Errorf("shape = %v, want %v", got.Shape(), tt.wantShape)
			}
			want := mustNew(t, tt.wantData, tt.wantShape...)
			if !got.EqualApprox(want, 1e-12) {
				t.Errorf("data = %v, want %v", got.Data(), tt.wantData)
			}
		})
	}
}

func TestContractErrors(t *testing.T) {
	tests := []struct {
		name     string
		output   []int
		operands []Operand
		wantErr  error
	}{
		{
			name:    "NoOperands",
			wantErr: ErrNoOperands,
		},
		{
			name:     "NilTensor",
			operands: []Operand{{Tensor: nil, Labels: []int{0}}},
			wantErr:  ErrLabelCount,
		},
		{
			name:     "LabelCountMismatch",
			operands: []Operand{{Tensor: Vector(1, 2), Labels: []int{0, 1}}},
			wantErr:  ErrLabelCount,
		},
		{
			name: "ConflictingSizes",
			operands: []Operand{
				{Tensor: Vector(1, 2), Labels: []int{0}},
				{Tensor: Vector(1, 2, 3), Labels: []int{0}},
			},
			wantErr: ErrLabelSize,
		},
		{
			name:     "UnknownOutputLabel",
			output:   []int{9},
			operands: []Operand{{Tensor: Vector(1, 2), Labels: []int{0}}},
			wantErr:  ErrUnknownLabel,
		},
		{
			name:   "DuplicateOutputLabel",
			output: []int{0, 0},
			operands: []Operand{
				{Tensor: mustNewErrCase([]float64{1, 2, 3, 4}, 2, 2), Labels: []int{0, 1}},
			},
			wantErr: ErrDuplicateOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Contract(tt.output, tt.operands...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func mustNewErrCase(data []float64, shape ...int) *Dense {
	d, err := NewWithData(data, shape...)
	if err != nil {
		panic(err)
	}
	return d
}

func TestContractLeavesOperandsUntouched(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(4, 5, 6)
	before := slices.Clone(a.Data())

	if _, err := Contract(nil, Operand{Tensor: a, Labels: []int{0}}, Operand{Tensor: b, Labels: []int{0}}); err != nil {
		t.Fatalf("Contract: %v", err)
	}
	if !slices.Equal(a.Data(), before) {
		t.Error("Contract must not modify its operands")
	}
}
