package tensor

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		shape    []int
		wantRank int
		wantSize int
	}{
		{name: "Scalar", shape: nil, wantRank: 0, wantSize: 1},
		{name: "Vector", shape: []int{4}, wantRank: 1, wantSize: 4},
		{name: "Matrix", shape: []int{2, 3}, wantRank: 2, wantSize: 6},
		{name: "Cube", shape: []int{2, 2, 2}, wantRank: 3, wantSize: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.shape...)
			if got := d.Rank(); got != tt.wantRank {
				t.Errorf("Rank() = %d, want %d", got, tt.wantRank)
			}
			if got := d.Size(); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
			for i, v := range d.Data() {
				if v != 0 {
					t.Errorf("element %d = %v, want 0", i, v)
				}
			}
		})
	}
}

func TestNewPanicsOnBadDimension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(2, 0) should panic")
		}
	}()
	New(2, 0)
}

func TestNewWithData(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		shape   []int
		wantErr bool
	}{
		{name: "Matches", data: []float64{1, 2, 3, 4, 5, 6}, shape: []int{2, 3}},
		{name: "Scalar", data: []float64{7}, shape: nil},
		{name: "TooShort", data: []float64{1, 2}, shape: []int{2, 3}, wantErr: true},
		{name: "TooLong", data: []float64{1, 2, 3}, shape: []int{2}, wantErr: true},
		{name: "ZeroDim", data: nil, shape: []int{0}, wantErr: true},
		{name: "NegativeDim", data: []float64{1}, shape: []int{-1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewWithData(tt.data, tt.shape...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidShape) {
					t.Errorf("err = %v, want ErrInvalidShape", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewWithData: %v", err)
			}
			if !slices.Equal(d.Shape(), tt.shape) {
				t.Errorf("Shape() = %v, want %v", d.Shape(), tt.shape)
			}
		})
	}
}

func TestAtSetAt(t *testing.T) {
	d, err := NewWithData([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("NewWithData: %v", err)
	}

	// Row-major layout: element (i, j) lives at i*3 + j.
	if got := d.At(0, 0); got != 1 {
		t.Errorf("At(0,0) = %v, want 1", got)
	}
	if got := d.At(0, 2); got != 3 {
		t.Errorf("At(0,2) = %v, want 3", got)
	}
	if got := d.At(1, 1); got != 5 {
		t.Errorf("At(1,1) = %v, want 5", got)
	}

	d.SetAt(42, 1, 2)
	if got := d.At(1, 2); got != 42 {
		t.Errorf("At(1,2) after SetAt = %v, want 42", got)
	}
}

func TestAtPanicsOnRankMismatch(t *testing.T) {
	d := New(2, 3)
	defer func() {
		if recover() == nil {
			t.Error("At with wrong index count should panic")
		}
	}()
	d.At(1)
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Vector(0.25, 0.75)
	cp := orig.Clone()

	cp.SetAt(99, 0)
	if orig.At(0) != 0.25 {
		t.Error("mutating a clone should not affect the original")
	}
}

func TestSumAndNormalize(t *testing.T) {
	d := Vector(2, 3, 5)
	if got := d.Sum(); got != 10 {
		t.Errorf("Sum() = %v, want 10", got)
	}

	if err := d.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []float64{0.2, 0.3, 0.5}
	for i, v := range d.Data() {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Errorf("element %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		data []float64
	}{
		{name: "AllZero", data: []float64{0, 0, 0}},
		{name: "NegativeSum", data: []float64{1, -3}},
		{name: "NaN", data: []float64{math.NaN(), 1}},
		{name: "Inf", data: []float64{math.Inf(1), 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Vector(tt.data...)
			if err := d.Normalize(); !errors.Is(err, ErrZeroSum) {
				t.Errorf("err = %v, want ErrZeroSum", err)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	// 2x3 matrix:
	//   1 2 3
	//   4 5 6
	d, err := NewWithData([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("NewWithData: %v", err)
	}

	tests := []struct {
		name      string
		axis, idx int
		wantShape []int
		wantData  []float64
	}{
		{name: "Row0", axis: 0, idx: 0, wantShape: []int{3}, wantData: []float64{1, 2, 3}},
		{name: "Row1", axis: 0, idx: 1, wantShape: []int{3}, wantData: []float64{4, 5, 6}},
		{name: "Col0", axis: 1, idx: 0, wantShape: []int{2}, wantData: []float64{1, 4}},
		{name: "Col2", axis: 1, idx: 2, wantShape: []int{2}, wantData: []float64{3, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Slice(tt.axis, tt.idx)
			if err != nil {
				t.Fatalf("Slice: %v", err)
			}
			if !slices.Equal(got.Shape(), tt.wantShape) {
				t.Errorf("shape = %v, want %v", got.Shape(), tt.wantShape)
			}
			if !slices.Equal(got.Data(), tt.wantData) {
				t.Errorf("data = %v, want %v", got.Data(), tt.wantData)
			}
		})
	}
}

func TestSliceCube(t *testing.T) {
	d, err := NewWithData([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2, 2, 2)
	if err != nil {
		t.Fatalf("NewWithData: %v", err)
	}

	// Fixing the middle axis interleaves outer and inner strides.
	got, err := d.Slice(1, 1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if !slices.Equal(got.Shape(), []int{2, 2}) {
		t.Errorf("shape = %v, want [2 2]", got.Shape())
	}
	if !slices.Equal(got.Data(), []float64{3, 4, 7, 8}) {
		t.Errorf("data = %v, want [3 4 7 8]", got.Data())
	}
}

func TestSliceToScalar(t *testing.T) {
	got, err := Vector(0.3, 0.7).Slice(0, 1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if got.Rank() != 0 {
		t.Errorf("Rank() = %d, want 0", got.Rank())
	}
	if got.Data()[0] != 0.7 {
		t.Errorf("value = %v, want 0.7", got.Data()[0])
	}
}

func TestSliceErrors(t *testing.T) {
	d := New(2, 3)

	if _, err := d.Slice(2, 0); !errors.Is(err, ErrAxisRange) {
		t.Errorf("axis out of range: err = %v, want ErrAxisRange", err)
	}
	if _, err := d.Slice(-1, 0); !errors.Is(err, ErrAxisRange) {
		t.Errorf("negative axis: err = %v, want ErrAxisRange", err)
	}
	if _, err := d.Slice(1, 3); !errors.Is(err, ErrIndexRange) {
		t.Errorf("index out of range: err = %v, want ErrIndexRange", err)
	}
	if _, err := d.Slice(0, -1); !errors.Is(err, ErrIndexRange) {
		t.Errorf("negative index: err = %v, want ErrIndexRange", err)
	}
}

func TestEqualApprox(t *testing.T) {
	a := Vector(0.1, 0.9)
	b := Vector(0.1+1e-12, 0.9-1e-12)
	c := Vector(0.2, 0.8)

	if !a.EqualApprox(b, 1e-9) {
		t.Error("nearly equal tensors should compare equal")
	}
	if a.EqualApprox(c, 1e-9) {
		t.Error("distinct tensors should not compare equal")
	}
	if a.EqualApprox(nil, 1e-9) {
		t.Error("nil should not compare equal")
	}
	if a.EqualApprox(New(2, 1), 1e-9) {
		t.Error("shape mismatch should not compare equal")
	}
}
