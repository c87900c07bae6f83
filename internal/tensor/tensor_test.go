package tensor

import (
	"math"
	"testing"
)

// Test helpers

func assertEqualFloat32(t *testing.T, expected, actual float32, msg string) {
	t.Helper()
	if math.Abs(float64(expected-actual)) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint32, 4},
		{Uint64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint32, "uint32"},
		{Uint64, "uint64"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := inferDataType(int64(0)); dt != Int64 {
		t.Errorf("inferDataType(int64) = %v, want Int64", dt)
	}
	if dt := inferDataType(uint32(0)); dt != Uint32 {
		t.Errorf("inferDataType(uint32) = %v, want Uint32", dt)
	}
	if dt := inferDataType(uint64(0)); dt != Uint64 {
		t.Errorf("inferDataType(uint64) = %v, want Uint64", dt)
	}
}

// Tensor Tests

func TestTensorDimension(t *testing.T) {
	tensor := Fill(float32(5), Shape{4, 16})

	assertEqualShape(t, Shape{4, 16}, tensor.Shape(), "Fill shape")

	if got := tensor.Numel(); got != 64 {
		t.Errorf("Numel() = %d, want 64", got)
	}
	if got := tensor.Size(); got != 256 {
		t.Errorf("Size() = %d, want 256", got)
	}
	if got := tensor.DType(); got != Float32 {
		t.Errorf("DType() = %v, want Float32", got)
	}
}

func TestTensorAt(t *testing.T) {
	tensor, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	assertEqualFloat32(t, 1, tensor.At(0, 0), "At(0,0)")
	assertEqualFloat32(t, 3, tensor.At(0, 2), "At(0,2)")
	assertEqualFloat32(t, 4, tensor.At(1, 0), "At(1,0)")
	assertEqualFloat32(t, 6, tensor.At(1, 2), "At(1,2)")
}

func TestTensorAtOutOfBounds(t *testing.T) {
	tensor := Zeros[float32](Shape{2, 3})

	defer func() {
		if recover() == nil {
			t.Error("At should panic on out-of-bounds index")
		}
	}()
	tensor.At(2, 0)
}

func TestTensorAtWrongArity(t *testing.T) {
	tensor := Zeros[float32](Shape{2, 3})

	defer func() {
		if recover() == nil {
			t.Error("At should panic on wrong number of indices")
		}
	}()
	tensor.At(1)
}

func TestTensorItem(t *testing.T) {
	scalar := Fill(float64(3.5), Shape{})
	if got := scalar.Item(); got != 3.5 {
		t.Errorf("Item() = %v, want 3.5", got)
	}
}

func TestTensorItemNonScalar(t *testing.T) {
	tensor := Zeros[float32](Shape{2})

	defer func() {
		if recover() == nil {
			t.Error("Item should panic for non-scalar tensors")
		}
	}()
	tensor.Item()
}

func TestTensorClone(t *testing.T) {
	original := Fill(int32(7), Shape{2, 2})
	clone := original.Clone()

	assertEqualShape(t, original.Shape(), clone.Shape(), "Clone shape")

	// Clone owns its buffer: mutating it must not touch the original.
	clone.Data()[0] = 99
	if original.Data()[0] != 7 {
		t.Error("mutating clone modified the original buffer")
	}
}

func TestTensorString(t *testing.T) {
	tensor := Zeros[float32](Shape{4, 16})
	if got := tensor.String(); got != "Tensor[float32][4 16]" {
		t.Errorf("String() = %q, want %q", got, "Tensor[float32][4 16]")
	}
}
