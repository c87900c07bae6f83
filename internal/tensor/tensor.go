package tensor

import "fmt"

// Dimension is the read-only shape introspection contract implemented
// by every array-like entity.
type Dimension interface {
	// Shape returns the axis extents exactly as stored, in axis order.
	Shape() Shape
	// Numel returns the total number of elements (product of the shape).
	Numel() int
	// Size returns the storage footprint in bytes.
	Size() int
}

// Verify that Tensor implements Dimension.
var _ Dimension = (*Tensor[float32])(nil)

// Tensor is a dense multi-dimensional array of element type T.
// It owns a flat contiguous buffer whose length always equals the
// product of its shape. Tensors are constructed via the factory
// functions (Fill, Zeros, Ones, ...) and carry no mutation surface.
//
// Example:
//
//	t := tensor.Fill(float32(5), Shape{4, 16})
//	t.Numel() // 64
type Tensor[T DType] struct {
	data  []T
	shape Shape
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Numel returns the total number of elements.
func (t *Tensor[T]) Numel() int {
	return len(t.data)
}

// Size returns the memory used by the tensor's buffer in bytes.
func (t *Tensor[T]) Size() int {
	var dummy T
	return len(t.data) * inferDataType(dummy).Size()
}

// DType returns the tensor's runtime data type.
func (t *Tensor[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Data returns the tensor's backing buffer in row-major order.
// The slice is a direct view of the tensor's memory; callers must
// treat it as read-only.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Ones[float32](Shape{3, 4})
//	v := t.At(1, 2) // row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}

	return t.data[offset]
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if len(t.shape) != 0 || len(t.data) != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Clone creates a deep copy of the tensor.
// The copy owns its buffer exclusively, like every tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		data:  data,
		shape: t.shape.Clone(),
	}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}
