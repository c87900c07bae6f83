// Copyright 2025 The mdarray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense arrays in mdarray.
//
// The package defines the core types and factory operations:
//   - Tensor[T]: generic dense array with type safety
//   - Dimension: read-only shape/size introspection contract
//   - Shape, DataType: core type definitions
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y := tensor.Ones[float32](tensor.Shape{2, 3})
package tensor

import (
	"github.com/mdarray-ml/mdarray/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint32, uint64.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Dimension is the read-only introspection contract implemented by every
// tensor: Shape (axis extents in order), Numel (element count, the product
// of the shape), and Size (bytes of storage).
type Dimension = tensor.Dimension

// Tensor is a generic dense multi-dimensional array.
//
// T is the element type (float32, float64, int32, int64, uint32, uint64).
// The buffer is contiguous, row-major, and exclusively owned; its length
// always equals the product of the shape.
//
// Example:
//
//	x := tensor.Fill(float32(5), tensor.Shape{4, 16})
//	x.Numel() // 64
type Tensor[T DType] = tensor.Tensor[T]

// Convenience aliases for the common element types.
type (
	// FloatTensor is a tensor of float32 elements.
	FloatTensor = tensor.Tensor[float32]
	// DoubleTensor is a tensor of float64 elements.
	DoubleTensor = tensor.Tensor[float64]
	// IntTensor is a tensor of int32 elements.
	IntTensor = tensor.Tensor[int32]
	// UIntTensor is a tensor of uint32 elements.
	UIntTensor = tensor.Tensor[uint32]
	// LongTensor is a tensor of int64 elements.
	LongTensor = tensor.Tensor[int64]
	// ULongTensor is a tensor of uint64 elements.
	ULongTensor = tensor.Tensor[uint64]
)

// Creation functions

// Fill creates a tensor with every element set to value.
// This is the allocation primitive; Zeros and Ones are defined in terms
// of it. The shape is stored verbatim, order and extents preserved.
//
// Example:
//
//	x := tensor.Fill(float32(5), tensor.Shape{32, 128})
func Fill[T DType](value T, shape Shape) *Tensor[T] {
	return tensor.Fill(value, shape)
}

// Zeros creates a tensor filled with the additive identity of T.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with the multiplicative identity of T.
//
// Example:
//
//	x := tensor.Ones[float32](tensor.Shape{2, 3})
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[float32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T DType](start, end T) *Tensor[T] {
	return tensor.Arange(start, end)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	identity := tensor.Eye[float32](3) // 3x3 identity matrix
func Eye[T DType](n int) *Tensor[T] {
	return tensor.Eye[T](n)
}

// Rand creates a tensor filled with random values from uniform distribution U(0, 1).
// Only works with float types.
func Rand[T DType](shape Shape) *Tensor[T] {
	return tensor.Rand[T](shape)
}

// Randn creates a tensor filled with random values from standard normal distribution N(0, 1).
// Only works with float types.
func Randn[T DType](shape Shape) *Tensor[T] {
	return tensor.Randn[T](shape)
}
