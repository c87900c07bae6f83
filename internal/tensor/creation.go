package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// Fill creates a tensor with every element set to value.
// The shape is stored verbatim: axis order and extents are preserved
// exactly as given. An empty shape yields a scalar-like tensor with a
// single element; a zero extent yields an empty buffer.
//
// Fill is the single allocation primitive; Zeros and Ones are defined
// in terms of it.
//
// Example:
//
//	t := tensor.Fill(float32(5), Shape{32, 128})
func Fill[T DType](value T, shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(err) // negative extents are a programming error
	}

	numel := shape.NumElements()
	data := make([]T, numel)
	for i := range data {
		data[i] = value
	}

	return &Tensor[T]{
		data:  data,
		shape: shape.Clone(),
	}
}

// Zeros creates a tensor filled with the additive identity of T.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	var zero T
	return Fill(zero, shape)
}

// Ones creates a tensor filled with the multiplicative identity of T.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3})
func Ones[T DType](shape Shape) *Tensor[T] {
	return Fill(T(1), shape)
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's own buffer.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := Zeros[T](shape)
	copy(t.data, data)
	return t, nil
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	t := tensor.Arange[int32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T DType](start, end T) *Tensor[T] {
	if end <= start {
		panic("end must be greater than start")
	}

	t := Zeros[T](Shape{int(end - start)})
	for i := range t.data {
		t.data[i] = start + T(i)
	}
	return t
}

// Eye creates a 2D identity matrix of size n×n.
//
// Example:
//
//	t := tensor.Eye[float32](3) // 3x3 identity matrix
func Eye[T DType](n int) *Tensor[T] {
	t := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		t.data[i*n+i] = T(1)
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T DType](shape Shape) *Tensor[T] {
	t := Zeros[T](shape)

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(t.data).([]float32)
		for i := range dataF32 {
			dataF32[i] = float32(rand.Float64()) //nolint:gosec // G404: math/rand is intentional for reproducibility
		}
	case float64:
		dataF64 := any(t.data).([]float64)
		for i := range dataF64 {
			dataF64[i] = rand.Float64() //nolint:gosec // G404: math/rand is intentional for reproducibility
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1), using the Box-Muller transform.
// Only works with float types.
func Randn[T DType](shape Shape) *Tensor[T] {
	t := Zeros[T](shape)

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(t.data).([]float32)
		for i := 0; i < len(dataF32); i += 2 {
			z0, z1 := boxMuller()
			dataF32[i] = float32(z0)
			if i+1 < len(dataF32) {
				dataF32[i+1] = float32(z1)
			}
		}
	case float64:
		dataF64 := any(t.data).([]float64)
		for i := 0; i < len(dataF64); i += 2 {
			z0, z1 := boxMuller()
			dataF64[i] = z0
			if i+1 < len(dataF64) {
				dataF64[i+1] = z1
			}
		}
	default:
		panic("Randn only supports float32 and float64 types")
	}
	return t
}

// boxMuller draws two independent samples from N(0, 1).
func boxMuller() (float64, float64) {
	u1 := rand.Float64() //nolint:gosec // G404: math/rand is intentional for reproducibility
	u2 := rand.Float64() //nolint:gosec // G404: math/rand is intentional for reproducibility
	z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
	return z0, z1
}
