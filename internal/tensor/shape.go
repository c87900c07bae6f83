package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Shape represents the dimensions of a tensor.
// Axis order is significant: Shape{2, 3, 4} is a 3D tensor whose
// outermost axis has 2 elements (row-major convention).
type Shape []int

// NumElements returns the total number of elements in the tensor:
// the product of all extents. An empty shape is scalar-like and has
// 1 element (empty-product convention); any zero extent yields 0.
//
// Panics if the product overflows int. There is no recovery path for
// a tensor that cannot be addressed, so overflow is fatal.
func (s Shape) NumElements() int {
	// A zero extent anywhere makes the count 0 regardless of the other
	// extents, so it must be found before the overflow check can fire.
	for _, dim := range s {
		if dim == 0 {
			return 0
		}
	}

	n := 1
	for _, dim := range s {
		if n > math.MaxInt/dim {
			panic(fmt.Sprintf("shape %v: element count overflows int", []int(s)))
		}
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (no negative extents).
// Zero extents are valid and denote an empty tensor.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String returns the shape as "[2 3 4]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", dim)
	}
	b.WriteByte(']')
	return b.String()
}
