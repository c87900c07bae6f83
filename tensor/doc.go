// Copyright 2025 The mdarray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense multi-dimensional numeric arrays for mdarray.
//
// # Overview
//
// A tensor is a flat contiguous buffer of numeric elements addressed by an
// explicit shape. This package provides:
//   - Generic type-safe tensors (Tensor[T])
//   - Shape/size introspection (the Dimension contract)
//   - Factory construction (Fill, Zeros, Ones, ...)
//
// # Basic Usage
//
//	import "github.com/mdarray-ml/mdarray/tensor"
//
//	func main() {
//	    x := tensor.Zeros[float32](tensor.Shape{4, 16})
//	    y := tensor.Fill(float32(5), tensor.Shape{4, 16})
//
//	    x.Numel() // 64
//	    x.Size()  // 256 bytes
//	    y.At(1, 2)
//	}
//
// # Supported Element Types
//
// The DType constraint admits the numeric types with well-defined additive
// and multiplicative identities:
//   - float32, float64
//   - int32, int64
//   - uint32, uint64
//
// Convenience aliases name the common instantiations: FloatTensor,
// DoubleTensor, IntTensor, UIntTensor, LongTensor, ULongTensor.
//
// # Shape Conventions
//
// Shapes are row-major: the first entry is the outermost axis. An empty
// shape denotes a scalar-like tensor holding exactly one element (the
// empty-product convention), and a zero extent anywhere yields a
// well-formed empty tensor:
//
//	tensor.Fill(1.5, tensor.Shape{})        // numel 1
//	tensor.Fill(1.5, tensor.Shape{4, 0, 3}) // numel 0, size 0
//
// # Ownership
//
// Every tensor exclusively owns its buffer; construction is the only way
// to obtain one and no mutation surface is defined. A shape whose element
// count overflows int is fatal: there is no partial construction path.
package tensor
