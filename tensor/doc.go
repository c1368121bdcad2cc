// Copyright 2025 The Proba Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensors with static shapes for proba.
//
// # Overview
//
// Tensors are the shape-bearing values that distributions are parameterized
// by and that sampling produces. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Shape algebra: concatenation, NumPy-style broadcasting, strides
//   - A Backend interface for element-wise compute
//
// # Basic Usage
//
//	import (
//	    "github.com/proba-ml/proba/backend/cpu"
//	    "github.com/proba-ml/proba/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float64](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Shapes
//
// A Shape is an ordered sequence of positive dimension sizes; the empty
// shape denotes a scalar. Shape is static metadata: it is known without
// realizing element values. Concat implements the sampling shape rule
// (sample dimensions outermost), BroadcastShapes the NumPy alignment rules.
//
// # Supported Data Types
//
// The tensor package supports float32, float64, int64 and bool via the
// DType constraint. Distributions operate on float64.
package tensor
