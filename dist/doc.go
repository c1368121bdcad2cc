// Copyright 2025 The Proba Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dist provides batched parametric probability distributions over
// proba tensors.
//
// # Overview
//
// A distribution's parameters may themselves be tensors; their broadcast
// shape is the distribution's batch shape, with one independent distribution
// per batch element. Parameters are accepted as bare scalars, slices, or
// tensors through a single conversion boundary (ToTensor).
//
// # The broadcasting law
//
// Sampling obeys one invariant: drawing samples of shape n from a
// distribution with batch shape b yields a tensor of shape n.Concat(b),
// sample dimensions outermost. The shape is static metadata, independent of
// the drawn values. CheckSampleShape verifies the law for any sampler and
// reports violations as *ShapeMismatchError.
//
// # Basic Usage
//
//	backend := cpu.New()
//
//	e, err := dist.NewExponential([]float64{2.0, 8.0}, backend, dist.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	x, err := e.Sample(tensor.Shape{10}) // shape [10, 2]
package dist
