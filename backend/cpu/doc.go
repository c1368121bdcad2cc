// Copyright 2025 The Proba Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure-Go CPU backend for proba tensors.
//
// The CPU backend implements every tensor.Backend operation in plain Go,
// with chunked parallelism for large element-wise kernels.
package cpu
