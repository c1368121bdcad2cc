// Copyright 2025 The Proba Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dist

import (
	"math/rand/v2"

	"github.com/proba-ml/proba/internal/dist"
	"github.com/proba-ml/proba/tensor"
)

// Type aliases for public API

// Option configures distribution construction.
type Option = dist.Option

// Shaped is any value with a statically known shape.
type Shaped = dist.Shaped

// ShapeMismatchError reports a sampled value whose shape violates the
// broadcasting law.
type ShapeMismatchError = dist.ShapeMismatchError

// Exponential is the exponential distribution, batched over the shape of its
// rate parameter.
type Exponential[B tensor.Backend] = dist.Exponential[B]

// Normal is the normal (Gaussian) distribution, batched over the broadcast
// shape of its location and scale parameters.
type Normal[B tensor.Backend] = dist.Normal[B]

// Uniform is the continuous uniform distribution on [min, max).
type Uniform[B tensor.Backend] = dist.Uniform[B]

// Poisson is the Poisson distribution, batched over the shape of its rate
// parameter.
type Poisson[B tensor.Backend] = dist.Poisson[B]

// Construction

// WithSource sets the random source used for sampling.
func WithSource(src rand.Source) Option {
	return dist.WithSource(src)
}

// WithSeed seeds a deterministic PCG source for sampling.
func WithSeed(seed uint64) Option {
	return dist.WithSeed(seed)
}

// NewExponential builds an exponential distribution from a rate parameter
// (lambda). The rate may be a bare scalar, a slice, or a tensor.
func NewExponential[B tensor.Backend](rate any, b B, opts ...Option) (*Exponential[B], error) {
	return dist.NewExponential(rate, b, opts...)
}

// NewNormal builds a normal distribution from location and scale parameters.
func NewNormal[B tensor.Backend](loc, scale any, b B, opts ...Option) (*Normal[B], error) {
	return dist.NewNormal(loc, scale, b, opts...)
}

// NewUniform builds a uniform distribution from lower and upper bounds.
func NewUniform[B tensor.Backend](minBound, maxBound any, b B, opts ...Option) (*Uniform[B], error) {
	return dist.NewUniform(minBound, maxBound, b, opts...)
}

// NewPoisson builds a Poisson distribution from a rate parameter (lambda).
func NewPoisson[B tensor.Backend](rate any, b B, opts ...Option) (*Poisson[B], error) {
	return dist.NewPoisson(rate, b, opts...)
}

// Conversion and shape checking

// ToTensor normalizes any supported parameter representation (bare scalar,
// slice, tensor) to a float64 tensor.
func ToTensor[B tensor.Backend](v any, b B) (*tensor.Tensor[float64, B], error) {
	return dist.ToTensor(v, b)
}

// ExpectedSampleShape returns the shape mandated by the broadcasting law:
// n.Concat(batch), sample dimensions outermost.
func ExpectedSampleShape(n, batch tensor.Shape) tensor.Shape {
	return dist.ExpectedSampleShape(n, batch)
}

// VerifySampleShape checks a sampled value against the broadcasting law and
// returns a *ShapeMismatchError on violation.
func VerifySampleShape(got Shaped, n, batch tensor.Shape) error {
	return dist.VerifySampleShape(got, n, batch)
}

// CheckSampleShape draws samples of shape n through sample and verifies the
// broadcasting law for a distribution with the given batch shape.
//
// Example:
//
//	e, _ := dist.NewExponential(2.0, backend)
//	err := dist.CheckSampleShape(e.BatchShape(), tensor.Shape{5}, e.Sample)
func CheckSampleShape[S Shaped](batch, n tensor.Shape, sample func(tensor.Shape) (S, error)) error {
	return dist.CheckSampleShape(batch, n, sample)
}
