package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/proba-ml/proba/internal/tensor"
)

// Exponential is the exponential distribution, batched over the shape of its
// rate parameter. Each element of the rate tensor parameterizes one
// independent distribution.
type Exponential[B tensor.Backend] struct {
	rate  *tensor.Tensor[float64, B]
	units []distuv.Exponential // one per batch element, flat row-major order
}

// NewExponential builds an exponential distribution from a rate parameter
// (lambda). The rate may be a bare scalar, a slice, or a tensor; see ToTensor
// for accepted representations. Every element must be positive and finite.
func NewExponential[B tensor.Backend](rate any, b B, opts ...Option) (*Exponential[B], error) {
	rt, err := ToTensor(rate, b)
	if err != nil {
		return nil, fmt.Errorf("exponential: %w", err)
	}

	o := applyOptions(opts)
	data := rt.Data()
	units := make([]distuv.Exponential, len(data))
	for i, lam := range data {
		if !(lam > 0) || math.IsInf(lam, 1) {
			return nil, fmt.Errorf("exponential: rate must be positive and finite, got %v at element %d", lam, i)
		}
		units[i] = distuv.Exponential{Rate: lam, Src: o.src}
	}

	return &Exponential[B]{rate: rt, units: units}, nil
}

// Rate returns the rate parameter tensor.
func (e *Exponential[B]) Rate() *tensor.Tensor[float64, B] {
	return e.rate
}

// BatchShape returns the shape of the rate parameter.
func (e *Exponential[B]) BatchShape() tensor.Shape {
	return e.rate.Shape()
}

// Sample draws independent samples of shape n from each batch element.
// The result has shape n.Concat(BatchShape()) with sample dimensions
// outermost.
func (e *Exponential[B]) Sample(n tensor.Shape) (*tensor.Tensor[float64, B], error) {
	return sampleBatch(e.rate.Backend(), n, e.BatchShape(), func(i int) float64 {
		return e.units[i].Rand()
	})
}

// LogProb returns the log density at x, element-wise over trailing batch
// dimensions. Values outside the support (x < 0) map to -Inf.
func (e *Exponential[B]) LogProb(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, e.BatchShape(), func(i int, v float64) float64 {
		return e.units[i].LogProb(v)
	})
}

// Prob returns the density at x, element-wise over trailing batch dimensions.
func (e *Exponential[B]) Prob(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, e.BatchShape(), func(i int, v float64) float64 {
		return e.units[i].Prob(v)
	})
}

// CDF returns the cumulative distribution function at x, element-wise over
// trailing batch dimensions.
func (e *Exponential[B]) CDF(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, e.BatchShape(), func(i int, v float64) float64 {
		return e.units[i].CDF(v)
	})
}

// Mean returns 1/lambda per batch element.
func (e *Exponential[B]) Mean() *tensor.Tensor[float64, B] {
	return e.rate.Recip()
}

// Variance returns 1/lambda^2 per batch element.
func (e *Exponential[B]) Variance() *tensor.Tensor[float64, B] {
	return e.rate.Mul(e.rate).Recip()
}

// StdDev returns 1/lambda per batch element.
func (e *Exponential[B]) StdDev() *tensor.Tensor[float64, B] {
	return e.rate.Recip()
}

// Entropy returns 1 - ln(lambda) per batch element.
func (e *Exponential[B]) Entropy() *tensor.Tensor[float64, B] {
	return e.rate.Log().Neg().AddScalar(1)
}
