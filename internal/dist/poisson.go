package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/proba-ml/proba/internal/tensor"
)

// Poisson is the Poisson distribution, batched over the shape of its rate
// parameter. Samples are non-negative integer counts stored as float64.
type Poisson[B tensor.Backend] struct {
	rate  *tensor.Tensor[float64, B]
	units []distuv.Poisson
}

// NewPoisson builds a Poisson distribution from a rate parameter (lambda).
// The rate may be a bare scalar, a slice, or a tensor; every element must be
// positive and finite.
func NewPoisson[B tensor.Backend](rate any, b B, opts ...Option) (*Poisson[B], error) {
	rt, err := ToTensor(rate, b)
	if err != nil {
		return nil, fmt.Errorf("poisson: %w", err)
	}

	o := applyOptions(opts)
	data := rt.Data()
	units := make([]distuv.Poisson, len(data))
	for i, lam := range data {
		if !(lam > 0) || math.IsInf(lam, 1) {
			return nil, fmt.Errorf("poisson: rate must be positive and finite, got %v at element %d", lam, i)
		}
		units[i] = distuv.Poisson{Lambda: lam, Src: o.src}
	}

	return &Poisson[B]{rate: rt, units: units}, nil
}

// Rate returns the rate parameter tensor.
func (p *Poisson[B]) Rate() *tensor.Tensor[float64, B] {
	return p.rate
}

// BatchShape returns the shape of the rate parameter.
func (p *Poisson[B]) BatchShape() tensor.Shape {
	return p.rate.Shape()
}

// Sample draws independent samples of shape n from each batch element.
// The result has shape n.Concat(BatchShape()) with sample dimensions
// outermost.
func (p *Poisson[B]) Sample(n tensor.Shape) (*tensor.Tensor[float64, B], error) {
	return sampleBatch(p.rate.Backend(), n, p.BatchShape(), func(i int) float64 {
		return p.units[i].Rand()
	})
}

// LogProb returns the log probability mass at x, element-wise over trailing
// batch dimensions. Non-integer or negative values map to -Inf.
func (p *Poisson[B]) LogProb(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, p.BatchShape(), func(i int, v float64) float64 {
		return p.units[i].LogProb(v)
	})
}

// Prob returns the probability mass at x, element-wise over trailing batch
// dimensions.
func (p *Poisson[B]) Prob(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, p.BatchShape(), func(i int, v float64) float64 {
		return p.units[i].Prob(v)
	})
}

// CDF returns the cumulative distribution function at x, element-wise over
// trailing batch dimensions.
func (p *Poisson[B]) CDF(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, p.BatchShape(), func(i int, v float64) float64 {
		return p.units[i].CDF(v)
	})
}

// Mean returns lambda per batch element.
func (p *Poisson[B]) Mean() *tensor.Tensor[float64, B] {
	return p.rate.Clone()
}

// Variance returns lambda per batch element.
func (p *Poisson[B]) Variance() *tensor.Tensor[float64, B] {
	return p.rate.Clone()
}

// StdDev returns sqrt(lambda) per batch element.
func (p *Poisson[B]) StdDev() *tensor.Tensor[float64, B] {
	return p.rate.Sqrt()
}
