package dist

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/proba-ml/proba/internal/tensor"
)

// Uniform is the continuous uniform distribution on [min, max), batched over
// the broadcast shape of its bound parameters.
type Uniform[B tensor.Backend] struct {
	min   *tensor.Tensor[float64, B] // expanded to the common batch shape
	max   *tensor.Tensor[float64, B] // expanded to the common batch shape
	batch tensor.Shape
	units []distuv.Uniform
}

// NewUniform builds a uniform distribution from lower and upper bounds.
// The bounds may be bare scalars, slices, or tensors, and are aligned by
// NumPy-style broadcasting. Every min element must be strictly below its max.
func NewUniform[B tensor.Backend](minBound, maxBound any, b B, opts ...Option) (*Uniform[B], error) {
	lo, err := ToTensor(minBound, b)
	if err != nil {
		return nil, fmt.Errorf("uniform: min: %w", err)
	}
	hi, err := ToTensor(maxBound, b)
	if err != nil {
		return nil, fmt.Errorf("uniform: max: %w", err)
	}

	lo, hi, batch, err := broadcastParams(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("uniform: min and max are not broadcastable: %w", err)
	}

	o := applyOptions(opts)
	los := lo.Data()
	his := hi.Data()
	units := make([]distuv.Uniform, len(los))
	for i := range units {
		if !(los[i] < his[i]) {
			return nil, fmt.Errorf("uniform: min must be below max, got [%v, %v) at element %d", los[i], his[i], i)
		}
		units[i] = distuv.Uniform{Min: los[i], Max: his[i], Src: o.src}
	}

	return &Uniform[B]{min: lo, max: hi, batch: batch, units: units}, nil
}

// Min returns the lower-bound tensor, expanded to the batch shape.
func (u *Uniform[B]) Min() *tensor.Tensor[float64, B] {
	return u.min
}

// Max returns the upper-bound tensor, expanded to the batch shape.
func (u *Uniform[B]) Max() *tensor.Tensor[float64, B] {
	return u.max
}

// BatchShape returns the broadcast shape of the parameters.
func (u *Uniform[B]) BatchShape() tensor.Shape {
	return u.batch
}

// Sample draws independent samples of shape n from each batch element.
// The result has shape n.Concat(BatchShape()) with sample dimensions
// outermost.
func (u *Uniform[B]) Sample(n tensor.Shape) (*tensor.Tensor[float64, B], error) {
	return sampleBatch(u.min.Backend(), n, u.batch, func(i int) float64 {
		return u.units[i].Rand()
	})
}

// LogProb returns the log density at x, element-wise over trailing batch
// dimensions.
func (u *Uniform[B]) LogProb(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, u.batch, func(i int, v float64) float64 {
		return u.units[i].LogProb(v)
	})
}

// Prob returns the density at x, element-wise over trailing batch dimensions.
func (u *Uniform[B]) Prob(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, u.batch, func(i int, v float64) float64 {
		return u.units[i].Prob(v)
	})
}

// CDF returns the cumulative distribution function at x, element-wise over
// trailing batch dimensions.
func (u *Uniform[B]) CDF(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, u.batch, func(i int, v float64) float64 {
		return u.units[i].CDF(v)
	})
}

// Mean returns (min + max) / 2 per batch element.
func (u *Uniform[B]) Mean() *tensor.Tensor[float64, B] {
	return u.min.Add(u.max).MulScalar(0.5)
}

// Variance returns (max - min)^2 / 12 per batch element.
func (u *Uniform[B]) Variance() *tensor.Tensor[float64, B] {
	d := u.max.Sub(u.min)
	return d.Mul(d).MulScalar(1.0 / 12.0)
}

// StdDev returns the square root of the variance per batch element.
func (u *Uniform[B]) StdDev() *tensor.Tensor[float64, B] {
	return u.Variance().Sqrt()
}
