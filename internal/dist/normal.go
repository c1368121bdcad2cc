package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/proba-ml/proba/internal/tensor"
)

// Normal is the normal (Gaussian) distribution, batched over the broadcast
// shape of its location and scale parameters.
type Normal[B tensor.Backend] struct {
	loc   *tensor.Tensor[float64, B] // expanded to the common batch shape
	scale *tensor.Tensor[float64, B] // expanded to the common batch shape
	batch tensor.Shape
	units []distuv.Normal
}

// NewNormal builds a normal distribution from location (mean) and scale
// (standard deviation) parameters. The parameters may be bare scalars,
// slices, or tensors, and are aligned by NumPy-style broadcasting. Every
// scale element must be positive and finite.
func NewNormal[B tensor.Backend](loc, scale any, b B, opts ...Option) (*Normal[B], error) {
	lt, err := ToTensor(loc, b)
	if err != nil {
		return nil, fmt.Errorf("normal: loc: %w", err)
	}
	st, err := ToTensor(scale, b)
	if err != nil {
		return nil, fmt.Errorf("normal: scale: %w", err)
	}

	lt, st, batch, err := broadcastParams(lt, st)
	if err != nil {
		return nil, fmt.Errorf("normal: loc and scale are not broadcastable: %w", err)
	}

	o := applyOptions(opts)
	mus := lt.Data()
	sigmas := st.Data()
	units := make([]distuv.Normal, len(mus))
	for i := range units {
		if !(sigmas[i] > 0) || math.IsInf(sigmas[i], 1) {
			return nil, fmt.Errorf("normal: scale must be positive and finite, got %v at element %d", sigmas[i], i)
		}
		units[i] = distuv.Normal{Mu: mus[i], Sigma: sigmas[i], Src: o.src}
	}

	return &Normal[B]{loc: lt, scale: st, batch: batch, units: units}, nil
}

// Loc returns the location parameter tensor, expanded to the batch shape.
func (n *Normal[B]) Loc() *tensor.Tensor[float64, B] {
	return n.loc
}

// Scale returns the scale parameter tensor, expanded to the batch shape.
func (n *Normal[B]) Scale() *tensor.Tensor[float64, B] {
	return n.scale
}

// BatchShape returns the broadcast shape of the parameters.
func (n *Normal[B]) BatchShape() tensor.Shape {
	return n.batch
}

// Sample draws independent samples of shape s from each batch element.
// The result has shape s.Concat(BatchShape()) with sample dimensions
// outermost.
func (n *Normal[B]) Sample(s tensor.Shape) (*tensor.Tensor[float64, B], error) {
	return sampleBatch(n.loc.Backend(), s, n.batch, func(i int) float64 {
		return n.units[i].Rand()
	})
}

// LogProb returns the log density at x, element-wise over trailing batch
// dimensions.
func (n *Normal[B]) LogProb(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, n.batch, func(i int, v float64) float64 {
		return n.units[i].LogProb(v)
	})
}

// Prob returns the density at x, element-wise over trailing batch dimensions.
func (n *Normal[B]) Prob(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, n.batch, func(i int, v float64) float64 {
		return n.units[i].Prob(v)
	})
}

// CDF returns the cumulative distribution function at x, element-wise over
// trailing batch dimensions.
func (n *Normal[B]) CDF(x *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return mapBatch(x, n.batch, func(i int, v float64) float64 {
		return n.units[i].CDF(v)
	})
}

// Mean returns the location per batch element.
func (n *Normal[B]) Mean() *tensor.Tensor[float64, B] {
	return n.loc.Clone()
}

// Variance returns scale^2 per batch element.
func (n *Normal[B]) Variance() *tensor.Tensor[float64, B] {
	return n.scale.Mul(n.scale)
}

// StdDev returns the scale per batch element.
func (n *Normal[B]) StdDev() *tensor.Tensor[float64, B] {
	return n.scale.Clone()
}
