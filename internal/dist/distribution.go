// Package dist implements batched parametric probability distributions over
// proba tensors.
//
// A distribution's parameters may themselves be tensors; their (broadcast)
// shape is the distribution's batch shape, one independent distribution per
// batch element. Sampling follows the broadcasting law: drawing samples of
// shape n from a distribution with batch shape b yields a tensor of shape
// n.Concat(b), with sample dimensions outermost. The result shape is static
// metadata and never depends on the drawn values.
//
// Per-element numeric work (draws, densities) is delegated to
// gonum.org/v1/gonum/stat/distuv.
package dist

import (
	"fmt"
	"math/rand/v2"

	"github.com/proba-ml/proba/internal/tensor"
)

// Option configures distribution construction.
type Option func(*options)

type options struct {
	src rand.Source
}

// WithSource sets the random source used for sampling.
// Distributions sharing a source draw from the same stream.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed seeds a deterministic PCG source for sampling.
// Two distributions built with the same seed and parameters produce
// identical sample values.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.src = rand.NewPCG(seed, 0)
	}
}

// applyOptions resolves construction options. A nil source is valid:
// distuv falls back to the global random stream.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sampleBatch fills a tensor of shape n.Concat(batch) by drawing one value
// per element. Element i of the flat result belongs to batch element
// i % batchN, since sample dimensions are outermost in row-major order.
//
// Draws are sequential so that seeded sources stay reproducible.
func sampleBatch[B tensor.Backend](b B, n, batch tensor.Shape, draw func(batchIdx int) float64) (*tensor.Tensor[float64, B], error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("sample: invalid sample shape %v: %w", n, err)
	}

	raw, err := tensor.NewRaw(n.Concat(batch), tensor.Float64, b.Device())
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}

	data := raw.AsFloat64()
	batchN := batch.NumElements()
	for i := range data {
		data[i] = draw(i % batchN)
	}
	return tensor.New[float64, B](raw, b), nil
}

// mapBatch applies f element-wise over x, pairing each element with its
// batch index. The trailing dimensions of x must equal the batch shape.
func mapBatch[B tensor.Backend](x *tensor.Tensor[float64, B], batch tensor.Shape, f func(batchIdx int, v float64) float64) (*tensor.Tensor[float64, B], error) {
	if !hasTrailing(x.Shape(), batch) {
		return nil, fmt.Errorf("batched op: shape %v does not end with batch shape %v", x.Shape(), batch)
	}

	raw, err := tensor.NewRaw(x.Shape().Clone(), tensor.Float64, x.Backend().Device())
	if err != nil {
		return nil, fmt.Errorf("batched op: %w", err)
	}

	in := x.Data()
	out := raw.AsFloat64()
	batchN := batch.NumElements()
	for i, v := range in {
		out[i] = f(i%batchN, v)
	}
	return tensor.New[float64, B](raw, x.Backend()), nil
}

// hasTrailing reports whether s ends with suffix.
func hasTrailing(s, suffix tensor.Shape) bool {
	if len(suffix) > len(s) {
		return false
	}
	off := len(s) - len(suffix)
	for i, d := range suffix {
		if s[off+i] != d {
			return false
		}
	}
	return true
}

// broadcastParams aligns two parameter tensors to their common batch shape,
// materializing expanded copies where needed.
func broadcastParams[B tensor.Backend](a, b *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[float64, B], tensor.Shape, error) {
	batch, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, nil, nil, err
	}
	if needsBroadcast || !a.Shape().Equal(batch) {
		a = a.Expand(batch)
	}
	if needsBroadcast || !b.Shape().Equal(batch) {
		b = b.Expand(batch)
	}
	return a, b, batch, nil
}
