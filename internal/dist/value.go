package dist

import (
	"fmt"

	"github.com/proba-ml/proba/internal/tensor"
)

// ToTensor normalizes any supported parameter representation to a float64
// tensor. It is the single conversion boundary between polymorphic
// user-facing parameters and the typed tensor core; everything past it
// carries a statically known shape.
//
// Accepted representations:
//   - bare scalars: float64, float32, int → 0-D tensor
//   - vectors: []float64, []float32 → 1-D tensor (data is copied)
//   - *tensor.Tensor[float64, B] → passed through
//   - *tensor.RawTensor with dtype Float64 → wrapped
func ToTensor[B tensor.Backend](v any, b B) (*tensor.Tensor[float64, B], error) {
	switch p := v.(type) {
	case *tensor.Tensor[float64, B]:
		return p, nil
	case *tensor.RawTensor:
		if p.DType() != tensor.Float64 {
			return nil, fmt.Errorf("to tensor: raw tensor dtype is %s, want float64", p.DType())
		}
		return tensor.New[float64, B](p, b), nil
	case float64:
		return tensor.Scalar[float64, B](p, b), nil
	case float32:
		return tensor.Scalar[float64, B](float64(p), b), nil
	case int:
		return tensor.Scalar[float64, B](float64(p), b), nil
	case []float64:
		return tensor.FromSlice[float64, B](append([]float64(nil), p...), tensor.Shape{len(p)}, b)
	case []float32:
		data := make([]float64, len(p))
		for i, f := range p {
			data[i] = float64(f)
		}
		return tensor.FromSlice[float64, B](data, tensor.Shape{len(p)}, b)
	default:
		return nil, fmt.Errorf("to tensor: unsupported parameter type %T", v)
	}
}
