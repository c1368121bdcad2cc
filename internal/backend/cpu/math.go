package cpu

import (
	"fmt"
	"math"

	"github.com/proba-ml/proba/internal/parallel"
	"github.com/proba-ml/proba/internal/tensor"
)

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("add_scalar", x, func(v float64) float64 { return v + scalar })
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("mul_scalar", x, func(v float64) float64 { return v * scalar })
}

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, math.Exp)
}

// Log computes the element-wise natural logarithm.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, math.Log)
}

// Sqrt computes the element-wise square root.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sqrt", x, math.Sqrt)
}

// Neg computes the element-wise negation.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("neg", x, func(v float64) float64 { return -v })
}

// Recip computes the element-wise reciprocal (1/x).
func (cpu *CPUBackend) Recip(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("recip", x, func(v float64) float64 { return 1 / v })
}

// Expand broadcasts x to the given shape, materializing the result.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out, _, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil || !out.Equal(shape) {
		panic(fmt.Sprintf("expand: cannot broadcast %v to %v", x.Shape(), shape))
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("expand: failed to create result tensor: %v", err))
	}

	parallel.For(result.NumElements(), func(i int) {
		setFloat64(result, i, getFloat64(x, broadcastIndex(i, shape, x)))
	}, cpu.pcfg)
	return result
}

// unary applies op to every element.
func (cpu *CPUBackend) unary(name string, x *tensor.RawTensor, op func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape().Clone(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	if x.DType() == tensor.Float64 {
		in := x.AsFloat64()
		out := result.AsFloat64()
		parallel.For(len(out), func(i int) {
			out[i] = op(in[i])
		}, cpu.pcfg)
		return result
	}

	parallel.For(result.NumElements(), func(i int) {
		setFloat64(result, i, op(getFloat64(x, i)))
	}, cpu.pcfg)
	return result
}
