package cpu

import (
	"fmt"

	"github.com/proba-ml/proba/internal/parallel"
	"github.com/proba-ml/proba/internal/tensor"
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementWise("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with NumPy-style broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementWise("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementWise("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with NumPy-style broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementWise("div", a, b, func(x, y float64) float64 { return x / y })
}

// elementWise dispatches a binary op over broadcast operands.
func (cpu *CPUBackend) elementWise(name string, a, b *tensor.RawTensor, op func(float64, float64) float64) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	if !needsBroadcast && a.DType() == tensor.Float64 && b.DType() == tensor.Float64 {
		// Fast path: same shape, both float64, no index mapping.
		av := a.AsFloat64()
		bv := b.AsFloat64()
		out := result.AsFloat64()
		parallel.For(len(out), func(i int) {
			out[i] = op(av[i], bv[i])
		}, cpu.pcfg)
		return result
	}

	parallel.For(result.NumElements(), func(i int) {
		x := getFloat64(a, broadcastIndex(i, outShape, a))
		y := getFloat64(b, broadcastIndex(i, outShape, b))
		setFloat64(result, i, op(x, y))
	}, cpu.pcfg)
	return result
}

// broadcastIndex maps a flat index in the broadcast output shape to the flat
// index of the corresponding element in src. Dimensions of size 1 in src are
// repeated; missing leading dimensions are treated as size 1.
func broadcastIndex(flat int, outShape tensor.Shape, src *tensor.RawTensor) int {
	srcShape := src.Shape()
	srcStrides := src.Strides()
	offset := len(outShape) - len(srcShape)

	idx := 0
	rem := flat
	for d := len(outShape) - 1; d >= 0; d-- {
		c := rem % outShape[d]
		rem /= outShape[d]
		if sd := d - offset; sd >= 0 && srcShape[sd] != 1 {
			idx += c * srcStrides[sd]
		}
	}
	return idx
}

// getFloat64 reads element i as float64. Float types only.
func getFloat64(r *tensor.RawTensor, i int) float64 {
	switch r.DType() {
	case tensor.Float32:
		return float64(r.AsFloat32()[i])
	case tensor.Float64:
		return r.AsFloat64()[i]
	default:
		panic(fmt.Sprintf("unsupported dtype for arithmetic: %s", r.DType()))
	}
}

// setFloat64 writes element i from a float64 value. Float types only.
func setFloat64(r *tensor.RawTensor, i int, v float64) {
	switch r.DType() {
	case tensor.Float32:
		r.AsFloat32()[i] = float32(v)
	case tensor.Float64:
		r.AsFloat64()[i] = v
	default:
		panic(fmt.Sprintf("unsupported dtype for arithmetic: %s", r.DType()))
	}
}
