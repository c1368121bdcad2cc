package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar adds a scalar to every element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v + scalar })
}

// MulScalar multiplies every element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v * scalar })
}

// Exp computes the element-wise exponential.
func (m *MockBackend) Exp(x *RawTensor) *RawTensor {
	return m.unary(x, math.Exp)
}

// Log computes the element-wise natural logarithm.
func (m *MockBackend) Log(x *RawTensor) *RawTensor {
	return m.unary(x, math.Log)
}

// Sqrt computes the element-wise square root.
func (m *MockBackend) Sqrt(x *RawTensor) *RawTensor {
	return m.unary(x, math.Sqrt)
}

// Neg computes the element-wise negation.
func (m *MockBackend) Neg(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 { return -v })
}

// Recip computes the element-wise reciprocal.
func (m *MockBackend) Recip(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 { return 1 / v })
}

// Expand broadcasts x to the given shape, materializing the result.
func (m *MockBackend) Expand(x *RawTensor, shape Shape) *RawTensor {
	out, _, err := BroadcastShapes(x.Shape(), shape)
	if err != nil || !out.Equal(shape) {
		panic(fmt.Sprintf("expand: cannot broadcast %v to %v", x.Shape(), shape))
	}

	result, err := NewRaw(shape, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	for i := 0; i < result.NumElements(); i++ {
		setFloat64(result, i, getFloat64(x, broadcastIndex(i, shape, x)))
	}
	return result
}

// elementWise performs element-wise operations with broadcasting.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	for i := 0; i < result.NumElements(); i++ {
		x := getFloat64(a, broadcastIndex(i, outShape, a))
		y := getFloat64(b, broadcastIndex(i, outShape, b))
		setFloat64(result, i, op(x, y))
	}
	return result
}

// unary applies op to every element.
func (m *MockBackend) unary(x *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape().Clone(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	for i := 0; i < result.NumElements(); i++ {
		setFloat64(result, i, op(getFloat64(x, i)))
	}
	return result
}

// broadcastIndex maps a flat index in the broadcast output shape to the flat
// index of the corresponding element in src. Dimensions of size 1 in src are
// repeated; missing leading dimensions are treated as size 1.
func broadcastIndex(flat int, outShape Shape, src *RawTensor) int {
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
func getFloat64(r *RawTensor, i int) float64 {
	switch r.DType() {
	case Float32:
		return float64(r.AsFloat32()[i])
	case Float64:
		return r.AsFloat64()[i]
	default:
		panic(fmt.Sprintf("unsupported dtype for arithmetic: %s", r.DType()))
	}
}

// setFloat64 writes element i from a float64 value. Float types only.
func setFloat64(r *RawTensor, i int, v float64) {
	switch r.DType() {
	case Float32:
		r.AsFloat32()[i] = float32(v)
	case Float64:
		r.AsFloat64()[i] = v
	default:
		panic(fmt.Sprintf("unsupported dtype for arithmetic: %s", r.DType()))
	}
}
