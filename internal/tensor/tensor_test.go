package tensor

import (
	"math"
	"testing"
)

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if !x.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", x.Shape())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
}

func TestFromSliceShapeMismatch(t *testing.T) {
	backend := NewMockBackend()

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 3}, backend); err == nil {
		t.Error("expected error when data length does not match shape")
	}
}

func TestItem(t *testing.T) {
	backend := NewMockBackend()

	s := Scalar[float64](2.0, backend)
	if got := s.Item(); got != 2.0 {
		t.Errorf("Item() = %v, want 2", got)
	}
}

func TestItemPanicsOnNonScalar(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float64](Shape{2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Item() on a non-scalar tensor should panic")
		}
	}()
	x.Item()
}

func TestAtSet(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float64](Shape{2, 2}, backend)

	x.Set(3.5, 0, 1)
	if got := x.At(0, 1); got != 3.5 {
		t.Errorf("At(0, 1) = %v, want 3.5", got)
	}
	if got := x.At(1, 0); got != 0 {
		t.Errorf("At(1, 0) = %v, want 0", got)
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float64](Shape{2, 2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("At with out-of-bounds index should panic")
		}
	}()
	x.At(2, 0)
}

func TestTensorAddBroadcast(t *testing.T) {
	backend := NewMockBackend()

	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	b, err := FromSlice([]float64{10, 20, 30}, Shape{1, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	got := a.Add(b)
	want := []float64{11, 22, 33, 14, 25, 36}
	for i, w := range want {
		if got.Data()[i] != w {
			t.Fatalf("Add data = %v, want %v", got.Data(), want)
		}
	}
}

func TestTensorScalarOps(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{1, 2, 4}, Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	doubled := x.MulScalar(2)
	for i, w := range []float64{2, 4, 8} {
		if doubled.Data()[i] != w {
			t.Fatalf("MulScalar data = %v", doubled.Data())
		}
	}

	shifted := x.AddScalar(1)
	for i, w := range []float64{2, 3, 5} {
		if shifted.Data()[i] != w {
			t.Fatalf("AddScalar data = %v", shifted.Data())
		}
	}
}

func TestTensorMathOps(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{1, 4, 9}, Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	root := x.Sqrt()
	for i, w := range []float64{1, 2, 3} {
		if math.Abs(root.Data()[i]-w) > 1e-12 {
			t.Fatalf("Sqrt data = %v", root.Data())
		}
	}

	recip := x.Recip()
	for i, w := range []float64{1, 0.25, 1.0 / 9.0} {
		if math.Abs(recip.Data()[i]-w) > 1e-12 {
			t.Fatalf("Recip data = %v", recip.Data())
		}
	}

	logexp := x.Log().Exp()
	for i := range x.Data() {
		if math.Abs(logexp.Data()[i]-x.Data()[i]) > 1e-12 {
			t.Fatalf("Exp(Log(x)) = %v, want %v", logexp.Data(), x.Data())
		}
	}

	neg := x.Neg()
	for i := range x.Data() {
		if neg.Data()[i] != -x.Data()[i] {
			t.Fatalf("Neg data = %v", neg.Data())
		}
	}
}

func TestTensorCloneIndependence(t *testing.T) {
	backend := NewMockBackend()
	x := Full[float64](Shape{2}, 1.5, backend)

	y := x.Clone()
	y.Data()[0] = 9

	if x.Data()[0] != 1.5 {
		t.Error("Clone must not share storage with the original")
	}
}

func TestTensorString(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float64](Shape{2, 3}, backend)

	want := "Tensor[float64][2 3] on CPU"
	if got := x.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
