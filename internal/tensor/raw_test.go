package tensor

import "testing"

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", raw.Shape())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 48 {
		t.Errorf("ByteSize = %d, want 48", raw.ByteSize())
	}
	if raw.DType() != Float64 {
		t.Errorf("dtype = %v, want float64", raw.DType())
	}

	// Zero-initialized
	for i, v := range raw.AsFloat64() {
		if v != 0 {
			t.Fatalf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawScalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw scalar: %v", err)
	}
	if raw.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", raw.NumElements())
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float64, CPU); err == nil {
		t.Error("expected error for zero dimension")
	}
	if _, err := NewRaw(Shape{-3}, Float64, CPU); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestRawTypedViewPanicsOnDTypeMismatch(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on a float64 tensor should panic")
		}
	}()
	raw.AsFloat32()
}

func TestRawClone(t *testing.T) {
	raw, err := NewRaw(Shape{3}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	raw.AsFloat64()[0] = 42

	clone := raw.Clone()
	clone.AsFloat64()[0] = 7

	if raw.AsFloat64()[0] != 42 {
		t.Error("Clone must not share storage with the original")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Errorf("clone shape = %v, want %v", clone.Shape(), raw.Shape())
	}
}
