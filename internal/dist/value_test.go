package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proba-ml/proba/internal/backend/cpu"
	"github.com/proba-ml/proba/internal/tensor"
)

func TestToTensorScalars(t *testing.T) {
	backend := cpu.New()

	for _, v := range []any{2.0, float32(2.0), 2} {
		got, err := ToTensor(v, backend)
		require.NoError(t, err, "value %T", v)
		assert.True(t, got.Shape().IsScalar(), "shape = %v, want scalar", got.Shape())
		assert.Equal(t, 2.0, got.Item())
	}
}

func TestToTensorSlices(t *testing.T) {
	backend := cpu.New()

	got, err := ToTensor([]float64{2, 8}, backend)
	require.NoError(t, err)
	assert.True(t, got.Shape().Equal(tensor.Shape{2}))
	assert.Equal(t, []float64{2, 8}, got.Data())

	got32, err := ToTensor([]float32{2, 8}, backend)
	require.NoError(t, err)
	assert.True(t, got32.Shape().Equal(tensor.Shape{2}))
	assert.Equal(t, []float64{2, 8}, got32.Data())
}

func TestToTensorCopiesSliceData(t *testing.T) {
	backend := cpu.New()

	src := []float64{2, 8}
	got, err := ToTensor(src, backend)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 2.0, got.Data()[0], "ToTensor must copy slice data")
}

func TestToTensorPassThrough(t *testing.T) {
	backend := cpu.New()

	in := tensor.Scalar[float64](2.0, backend)
	got, err := ToTensor(in, backend)
	require.NoError(t, err)
	assert.Same(t, in, got)
}

func TestToTensorRawTensor(t *testing.T) {
	backend := cpu.New()

	raw, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat64(), []float64{2, 8})

	got, err := ToTensor(raw, backend)
	require.NoError(t, err)
	assert.True(t, got.Shape().Equal(tensor.Shape{2}))
	assert.Equal(t, []float64{2, 8}, got.Data())
}

func TestToTensorRawTensorWrongDType(t *testing.T) {
	backend := cpu.New()

	raw, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	_, err = ToTensor(raw, backend)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "float64")
}

func TestToTensorUnsupported(t *testing.T) {
	backend := cpu.New()

	for _, v := range []any{"2.0", nil, []int{1, 2}, map[string]float64{}} {
		_, err := ToTensor(v, backend)
		assert.Error(t, err, "value %T should be rejected", v)
	}
}
