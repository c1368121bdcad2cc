package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proba-ml/proba/internal/backend/cpu"
	"github.com/proba-ml/proba/internal/tensor"
)

func TestUniformSampleShape(t *testing.T) {
	backend := cpu.New()

	u, err := NewUniform([]float64{0, 10}, []float64{1, 20}, backend)
	require.NoError(t, err)
	assert.True(t, u.BatchShape().Equal(tensor.Shape{2}))

	x, err := u.Sample(tensor.Shape{7})
	require.NoError(t, err)
	assert.True(t, x.Shape().Equal(tensor.Shape{7, 2}))

	require.NoError(t, CheckSampleShape(u.BatchShape(), tensor.Shape{7}, u.Sample))
}

func TestUniformSamplesWithinBounds(t *testing.T) {
	backend := cpu.New()

	u, err := NewUniform([]float64{0, 10}, []float64{1, 20}, backend, WithSeed(3))
	require.NoError(t, err)

	x, err := u.Sample(tensor.Shape{1000})
	require.NoError(t, err)

	data := x.Data()
	for i := 0; i < len(data); i += 2 {
		assert.GreaterOrEqual(t, data[i], 0.0)
		assert.Less(t, data[i], 1.0)
	}
	for i := 1; i < len(data); i += 2 {
		assert.GreaterOrEqual(t, data[i], 10.0)
		assert.Less(t, data[i], 20.0)
	}
}

func TestUniformInvalidBounds(t *testing.T) {
	backend := cpu.New()

	_, err := NewUniform(1.0, 1.0, backend)
	require.Error(t, err)
	_, err = NewUniform(2.0, 1.0, backend)
	require.Error(t, err)
}

func TestUniformMoments(t *testing.T) {
	backend := cpu.New()

	u, err := NewUniform(0.0, 12.0, backend)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, u.Mean().Item(), 1e-12)
	assert.InDelta(t, 12.0, u.Variance().Item(), 1e-12)
}

func TestUniformLogProbOutsideSupport(t *testing.T) {
	backend := cpu.New()

	u, err := NewUniform(0.0, 1.0, backend)
	require.NoError(t, err)

	x, err := tensor.FromSlice([]float64{0.5, 2.0}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	p, err := u.Prob(x)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Data()[0])
	assert.Equal(t, 0.0, p.Data()[1])
}
