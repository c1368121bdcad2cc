package dist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proba-ml/proba/internal/tensor"
)

// stubShaped is a fake sample result carrying only a shape. The checker must
// work with any shape-bearing value, without a real distribution behind it.
type stubShaped struct {
	shape tensor.Shape
}

func (s stubShaped) Shape() tensor.Shape {
	return s.shape
}

func TestExpectedSampleShape(t *testing.T) {
	tests := []struct {
		name     string
		n, batch tensor.Shape
		want     tensor.Shape
	}{
		{"scalar batch", tensor.Shape{1}, tensor.Shape{}, tensor.Shape{1}},
		{"five draws from batch of one", tensor.Shape{5}, tensor.Shape{1}, tensor.Shape{5, 1}},
		{"one draw from batch of two", tensor.Shape{1}, tensor.Shape{2}, tensor.Shape{1, 2}},
		{"ten draws from batch of two", tensor.Shape{10}, tensor.Shape{2}, tensor.Shape{10, 2}},
		{"empty draw shape", tensor.Shape{}, tensor.Shape{2}, tensor.Shape{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpectedSampleShape(tt.n, tt.batch)
			assert.True(t, got.Equal(tt.want), "ExpectedSampleShape(%v, %v) = %v, want %v", tt.n, tt.batch, got, tt.want)
		})
	}
}

func TestVerifySampleShapeMatch(t *testing.T) {
	got := stubShaped{shape: tensor.Shape{10, 2}}
	require.NoError(t, VerifySampleShape(got, tensor.Shape{10}, tensor.Shape{2}))
}

func TestVerifySampleShapeMismatch(t *testing.T) {
	got := stubShaped{shape: tensor.Shape{2, 10}}

	err := VerifySampleShape(got, tensor.Shape{10}, tensor.Shape{2})
	require.Error(t, err)

	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, mismatch.Expected.Equal(tensor.Shape{10, 2}))
	assert.True(t, mismatch.Actual.Equal(tensor.Shape{2, 10}))
	assert.Contains(t, mismatch.Error(), "expected [10 2]")
	assert.Contains(t, mismatch.Error(), "got [2 10]")
}

func TestVerifySampleShapeRankMismatch(t *testing.T) {
	// Same leading dimensions, extra trailing one.
	got := stubShaped{shape: tensor.Shape{10, 2, 1}}

	var mismatch *ShapeMismatchError
	err := VerifySampleShape(got, tensor.Shape{10}, tensor.Shape{2})
	require.True(t, errors.As(err, &mismatch))
}

func TestCheckSampleShapeWithStub(t *testing.T) {
	batch := tensor.Shape{2}

	// A well-behaved sampler satisfies the law.
	good := func(n tensor.Shape) (stubShaped, error) {
		return stubShaped{shape: n.Concat(batch)}, nil
	}
	require.NoError(t, CheckSampleShape(batch, tensor.Shape{5}, good))

	// A sampler that drops the batch dimensions violates it.
	bad := func(n tensor.Shape) (stubShaped, error) {
		return stubShaped{shape: n.Clone()}, nil
	}
	err := CheckSampleShape(batch, tensor.Shape{5}, bad)
	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, mismatch.Expected.Equal(tensor.Shape{5, 2}))
	assert.True(t, mismatch.Actual.Equal(tensor.Shape{5}))
}

func TestCheckSampleShapePropagatesSampleError(t *testing.T) {
	sampleErr := fmt.Errorf("draw failed")
	failing := func(n tensor.Shape) (stubShaped, error) {
		return stubShaped{}, sampleErr
	}

	err := CheckSampleShape(tensor.Shape{}, tensor.Shape{1}, failing)
	require.ErrorIs(t, err, sampleErr)

	var mismatch *ShapeMismatchError
	assert.False(t, errors.As(err, &mismatch))
}
