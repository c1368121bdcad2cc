package dist

import (
	"fmt"

	"github.com/proba-ml/proba/internal/tensor"
)

// Shaped is any value with a statically known shape. Tensors and raw tensors
// both satisfy it; checking a shape never realizes element values.
type Shaped interface {
	Shape() tensor.Shape
}

// ShapeMismatchError reports a sampled value whose shape violates the
// broadcasting law.
type ShapeMismatchError struct {
	Expected tensor.Shape
	Actual   tensor.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("sample shape mismatch: expected %v, got %v", e.Expected, e.Actual)
}

// ExpectedSampleShape returns the shape mandated by the broadcasting law for
// samples of shape n drawn from a distribution with the given batch shape:
// n.Concat(batch), sample dimensions outermost.
func ExpectedSampleShape(n, batch tensor.Shape) tensor.Shape {
	return n.Concat(batch)
}

// VerifySampleShape checks a sampled value against the broadcasting law.
// It returns a *ShapeMismatchError if got's shape differs from
// ExpectedSampleShape(n, batch) in length or in any dimension.
func VerifySampleShape(got Shaped, n, batch tensor.Shape) error {
	expected := ExpectedSampleShape(n, batch)
	if actual := got.Shape(); !actual.Equal(expected) {
		return &ShapeMismatchError{Expected: expected, Actual: actual.Clone()}
	}
	return nil
}

// CheckSampleShape draws samples of shape n through sample and verifies the
// broadcasting law for a distribution with the given batch shape.
//
// The sampling capability is injected as a function so the check stays
// library-agnostic; a distribution's Sample method satisfies it directly:
//
//	e, _ := dist.NewExponential(2.0, backend)
//	err := dist.CheckSampleShape(e.BatchShape(), tensor.Shape{5}, e.Sample)
//
// The check is pure and idempotent: shape is static metadata, so repeating
// it with the same inputs always yields the same outcome.
func CheckSampleShape[S Shaped](batch, n tensor.Shape, sample func(tensor.Shape) (S, error)) error {
	x, err := sample(n)
	if err != nil {
		return err
	}
	return VerifySampleShape(x, n, batch)
}
