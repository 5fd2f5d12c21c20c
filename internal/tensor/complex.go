package tensor

import "fmt"

// ComplexTensor is a dense, row-major complex128 array.
// It only appears as the frequency-domain side of the FFT operations.
type ComplexTensor struct {
	data  []complex128
	shape Shape
}

// NewComplex creates a zero-filled ComplexTensor with the given shape.
func NewComplex(shape Shape) (*ComplexTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &ComplexTensor{
		data:  make([]complex128, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// ComplexFromReal lifts a real tensor into the complex plane with zero
// imaginary parts. Used to read a real gradient as a half-spectrum.
func ComplexFromReal(r *RawTensor) *ComplexTensor {
	c := &ComplexTensor{
		data:  make([]complex128, r.NumElements()),
		shape: r.Shape().Clone(),
	}
	for i, v := range r.Data() {
		c.data[i] = complex(v, 0)
	}
	return c
}

// Shape returns the tensor's shape.
func (c *ComplexTensor) Shape() Shape {
	return c.shape
}

// Data returns the underlying row-major slice.
func (c *ComplexTensor) Data() []complex128 {
	return c.data
}

// At returns the element at row i, column j of a 2D tensor.
func (c *ComplexTensor) At(i, j int) complex128 {
	cols := c.shape.Cols()
	if i < 0 || i >= c.shape[0] || j < 0 || j >= cols {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for shape %v", i, j, c.shape))
	}
	return c.data[i*cols+j]
}
