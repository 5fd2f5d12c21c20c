package tensor

import (
	"fmt"
	"strings"
)

// RawTensor is the low-level tensor representation: a dense, row-major
// float64 buffer with a shape.
//
// Operations in this module treat RawTensors as immutable values. A backend
// always allocates a fresh result instead of writing into its arguments.
type RawTensor struct {
	data   []float64 // Row-major elements
	shape  Shape     // Tensor dimensions
	stride []int     // Memory strides (row-major)
}

// NewRaw creates a new zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a RawTensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(raw.data, data)

	return raw, nil
}

// MustNew is like NewRaw but panics on an invalid shape.
// Backends use it for result tensors whose shape they computed themselves.
func MustNew(shape Shape) *RawTensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return raw
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the underlying row-major slice.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (r *RawTensor) At(indices ...int) float64 {
	return r.data[r.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (r *RawTensor) Set(value float64, indices ...int) {
	r.data[r.offset(indices)] = value
}

func (r *RawTensor) offset(indices []int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return offset
}

// Clone returns a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:   append([]float64(nil), r.data...),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
	}
}

// String renders a 2D tensor row by row; other ranks print flat.
func (r *RawTensor) String() string {
	if !r.shape.Is2D() {
		return fmt.Sprintf("RawTensor(shape=%v, data=%v)", r.shape, r.data)
	}

	var sb strings.Builder
	rows, cols := r.shape[0], r.shape[1]
	sb.WriteString("[")
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%9.4f", r.data[i*cols+j])
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
