// Package cpu implements the CPU backend, delegating numeric kernels to gonum.
package cpu

import (
	"fmt"

	"github.com/SubhasisDebsharma/tutorials/internal/parallel"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Verify that CPUBackend implements Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor operations on CPU.
// It holds no mutable state and is safe for concurrent use.
type CPUBackend struct {
	parallel parallel.Config
}

// New creates a new CPU backend that splits row loops across all CPUs.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{parallel: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition of two tensors with the same shape.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("add: shape mismatch %v vs %v", a.Shape(), b.Shape()))
	}

	result := tensor.MustNew(a.Shape())
	floats.AddTo(result.Data(), a.Data(), b.Data())
	return result
}

// Transpose swaps the axes of a 2D tensor.
//
// The copy goes through a gonum Dense view so the result is contiguous
// row-major storage of shape [cols, rows].
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor) *tensor.RawTensor {
	shape := t.Shape()
	if !shape.Is2D() {
		panic(fmt.Sprintf("transpose: expected 2D tensor, got %dD", len(shape)))
	}
	rows, cols := shape[0], shape[1]

	// NewDense aliases the slice; DenseCopyOf copies before we hand it back.
	transposed := mat.DenseCopyOf(mat.NewDense(rows, cols, t.Data()).T())

	result := tensor.MustNew(tensor.Shape{cols, rows})
	raw := transposed.RawMatrix()
	for i := 0; i < cols; i++ {
		copy(result.Data()[i*rows:(i+1)*rows], raw.Data[i*raw.Stride:i*raw.Stride+rows])
	}
	return result
}
