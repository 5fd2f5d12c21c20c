package nn

import (
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff"
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff/ops"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// BadFFT is an unparameterized layer returning the magnitude of the 2D
// half-spectrum of its input.
//
// Input shape:  [height, width]
// Output shape: [height, width/2 + 1]
//
// Its backward pass is the inverse real FFT of the gradient, which is not
// the true derivative of the magnitude; see ops.BadFFTOp.
type BadFFT[B tensor.Backend] struct {
	backend *autodiff.AutodiffBackend[B]
}

// NewBadFFT creates a new BadFFT layer.
func NewBadFFT[B tensor.Backend](backend *autodiff.AutodiffBackend[B]) *BadFFT[B] {
	return &BadFFT[B]{backend: backend}
}

// Forward applies a fresh BadFFTOp to input.
func (f *BadFFT[B]) Forward(input *tensor.RawTensor) *tensor.RawTensor {
	return f.backend.Apply(ops.NewBadFFTOp(f.backend.Inner()), input)
}

// Parameters returns an empty slice (BadFFT has no trainable parameters).
func (f *BadFFT[B]) Parameters() []*Parameter {
	return []*Parameter{}
}

// String returns a string representation of the layer.
func (f *BadFFT[B]) String() string {
	return "BadFFT()"
}
