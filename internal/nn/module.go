// Package nn implements the layers that wrap the custom operations.
//
// This package provides:
//   - Module interface: Base interface for all components
//   - Parameter: Trainable tensors owned by a layer
//   - ScipyConv2D: 2D valid cross-correlation with a learnable kernel
//   - BadFFT: Unparameterized FFT-magnitude layer
//
// Design inspired by PyTorch's nn.Module but adapted for Go.
package nn

import (
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
type Module interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.RawTensor) *tensor.RawTensor

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*Parameter
}
