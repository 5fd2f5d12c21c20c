// Package ops defines the differentiable function contract and the custom
// operations built on it.
//
// Each operation pairs a forward computation with its backward pass:
//   - Forward: delegates the numeric work to a backend
//   - Backward: computes gradients for every forward input given the output gradient
//
// Supported operations:
//   - BadFFTOp: magnitude of the 2D half-spectrum; backward is an inverse
//     real FFT of the gradient (intentionally not the true derivative)
//   - ScipyConv2DOp: valid 2D cross-correlation with a learnable kernel
package ops

import "github.com/SubhasisDebsharma/tutorials/internal/tensor"

// Function represents a differentiable operation.
//
// A Function instance may keep whatever it needs from Forward (saved
// inputs, shapes) for the matching Backward call. Instances are single-use:
// create one per forward call.
type Function interface {
	// Forward computes the output from the given inputs.
	Forward(inputs ...*tensor.RawTensor) *tensor.RawTensor

	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each Forward input.
	//
	// Example for ScipyConv2DOp:
	//   inputs: [input, kernel]
	//   outputGrad: dL/d(output)
	//   returns: [dL/d(input), dL/d(kernel)]
	Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor
}
