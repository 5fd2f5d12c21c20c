package ops

import (
	"fmt"

	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// ScipyConv2DOp records a 2D cross-correlation with a learnable kernel.
//
// Forward: output = Correlate2D(input, kernel, valid)
//
// Backward (gradients):
//   - d_input:  full convolution of d_output with the transposed kernel
//   - d_kernel: valid convolution of input with d_output
//
// Shapes for input [H, W] and kernel [KH, KW]:
//   - output:   [H-KH+1, W-KW+1]
//   - d_input:  [H, W] (for non-square kernels the transposed sizing applies)
//   - d_kernel: [KH, KW]
type ScipyConv2DOp struct {
	backend tensor.Backend
	input   *tensor.RawTensor // Saved by Forward, dropped by Backward
	kernel  *tensor.RawTensor
}

// NewScipyConv2DOp creates a new ScipyConv2D operation.
func NewScipyConv2DOp(backend tensor.Backend) *ScipyConv2DOp {
	return &ScipyConv2DOp{backend: backend}
}

// Forward correlates inputs[0] (the input) with inputs[1] (the kernel) in
// valid mode and keeps both for Backward.
func (op *ScipyConv2DOp) Forward(inputs ...*tensor.RawTensor) *tensor.RawTensor {
	if len(inputs) != 2 {
		panic(fmt.Sprintf("scipyconv2d: expected 2 inputs (input, kernel), got %d", len(inputs)))
	}
	input, kernel := inputs[0], inputs[1]

	result := op.backend.Correlate2D(input, kernel, tensor.Valid)

	op.input = input
	op.kernel = kernel
	return result
}

// Backward computes [d_input, d_kernel] and releases the saved tensors.
func (op *ScipyConv2DOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	if op.input == nil || op.kernel == nil {
		panic("scipyconv2d: backward called without a saved forward pass")
	}

	inputGrad := op.backend.Convolve2D(outputGrad, op.backend.Transpose(op.kernel), tensor.Full)
	kernelGrad := op.backend.Convolve2D(op.input, outputGrad, tensor.Valid)

	op.input = nil
	op.kernel = nil

	return []*tensor.RawTensor{inputGrad, kernelGrad}
}
