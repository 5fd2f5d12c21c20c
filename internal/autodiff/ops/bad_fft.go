package ops

import (
	"fmt"

	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// BadFFTOp records the FFT-magnitude operation.
//
// Forward:  output = |RFFT2(input)|, shape [H, W/2+1]
// Backward: d_input = IRFFT2(d_output), shape [H, W]
//
// The backward pass reads the real gradient as a half-spectrum and inverts
// it. Taking the magnitude discards phase, so this is not the derivative of
// the forward pass, and Backward(Forward(x)) does not reproduce x. The op
// only demonstrates how a backend transform pair slots into the Function
// contract.
type BadFFTOp struct {
	backend tensor.Backend
	width   int // Input width; 0 until Forward runs
}

// NewBadFFTOp creates a new BadFFT operation.
func NewBadFFTOp(backend tensor.Backend) *BadFFTOp {
	return &BadFFTOp{backend: backend}
}

// Forward computes the magnitude of the 2D half-spectrum of a single input.
func (op *BadFFTOp) Forward(inputs ...*tensor.RawTensor) *tensor.RawTensor {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("badfft: expected 1 input, got %d", len(inputs)))
	}
	input := inputs[0]

	result := op.backend.Abs(op.backend.RFFT2(input))

	// Only the width is needed to size the inverse transform; no data is kept.
	op.width = input.Shape()[len(input.Shape())-1]
	return result
}

// Backward applies the inverse 2D real FFT to the output gradient.
//
// With a gradient shaped like the forward output, the result is shaped like
// the forward input, odd widths included. Without a prior Forward the width
// falls back to 2*(cols-1).
func (op *BadFFTOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	inputGrad := op.backend.IRFFT2(tensor.ComplexFromReal(outputGrad), op.width)
	return []*tensor.RawTensor{inputGrad}
}
