package autodiff

import (
	"fmt"

	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// Backward propagates outputGrad through everything recorded on the
// backend's tape.
//
// outputGrad is the upstream gradient for the last recorded output. It must
// have that output's shape.
//
// Returns a map from RawTensor (inputs, parameters, intermediates) to its gradient.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	out := backend.Apply(ops.NewBadFFTOp(backend.Inner()), x)
//	grads := autodiff.Backward(backend, tensor.Randn(out.Shape()))
//	gx := grads[x]
func Backward[B tensor.Backend](backend *AutodiffBackend[B], outputGrad *tensor.RawTensor) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.Tape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	last := tape.nodes[len(tape.nodes)-1].output
	if !last.Shape().Equal(outputGrad.Shape()) {
		panic(fmt.Sprintf("backward: output gradient shape %v does not match output shape %v",
			outputGrad.Shape(), last.Shape()))
	}

	return tape.Backward(outputGrad, backend.Inner())
}
