package nn

import (
	"fmt"

	"github.com/SubhasisDebsharma/tutorials/internal/autodiff"
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff/ops"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// ScipyConv2D is a single-channel 2D cross-correlation layer with a learnable kernel.
//
// Performs: output = Correlate2D(input, kernel, valid)
//
// Input shape:  [height, width]
// Kernel shape: [kernel_h, kernel_w]
// Output shape: [height - kernel_h + 1, width - kernel_w + 1]
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	conv := nn.NewScipyConv2D(3, 3, backend)
//	output := conv.Forward(tensor.Randn(tensor.Shape{10, 10})) // [8, 8]
//
//	grads := autodiff.Backward(backend, tensor.Randn(output.Shape()))
//	nn.CollectGrads(conv.Parameters(), grads)
type ScipyConv2D[B tensor.Backend] struct {
	kernelSize [2]int
	kernel     *Parameter // [kernel_h, kernel_w]

	backend *autodiff.AutodiffBackend[B]
}

// NewScipyConv2D creates a new layer with a kernelH x kernelW kernel drawn
// from the standard normal distribution.
func NewScipyConv2D[B tensor.Backend](kernelH, kernelW int, backend *autodiff.AutodiffBackend[B]) *ScipyConv2D[B] {
	if kernelH <= 0 || kernelW <= 0 {
		panic(fmt.Sprintf("scipyconv2d: invalid kernel size h=%d, w=%d", kernelH, kernelW))
	}

	kernel := Randn(tensor.Shape{kernelH, kernelW})

	return &ScipyConv2D[B]{
		kernelSize: [2]int{kernelH, kernelW},
		kernel:     NewParameter("scipyconv2d.kernel", kernel),
		backend:    backend,
	}
}

// Forward threads the layer's kernel into a fresh ScipyConv2DOp alongside input.
//
// Input: [height, width]
// Output: [height - kernel_h + 1, width - kernel_w + 1].
func (c *ScipyConv2D[B]) Forward(input *tensor.RawTensor) *tensor.RawTensor {
	if !input.Shape().Is2D() {
		panic(fmt.Sprintf("scipyconv2d: expected 2D input [H,W], got %dD", len(input.Shape())))
	}

	op := ops.NewScipyConv2DOp(c.backend.Inner())
	return c.backend.Apply(op, input, c.kernel.Tensor())
}

// Parameters returns the kernel parameter.
func (c *ScipyConv2D[B]) Parameters() []*Parameter {
	return []*Parameter{c.kernel}
}

// Kernel returns the kernel parameter.
func (c *ScipyConv2D[B]) Kernel() *Parameter {
	return c.kernel
}

// KernelSize returns the kernel size [height, width].
func (c *ScipyConv2D[B]) KernelSize() [2]int {
	return c.kernelSize
}

// ComputeOutputSize computes output spatial dimensions for given input size.
//
// Returns: [out_height, out_width].
func (c *ScipyConv2D[B]) ComputeOutputSize(inputH, inputW int) [2]int {
	return [2]int{inputH - c.kernelSize[0] + 1, inputW - c.kernelSize[1] + 1}
}

// String returns a string representation of the layer.
func (c *ScipyConv2D[B]) String() string {
	return fmt.Sprintf("ScipyConv2D(kernel_size=(%d, %d))", c.kernelSize[0], c.kernelSize[1])
}
