package nn

import (
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter is owned by exactly one layer. The layer hands the tensor to
// its operation by reference on each forward call; only an optimizer is
// expected to change its values.
//
// Example:
//
//	kernel := nn.NewParameter("scipyconv2d.kernel", tensor.Randn(tensor.Shape{3, 3}))
//
//	// After backward
//	nn.CollectGrads([]*nn.Parameter{kernel}, grads)
//	grad := kernel.Grad()
type Parameter struct {
	name   string            // Parameter name (e.g., "scipyconv2d.kernel")
	tensor *tensor.RawTensor // The parameter tensor
	grad   *tensor.RawTensor // Gradient (computed during backward pass)
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, t *tensor.RawTensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
		grad:   nil, // Gradient allocated on first backward pass
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.RawTensor {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been computed yet (before backward pass).
func (p *Parameter) Grad() *tensor.RawTensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.RawTensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// CollectGrads copies gradients from a backward pass into their parameters.
// Parameters that received no gradient are left unchanged.
func CollectGrads(params []*Parameter, grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, p := range params {
		if g, ok := grads[p.tensor]; ok {
			p.grad = g
		}
	}
}
