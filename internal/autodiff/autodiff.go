// Package autodiff implements automatic differentiation using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and adds gradient
// tracking through a GradientTape.
//
// Architecture:
//   - Decorator pattern: AutodiffBackend[B] wraps any Backend implementation
//   - GradientTape: Records applied functions during the forward pass
//   - ops.Function: Each op pairs Forward with Backward
//   - Reverse-mode AD: Computes gradients using the chain rule
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	out := backend.Apply(ops.NewScipyConv2DOp(backend.Inner()), input, kernel)
//
//	grads := autodiff.Backward(backend, upstreamGrad)
//	fmt.Println(grads[kernel]) // dL/dkernel
package autodiff

import (
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff/ops"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// AutodiffBackend wraps a Backend and records applied functions in a GradientTape.
//
// Type parameter B must satisfy the tensor.Backend interface.
type AutodiffBackend[B tensor.Backend] struct {
	inner B             // Wrapped backend
	tape  *GradientTape // Records operations for backpropagation
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing tape between iterations
//   - Inspecting recorded operations
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
// Functions compute with the inner backend so their own work is never recorded.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Apply runs fn.Forward on inputs and records the call if the tape is recording.
func (b *AutodiffBackend[B]) Apply(fn ops.Function, inputs ...*tensor.RawTensor) *tensor.RawTensor {
	result := fn.Forward(inputs...)

	if b.tape.IsRecording() {
		b.tape.Record(fn, inputs, result)
	}

	return result
}
