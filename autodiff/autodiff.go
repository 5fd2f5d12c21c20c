// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// user-defined Functions.
//
// A Function supplies its own Forward and Backward. The autodiff backend
// applies Functions, records them on a gradient tape and replays the tape
// in reverse to propagate an upstream gradient.
//
// Example:
//
//	import (
//	    "github.com/SubhasisDebsharma/tutorials/autodiff"
//	    "github.com/SubhasisDebsharma/tutorials/backend/cpu"
//	    "github.com/SubhasisDebsharma/tutorials/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    x := tensor.Randn(tensor.Shape{8, 8})
//	    y := backend.Apply(autodiff.NewBadFFTOp(backend.Inner()), x) // [8, 5]
//
//	    grads := autodiff.Backward(backend, tensor.Randn(y.Shape()))
//	    _ = grads[x] // [8, 8]
//	}
package autodiff

import (
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff"
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff/ops"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records applied Functions for backpropagation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Function is a differentiable operation with explicit forward and backward passes.
type Function = ops.Function

// BadFFTOp is the magnitude of the 2D real FFT with an inverse-FFT backward.
type BadFFTOp = ops.BadFFTOp

// NewBadFFTOp creates a BadFFTOp computing on backend.
func NewBadFFTOp(backend tensor.Backend) *BadFFTOp {
	return ops.NewBadFFTOp(backend)
}

// ScipyConv2DOp is valid-mode 2D cross-correlation of an input with a kernel.
type ScipyConv2DOp = ops.ScipyConv2DOp

// NewScipyConv2DOp creates a ScipyConv2DOp computing on backend.
func NewScipyConv2DOp(backend tensor.Backend) *ScipyConv2DOp {
	return ops.NewScipyConv2DOp(backend)
}

// Backward propagates outputGrad through every Function recorded on the
// backend's tape and returns the gradient of each input tensor.
func Backward[B tensor.Backend](backend *Backend[B], outputGrad *tensor.RawTensor) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(backend, outputGrad)
}
