// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff"
	"github.com/SubhasisDebsharma/tutorials/internal/nn"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.RawTensor) *Parameter {
	return nn.NewParameter(name, t)
}

// CollectGrads copies gradients computed by autodiff.Backward onto params.
func CollectGrads(params []*Parameter, grads map[*tensor.RawTensor]*tensor.RawTensor) {
	nn.CollectGrads(params, grads)
}

// Layers

// ScipyConv2D is a single-channel valid-mode 2D cross-correlation layer.
type ScipyConv2D[B tensor.Backend] = nn.ScipyConv2D[B]

// NewScipyConv2D creates a new layer with a random kernelH x kernelW kernel.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	conv := nn.NewScipyConv2D(3, 3, backend)
func NewScipyConv2D[B tensor.Backend](kernelH, kernelW int, backend *autodiff.AutodiffBackend[B]) *ScipyConv2D[B] {
	return nn.NewScipyConv2D(kernelH, kernelW, backend)
}

// BadFFT is the magnitude of the 2D real FFT as a layer.
type BadFFT[B tensor.Backend] = nn.BadFFT[B]

// NewBadFFT creates a new BadFFT layer.
func NewBadFFT[B tensor.Backend](backend *autodiff.AutodiffBackend[B]) *BadFFT[B] {
	return nn.NewBadFFT(backend)
}

// Initialization

// Randn creates a tensor with standard normal entries.
func Randn(shape tensor.Shape) *tensor.RawTensor {
	return nn.Randn(shape)
}
