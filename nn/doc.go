// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides layers built on custom autodiff Functions.
//
// # Overview
//
// This package contains:
//   - Layers: ScipyConv2D (learnable kernel), BadFFT (no parameters)
//   - Utilities: Module interface, Parameter, CollectGrads
//   - Initialization: Randn
//
// # Basic Usage
//
//	import (
//	    "github.com/SubhasisDebsharma/tutorials/autodiff"
//	    "github.com/SubhasisDebsharma/tutorials/backend/cpu"
//	    "github.com/SubhasisDebsharma/tutorials/nn"
//	    "github.com/SubhasisDebsharma/tutorials/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    conv := nn.NewScipyConv2D(3, 3, backend)
//	    x := tensor.Randn(tensor.Shape{10, 10})
//	    y := conv.Forward(x) // [8, 8]
//
//	    grads := autodiff.Backward(backend, tensor.Randn(y.Shape()))
//	    nn.CollectGrads(conv.Parameters(), grads)
//
//	    _ = conv.Kernel().Grad() // [3, 3]
//	    _ = grads[x]             // [10, 10]
//	}
//
// # Gradients
//
// BadFFT's backward pass is the inverse real FFT of the upstream gradient.
// It is not the derivative of the magnitude spectrum and exists to
// demonstrate a custom Function with a deliberately non-inverse backward.
package nn
