// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements:
//   - 2D cross-correlation and convolution in valid and full modes
//   - 2D real FFT (half-spectrum) and its inverse
//   - Element-wise addition and 2D transpose
//
// Numerical kernels come from gonum: dsp/fourier for the transforms,
// floats for the inner products and mat for the transpose. The FFT follows
// NumPy's conventions: the forward transform is unnormalized and the
// inverse scales by 1/(H*W).
//
// # Basic Usage
//
//	import (
//	    "github.com/SubhasisDebsharma/tutorials/backend/cpu"
//	    "github.com/SubhasisDebsharma/tutorials/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Randn(tensor.Shape{10, 10})
//	    k := tensor.Randn(tensor.Shape{3, 3})
//
//	    y := backend.Correlate2D(x, k, tensor.Valid)   // [8, 8]
//	    z := backend.Convolve2D(y, k, tensor.Full)     // [10, 10]
//	    mag := backend.Abs(backend.RFFT2(x))           // [10, 6]
//	}
//
// # Thread Safety
//
// The CPU backend is stateless and safe for concurrent use.
package cpu
