// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense 2D float64 tensors and the backend contract
// used by the NumPy/SciPy-style extension operations.
//
// # Overview
//
// This package provides:
//   - RawTensor: row-major float64 storage with a shape
//   - ComplexTensor: complex128 storage for half-spectra
//   - Backend: the compute interface (correlation, convolution, real FFT)
//   - Creation helpers: Zeros, Full, Randn, Rand
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
//	    x := tensor.Randn(tensor.Shape{8, 8})
//	    k := tensor.Randn(tensor.Shape{3, 3})
//
//	    y := backend.Correlate2D(x, k, tensor.Valid) // [6, 6]
//	    spectrum := backend.RFFT2(x)                  // [8, 5] complex
//	}
//
// # Layout
//
// Tensors are contiguous and row-major. Data returns the backing slice, so
// writes through it are visible to every holder of the tensor.
package tensor
