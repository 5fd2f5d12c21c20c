// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{8, 5} represents a 2D tensor with 8 rows and 5 columns.
type Shape = tensor.Shape

// RawTensor is a dense row-major float64 tensor.
type RawTensor = tensor.RawTensor

// ComplexTensor is a dense row-major complex128 tensor.
type ComplexTensor = tensor.ComplexTensor

// Backend is the compute interface implemented by device backends.
type Backend = tensor.Backend

// Mode selects the output extent of 2D correlation and convolution.
type Mode = tensor.Mode

// Output modes.
const (
	Valid Mode = tensor.Valid
	Full  Mode = tensor.Full
)

// New creates a zero-filled tensor, returning an error for invalid shapes.
func New(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// FromSlice copies data into a new tensor of the given shape.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *RawTensor {
	return tensor.Zeros(shape)
}

// Filled creates a tensor with every element set to value.
func Filled(shape Shape, value float64) *RawTensor {
	return tensor.Filled(shape, value)
}

// Randn creates a tensor with standard normal entries.
func Randn(shape Shape) *RawTensor {
	return tensor.Randn(shape)
}

// RandnWith is Randn drawing from rng, for reproducible runs.
func RandnWith(shape Shape, rng *rand.Rand) *RawTensor {
	return tensor.RandnWith(shape, rng)
}

// Rand creates a tensor with entries uniform in [0, 1).
func Rand(shape Shape) *RawTensor {
	return tensor.Rand(shape)
}
