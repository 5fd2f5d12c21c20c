// Package tensor provides the array types shared by backends, operations and layers.
package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual numeric work; operations in autodiff/ops only
// orchestrate calls to it.
//
// All methods work on 2D tensors unless stated otherwise and panic on rank
// or shape mismatches.
type Backend interface {
	// Add performs element-wise addition of two tensors with equal shapes.
	Add(a, b *RawTensor) *RawTensor

	// Transpose swaps the two axes of a 2D tensor.
	Transpose(t *RawTensor) *RawTensor

	// Correlate2D computes the 2D cross-correlation of input with kernel.
	Correlate2D(input, kernel *RawTensor, mode Mode) *RawTensor

	// Convolve2D computes the 2D convolution of input with kernel
	// (cross-correlation with the kernel rotated by 180 degrees).
	Convolve2D(input, kernel *RawTensor, mode Mode) *RawTensor

	// RFFT2 computes the unnormalized 2D real-to-complex DFT.
	// For input [H, W] the result is the half-spectrum [H, W/2+1].
	RFFT2(x *RawTensor) *ComplexTensor

	// IRFFT2 computes the 2D complex-to-real inverse DFT of a half-spectrum,
	// producing width samples along the last axis and scaling by 1/(H*width).
	// width <= 0 selects 2*(cols-1).
	IRFFT2(x *ComplexTensor, width int) *RawTensor

	// Abs returns the element-wise modulus of a complex tensor.
	Abs(x *ComplexTensor) *RawTensor

	// Metadata
	Name() string
}
