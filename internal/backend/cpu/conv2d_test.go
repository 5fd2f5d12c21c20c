package cpu

import (
	"testing"

	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return raw
}

// seq3x3 is the 3x3 input
//
//	1 2 3
//	4 5 6
//	7 8 9
func seq3x3(t *testing.T) *tensor.RawTensor {
	return mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3})
}

// TestCorrelate2D_BasicValid tests valid-mode correlation with a diagonal kernel.
func TestCorrelate2D_BasicValid(t *testing.T) {
	backend := New()

	// Identity-like kernel:
	// 1 0
	// 0 1
	kernel := mustFromSlice(t, []float64{1, 0, 0, 1}, tensor.Shape{2, 2})

	output := backend.Correlate2D(seq3x3(t), kernel, tensor.Valid)

	require.True(t, output.Shape().Equal(tensor.Shape{2, 2}), "got shape %v", output.Shape())

	// Expected output (diagonal sum):
	// [1,2,4,5] -> 1 + 5 = 6
	// [2,3,5,6] -> 2 + 6 = 8
	// [4,5,7,8] -> 4 + 8 = 12
	// [5,6,8,9] -> 5 + 9 = 14
	assert.Equal(t, []float64{6, 8, 12, 14}, output.Data())
}

func TestCorrelate2D_Valid(t *testing.T) {
	backend := New()
	kernel := mustFromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	output := backend.Correlate2D(seq3x3(t), kernel, tensor.Valid)

	// (0,0): 1*1 + 2*2 + 4*3 + 5*4 = 37
	assert.Equal(t, []float64{37, 47, 67, 77}, output.Data())
}

func TestConvolve2D_Valid(t *testing.T) {
	backend := New()
	kernel := mustFromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	output := backend.Convolve2D(seq3x3(t), kernel, tensor.Valid)

	// Kernel rotated: [[4,3],[2,1]]; (0,0): 1*4 + 2*3 + 4*2 + 5*1 = 23
	assert.Equal(t, []float64{23, 33, 53, 63}, output.Data())
}

func TestConvolve2D_FullOfImpulse(t *testing.T) {
	backend := New()
	impulse := mustFromSlice(t, []float64{1}, tensor.Shape{1, 1})
	kernel := mustFromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	conv := backend.Convolve2D(impulse, kernel, tensor.Full)
	corr := backend.Correlate2D(impulse, kernel, tensor.Full)

	// Convolution with an impulse reproduces the kernel; correlation flips it.
	assert.Equal(t, []float64{1, 2, 3, 4}, conv.Data())
	assert.Equal(t, []float64{4, 3, 2, 1}, corr.Data())
}

func TestConvolve2D_Full(t *testing.T) {
	backend := New()
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	ones := tensor.Filled(tensor.Shape{2, 2}, 1)

	output := backend.Convolve2D(a, ones, tensor.Full)

	require.True(t, output.Shape().Equal(tensor.Shape{3, 3}))
	assert.Equal(t, []float64{
		1, 3, 2,
		4, 10, 6,
		3, 7, 4,
	}, output.Data())
}

func TestCorrelate2D_OutputShapes(t *testing.T) {
	backend := New()

	tests := []struct {
		name   string
		input  tensor.Shape
		kernel tensor.Shape
		mode   tensor.Mode
		want   tensor.Shape
	}{
		{"valid 8x8 k3", tensor.Shape{8, 8}, tensor.Shape{3, 3}, tensor.Valid, tensor.Shape{6, 6}},
		{"valid 10x10 k3", tensor.Shape{10, 10}, tensor.Shape{3, 3}, tensor.Valid, tensor.Shape{8, 8}},
		{"valid rect", tensor.Shape{7, 5}, tensor.Shape{2, 4}, tensor.Valid, tensor.Shape{6, 2}},
		{"valid equal", tensor.Shape{3, 3}, tensor.Shape{3, 3}, tensor.Valid, tensor.Shape{1, 1}},
		{"full 6x6 k3", tensor.Shape{6, 6}, tensor.Shape{3, 3}, tensor.Full, tensor.Shape{8, 8}},
		{"full rect", tensor.Shape{4, 2}, tensor.Shape{2, 3}, tensor.Full, tensor.Shape{5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := backend.Correlate2D(tensor.Randn(tt.input), tensor.Randn(tt.kernel), tt.mode)
			assert.True(t, out.Shape().Equal(tt.want), "got %v, want %v", out.Shape(), tt.want)
		})
	}
}

func TestCorrelate2D_DoesNotMutateInputs(t *testing.T) {
	backend := New()
	input := tensor.Randn(tensor.Shape{5, 5})
	kernel := tensor.Randn(tensor.Shape{2, 2})
	inputBefore := input.Clone()
	kernelBefore := kernel.Clone()

	backend.Convolve2D(input, kernel, tensor.Full)

	assert.Equal(t, inputBefore.Data(), input.Data())
	assert.Equal(t, kernelBefore.Data(), kernel.Data())
}

func TestCorrelate2D_Panics(t *testing.T) {
	backend := New()

	t.Run("kernel larger than input", func(t *testing.T) {
		assert.Panics(t, func() {
			backend.Correlate2D(tensor.Zeros(tensor.Shape{2, 5}), tensor.Zeros(tensor.Shape{3, 3}), tensor.Valid)
		})
	})

	t.Run("non-2D input", func(t *testing.T) {
		assert.Panics(t, func() {
			backend.Convolve2D(tensor.Zeros(tensor.Shape{1, 4, 4}), tensor.Zeros(tensor.Shape{2, 2}), tensor.Valid)
		})
	})

	t.Run("unknown mode", func(t *testing.T) {
		assert.Panics(t, func() {
			backend.Correlate2D(tensor.Zeros(tensor.Shape{4, 4}), tensor.Zeros(tensor.Shape{2, 2}), tensor.Mode(7))
		})
	})
}
