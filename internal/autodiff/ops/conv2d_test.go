package ops

import (
	"testing"

	"github.com/SubhasisDebsharma/tutorials/internal/backend/cpu"
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

// TestScipyConv2DOp_Shapes checks forward and gradient shapes for square kernels.
func TestScipyConv2DOp_Shapes(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name       string
		input      tensor.Shape
		kernel     tensor.Shape
		wantOutput tensor.Shape
	}{
		{"8x8 input, 3x3 kernel", tensor.Shape{8, 8}, tensor.Shape{3, 3}, tensor.Shape{6, 6}},
		{"10x10 input, 3x3 kernel", tensor.Shape{10, 10}, tensor.Shape{3, 3}, tensor.Shape{8, 8}},
		{"rectangular input", tensor.Shape{9, 5}, tensor.Shape{2, 2}, tensor.Shape{8, 4}},
		{"kernel equals input", tensor.Shape{4, 4}, tensor.Shape{4, 4}, tensor.Shape{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewScipyConv2DOp(backend)
			input := tensor.Randn(tt.input)
			kernel := tensor.Randn(tt.kernel)

			output := op.Forward(input, kernel)
			require.True(t, output.Shape().Equal(tt.wantOutput), "output %v, want %v", output.Shape(), tt.wantOutput)

			grads := op.Backward(tensor.Randn(output.Shape()))
			require.Len(t, grads, 2)
			assert.True(t, grads[0].Shape().Equal(tt.input), "inputGrad %v, want %v", grads[0].Shape(), tt.input)
			assert.True(t, grads[1].Shape().Equal(tt.kernel), "kernelGrad %v, want %v", grads[1].Shape(), tt.kernel)
		})
	}
}

// TestScipyConv2DOp_BackwardValues checks the exact gradient formulas on a small case.
func TestScipyConv2DOp_BackwardValues(t *testing.T) {
	backend := cpu.New()
	op := NewScipyConv2DOp(backend)

	input := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3})
	kernel := mustFromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	output := op.Forward(input, kernel)
	assert.Equal(t, []float64{37, 47, 67, 77}, output.Data())

	grads := op.Backward(tensor.Filled(output.Shape(), 1))

	// Full convolution of ones with kernel^T = [[1,3],[2,4]].
	assert.Equal(t, []float64{
		1, 4, 3,
		3, 10, 7,
		2, 6, 4,
	}, grads[0].Data())

	// Valid convolution of input with ones: 2x2 window sums.
	assert.Equal(t, []float64{12, 16, 24, 28}, grads[1].Data())
}

// TestScipyConv2DOp_NonSquareKernel documents the transposed-kernel sizing:
// d_input spans output + kernel^T - 1, which differs from the input shape
// when KH != KW.
func TestScipyConv2DOp_NonSquareKernel(t *testing.T) {
	backend := cpu.New()
	op := NewScipyConv2DOp(backend)

	output := op.Forward(tensor.Randn(tensor.Shape{6, 6}), tensor.Randn(tensor.Shape{2, 3}))
	require.True(t, output.Shape().Equal(tensor.Shape{5, 4}))

	grads := op.Backward(tensor.Randn(output.Shape()))

	assert.True(t, grads[0].Shape().Equal(tensor.Shape{7, 5}), "inputGrad %v", grads[0].Shape())
	assert.True(t, grads[1].Shape().Equal(tensor.Shape{2, 3}), "kernelGrad %v", grads[1].Shape())
}

func TestScipyConv2DOp_ReleasesSavedTensors(t *testing.T) {
	backend := cpu.New()
	op := NewScipyConv2DOp(backend)

	output := op.Forward(tensor.Randn(tensor.Shape{5, 5}), tensor.Randn(tensor.Shape{3, 3}))
	op.Backward(tensor.Randn(output.Shape()))

	assert.Nil(t, op.input)
	assert.Nil(t, op.kernel)
	assert.Panics(t, func() { op.Backward(tensor.Randn(output.Shape())) })
}

func TestScipyConv2DOp_DoesNotMutateInputs(t *testing.T) {
	backend := cpu.New()
	op := NewScipyConv2DOp(backend)
	input := tensor.Randn(tensor.Shape{6, 6})
	kernel := tensor.Randn(tensor.Shape{3, 3})
	inputBefore, kernelBefore := input.Clone(), kernel.Clone()

	output := op.Forward(input, kernel)
	op.Backward(tensor.Randn(output.Shape()))

	assert.Equal(t, inputBefore.Data(), input.Data())
	assert.Equal(t, kernelBefore.Data(), kernel.Data())
}

func TestScipyConv2DOp_Panics(t *testing.T) {
	backend := cpu.New()

	t.Run("backward before forward", func(t *testing.T) {
		op := NewScipyConv2DOp(backend)
		assert.Panics(t, func() { op.Backward(tensor.Zeros(tensor.Shape{2, 2})) })
	})

	t.Run("wrong input count", func(t *testing.T) {
		op := NewScipyConv2DOp(backend)
		assert.Panics(t, func() { op.Forward(tensor.Zeros(tensor.Shape{4, 4})) })
	})

	t.Run("input smaller than kernel", func(t *testing.T) {
		op := NewScipyConv2DOp(backend)
		assert.Panics(t, func() {
			op.Forward(tensor.Zeros(tensor.Shape{2, 2}), tensor.Zeros(tensor.Shape{3, 3}))
		})
	})
}
