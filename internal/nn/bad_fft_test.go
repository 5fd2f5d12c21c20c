package nn

import (
	"testing"

	"github.com/SubhasisDebsharma/tutorials/internal/autodiff"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadFFT_ForwardBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	layer := NewBadFFT(backend)
	input := tensor.Randn(tensor.Shape{8, 8})

	output := layer.Forward(input)
	require.True(t, output.Shape().Equal(tensor.Shape{8, 5}), "got %v", output.Shape())
	for _, v := range output.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
	}

	grads := autodiff.Backward(backend, tensor.Randn(output.Shape()))

	require.Contains(t, grads, input)
	assert.True(t, grads[input].Shape().Equal(tensor.Shape{8, 8}))
}

func TestBadFFT_NoParameters(t *testing.T) {
	var m Module = NewBadFFT(newBackend())
	assert.Empty(t, m.Parameters())
	assert.Equal(t, "BadFFT()", NewBadFFT(newBackend()).String())
}

// TestBadFFT_FeedsScipyConv2D stacks the two layers by hand.
func TestBadFFT_FeedsScipyConv2D(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	fft := NewBadFFT(backend)
	conv := NewScipyConv2D(3, 3, backend)
	input := tensor.Randn(tensor.Shape{8, 8})

	output := conv.Forward(fft.Forward(input))
	require.True(t, output.Shape().Equal(tensor.Shape{6, 3}))

	grads := autodiff.Backward(backend, tensor.Randn(output.Shape()))
	CollectGrads(conv.Parameters(), grads)

	assert.True(t, conv.Kernel().Grad().Shape().Equal(tensor.Shape{3, 3}))
	assert.True(t, grads[input].Shape().Equal(tensor.Shape{8, 8}))
}
