package autodiff

import (
	"github.com/SubhasisDebsharma/tutorials/internal/autodiff/ops"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// node is one recorded application of a Function.
type node struct {
	fn     ops.Function
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	// ... apply functions ...
//	gradients := tape.Backward(outputGrad, backend)
type GradientTape struct {
	nodes     []node // Recorded operations (in execution order)
	recording bool   // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		nodes:     make([]node, 0, 16),
		recording: false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an applied function with its inputs and output to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(fn ops.Function, inputs []*tensor.RawTensor, output *tensor.RawTensor) {
	if t.recording {
		t.nodes = append(t.nodes, node{fn: fn, inputs: inputs, output: output})
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.nodes = t.nodes[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.nodes)
}

// Backward computes gradients for all inputs by walking the tape in reverse.
//
// Algorithm:
//  1. Seed the last recorded output with outputGrad
//  2. Walk operations in reverse order
//  3. For each operation with a gradient, call Function.Backward
//  4. Accumulate gradients when the same tensor is used multiple times
//
// Functions release their saved state in Backward, so a tape can be walked
// once; call Clear before recording the next forward pass.
//
// Returns a map from RawTensor to its accumulated gradient.
func (t *GradientTape) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	if len(t.nodes) == 0 {
		return grads
	}

	// Stop recording during backward pass to prevent recording gradient operations
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	grads[t.nodes[len(t.nodes)-1].output] = outputGrad

	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := t.nodes[i]
		outGrad, ok := grads[n.output]
		if !ok {
			continue // No gradient flows to this operation
		}
		t.accumulateGrads(n, n.fn.Backward(outGrad), grads, backend)
	}

	return grads
}

// accumulateGrads accumulates gradients for each input tensor.
func (t *GradientTape) accumulateGrads(
	n node,
	inputGrads []*tensor.RawTensor,
	grads map[*tensor.RawTensor]*tensor.RawTensor,
	backend tensor.Backend,
) {
	for j, input := range n.inputs {
		if j >= len(inputGrads) {
			break
		}
		inputGrad := inputGrads[j]
		if inputGrad == nil {
			continue
		}
		if existing, ok := grads[input]; ok {
			grads[input] = backend.Add(existing, inputGrad)
		} else {
			grads[input] = inputGrad
		}
	}
}
