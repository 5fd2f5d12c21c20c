package cpu

import (
	"fmt"

	"github.com/SubhasisDebsharma/tutorials/internal/parallel"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Correlate2D computes the 2D cross-correlation of input with kernel.
//
// Input shape:  [H, W]
// Kernel shape: [KH, KW]
// Output shape:
//
//	valid: [H - KH + 1, W - KW + 1]
//	full:  [H + KH - 1, W + KW - 1]
//
// out[i, j] = sum_{p,q} in[i+p-offH, j+q-offW] * kernel[p, q], where
// offH, offW are 0 for valid mode and KH-1, KW-1 for full mode and
// positions outside the input read as zero.
//
// Valid mode panics if the input is smaller than the kernel along either axis.
func (cpu *CPUBackend) Correlate2D(input, kernel *tensor.RawTensor, mode tensor.Mode) *tensor.RawTensor {
	validateConv2DArgs("correlate2d", input, kernel, mode)
	return correlate2d(input, kernel, mode, cpu.parallel)
}

// Convolve2D computes the 2D convolution of input with kernel.
//
// Convolution is cross-correlation with the kernel rotated by 180 degrees,
// so output shapes follow Correlate2D.
func (cpu *CPUBackend) Convolve2D(input, kernel *tensor.RawTensor, mode tensor.Mode) *tensor.RawTensor {
	validateConv2DArgs("convolve2d", input, kernel, mode)
	return correlate2d(input, rot180(kernel), mode, cpu.parallel)
}

func validateConv2DArgs(op string, input, kernel *tensor.RawTensor, mode tensor.Mode) {
	if !input.Shape().Is2D() {
		panic(fmt.Sprintf("%s: input must be 2D [H,W], got %dD", op, len(input.Shape())))
	}
	if !kernel.Shape().Is2D() {
		panic(fmt.Sprintf("%s: kernel must be 2D [KH,KW], got %dD", op, len(kernel.Shape())))
	}

	switch mode {
	case tensor.Valid:
		H, W := input.Shape()[0], input.Shape()[1]
		KH, KW := kernel.Shape()[0], kernel.Shape()[1]
		if H < KH || W < KW {
			panic(fmt.Sprintf("%s: valid mode needs input %v at least as large as kernel %v",
				op, input.Shape(), kernel.Shape()))
		}
	case tensor.Full:
	default:
		panic(fmt.Sprintf("%s: unsupported mode %s", op, mode))
	}
}

// correlate2d zero-pads the input for full mode, then slides the kernel
// over every valid position. Each output element is a sum of KH row dot
// products. Output rows are independent and are split across workers.
func correlate2d(input, kernel *tensor.RawTensor, mode tensor.Mode, cfg parallel.Config) *tensor.RawTensor {
	KH, KW := kernel.Shape()[0], kernel.Shape()[1]

	src := input
	if mode == tensor.Full {
		src = zeroPad(input, KH-1, KW-1)
	}

	H, W := src.Shape()[0], src.Shape()[1]
	HOut := H - KH + 1
	WOut := W - KW + 1

	output := tensor.MustNew(tensor.Shape{HOut, WOut})

	srcData := src.Data()
	kernelData := kernel.Data()
	outputData := output.Data()

	parallel.For(HOut, func(i int) {
		for j := 0; j < WOut; j++ {
			sum := 0.0
			for p := 0; p < KH; p++ {
				row := srcData[(i+p)*W+j : (i+p)*W+j+KW]
				sum += floats.Dot(row, kernelData[p*KW:(p+1)*KW])
			}
			outputData[i*WOut+j] = sum
		}
	}, cfg)

	return output
}

// zeroPad surrounds a 2D tensor with padH zero rows and padW zero columns on each side.
func zeroPad(x *tensor.RawTensor, padH, padW int) *tensor.RawTensor {
	H, W := x.Shape()[0], x.Shape()[1]
	padded := tensor.MustNew(tensor.Shape{H + 2*padH, W + 2*padW})

	paddedW := W + 2*padW
	src := x.Data()
	dst := padded.Data()
	for i := 0; i < H; i++ {
		start := (i+padH)*paddedW + padW
		copy(dst[start:start+W], src[i*W:(i+1)*W])
	}
	return padded
}

// rot180 flips a 2D tensor along both axes.
func rot180(k *tensor.RawTensor) *tensor.RawTensor {
	flipped := tensor.MustNew(k.Shape())
	src := k.Data()
	dst := flipped.Data()
	n := len(src)
	for i := range src {
		dst[n-1-i] = src[i]
	}
	return flipped
}
