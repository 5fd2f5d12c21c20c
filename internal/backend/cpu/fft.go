package cpu

import (
	"fmt"
	"math/cmplx"

	"github.com/SubhasisDebsharma/tutorials/internal/parallel"
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// RFFT2 computes the unnormalized 2D real-to-complex DFT of x.
//
// Input shape:  [H, W]
// Output shape: [H, W/2+1]
//
// Algorithm:
//  1. Real FFT of every row, keeping the W/2+1 non-redundant bins
//  2. Complex FFT of every column of the half-spectrum
func (cpu *CPUBackend) RFFT2(x *tensor.RawTensor) *tensor.ComplexTensor {
	shape := x.Shape()
	if !shape.Is2D() {
		panic(fmt.Sprintf("rfft2: input must be 2D [H,W], got %dD", len(shape)))
	}
	H, W := shape[0], shape[1]
	WHalf := W/2 + 1

	spec, err := tensor.NewComplex(tensor.Shape{H, WHalf})
	if err != nil {
		panic(fmt.Sprintf("rfft2: failed to create output tensor: %v", err))
	}
	specData := spec.Data()
	xData := x.Data()

	// gonum plans keep scratch space, so each chunk builds its own.
	parallel.ForChunks(H, func(start, end int) {
		rowFFT := fourier.NewFFT(W)
		for i := start; i < end; i++ {
			rowFFT.Coefficients(specData[i*WHalf:(i+1)*WHalf], xData[i*W:(i+1)*W])
		}
	}, cpu.parallel)

	parallel.ForChunks(WHalf, func(start, end int) {
		colFFT := fourier.NewCmplxFFT(H)
		col := make([]complex128, H)
		for j := start; j < end; j++ {
			gatherColumn(col, specData, j, WHalf)
			colFFT.Coefficients(col, col)
			scatterColumn(specData, col, j, WHalf)
		}
	}, cpu.parallel)

	return spec
}

// IRFFT2 computes the 2D complex-to-real inverse DFT of a half-spectrum.
//
// Input shape:  [H, M]
// Output shape: [H, width], with width = 2*(M-1) when width <= 0.
//
// The last axis is truncated or zero-padded to width/2+1 bins before the
// inverse real transform. The result is scaled by 1/(H*width), so
// IRFFT2(RFFT2(x), W) reproduces x.
func (cpu *CPUBackend) IRFFT2(x *tensor.ComplexTensor, width int) *tensor.RawTensor {
	shape := x.Shape()
	if !shape.Is2D() {
		panic(fmt.Sprintf("irfft2: input must be 2D [H,M], got %dD", len(shape)))
	}
	H, M := shape[0], shape[1]
	if width <= 0 {
		width = 2 * (M - 1)
	}
	if width <= 0 {
		panic(fmt.Sprintf("irfft2: cannot infer output width from %d coefficients", M))
	}
	WHalf := width/2 + 1

	// Column pass over a resized copy so the caller's spectrum is untouched.
	work := make([]complex128, H*WHalf)
	xData := x.Data()
	for i := 0; i < H; i++ {
		copy(work[i*WHalf:(i+1)*WHalf], xData[i*M:i*M+min(M, WHalf)])
	}

	parallel.ForChunks(WHalf, func(start, end int) {
		colFFT := fourier.NewCmplxFFT(H)
		col := make([]complex128, H)
		for j := start; j < end; j++ {
			gatherColumn(col, work, j, WHalf)
			colFFT.Sequence(col, col)
			scatterColumn(work, col, j, WHalf)
		}
	}, cpu.parallel)

	output := tensor.MustNew(tensor.Shape{H, width})
	outData := output.Data()

	parallel.ForChunks(H, func(start, end int) {
		rowFFT := fourier.NewFFT(width)
		for i := start; i < end; i++ {
			rowFFT.Sequence(outData[i*width:(i+1)*width], work[i*WHalf:(i+1)*WHalf])
		}
	}, cpu.parallel)

	// gonum transforms are unnormalized in both directions.
	floats.Scale(1/float64(H*width), outData)
	return output
}

// Abs returns the element-wise modulus of a complex tensor.
func (cpu *CPUBackend) Abs(x *tensor.ComplexTensor) *tensor.RawTensor {
	output := tensor.MustNew(x.Shape())
	outData := output.Data()
	for i, v := range x.Data() {
		outData[i] = cmplx.Abs(v)
	}
	return output
}

func gatherColumn(dst, data []complex128, j, cols int) {
	for i := range dst {
		dst[i] = data[i*cols+j]
	}
}

func scatterColumn(data, src []complex128, j, cols int) {
	for i, v := range src {
		data[i*cols+j] = v
	}
}
