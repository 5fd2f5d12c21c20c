package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *RawTensor {
	// Data is already zero-initialized by make()
	return MustNew(shape)
}

// Filled creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Filled(tensor.Shape{3, 3}, 3.14)
func Filled(shape Shape, value float64) *RawTensor {
	t := MustNew(shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution (mean=0, std=1).
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	t := tensor.Randn(tensor.Shape{8, 8})
func Randn(shape Shape) *RawTensor {
	return RandnWith(shape, nil)
}

// RandnWith is Randn drawing from rng. A nil rng uses the package-level source.
// Uses Box-Muller transform for generating normal distribution.
func RandnWith(shape Shape, rng *rand.Rand) *RawTensor {
	uniform := rand.Float64 //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
	if rng != nil {
		uniform = rng.Float64
	}

	t := MustNew(shape)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := 1.0 - uniform() // (0, 1]: keeps Log finite
		u2 := uniform()
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = z0
		if i+1 < len(data) {
			data[i+1] = z1
		}
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
//
// Example:
//
//	t := tensor.Rand(tensor.Shape{10, 10})
func Rand(shape Shape) *RawTensor {
	t := MustNew(shape)
	data := t.Data()
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally
	}
	return t
}
