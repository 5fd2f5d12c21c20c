package nn

import (
	"github.com/SubhasisDebsharma/tutorials/internal/tensor"
)

// Randn creates a tensor with random values from standard normal distribution.
//
// Values are drawn from N(0, 1). This is how ScipyConv2D initialises its kernel.
func Randn(shape tensor.Shape) *tensor.RawTensor {
	return tensor.Randn(shape)
}
