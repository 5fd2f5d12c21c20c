package tensor

// Mode selects the output extent of a 2D correlation or convolution.
type Mode int

// Supported output modes.
const (
	// Valid keeps only positions where the kernel fully overlaps the input:
	// output = input - kernel + 1 along each axis.
	Valid Mode = iota
	// Full keeps every position with any overlap:
	// output = input + kernel - 1 along each axis.
	Full
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Valid:
		return "valid"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}
