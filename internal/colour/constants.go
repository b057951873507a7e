package colour

// Extraction policy constants. They are fixed for every call so that two runs over
// the same image always produce the same palette.
const (
	// MaxSampleWidth is the widest surface the sampler works on. Wider images
	// are downscaled to this width, preserving aspect ratio.
	MaxSampleWidth = 400

	// SampleStride is the pixel step through the flattened surface buffer.
	SampleStride = 10

	// AlphaThreshold is the minimum alpha for a pixel to be sampled.
	AlphaThreshold = 128

	// QuantizationStep is the per-channel cell size used to bucket colours.
	QuantizationStep = 10

	// DistinctThreshold is the Euclidean RGB distance every pair of palette
	// colours must exceed.
	DistinctThreshold = 40.0

	// MaxColours is the maximum number of colours in a palette.
	MaxColours = 8

	// MinWeight is the floor applied to every sample weight.
	MinWeight = 0.1
)
