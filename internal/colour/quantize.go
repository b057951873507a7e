package colour

import "math"

// Bucket accumulates the weight of every sample that falls into one quantization cell.
type Bucket struct {
	// Key is the packed quantized colour of the cell.
	Key uint32

	// Count is the accumulated sample weight.
	Count float64

	// RGB is the first colour seen in the cell. It is never re-averaged.
	RGB RGB
}

// Quantizer groups weighted colours into buckets, remembering the order in which
// buckets were first created.
type Quantizer struct {
	index   map[uint32]int
	buckets []Bucket
}

// NewQuantizer creates an empty Quantizer.
func NewQuantizer() *Quantizer {
	return &Quantizer{
		index: make(map[uint32]int),
	}
}

// Add accumulates weight into the bucket for c, creating it if needed.
func (q *Quantizer) Add(c RGB, weight float64) {
	key := QuantizeKey(c)
	i, ok := q.index[key]
	if !ok {
		i = len(q.buckets)
		q.index[key] = i
		q.buckets = append(q.buckets, Bucket{Key: key, RGB: c})
	}
	q.buckets[i].Count += weight
}

// Len returns the number of buckets.
func (q *Quantizer) Len() int {
	return len(q.buckets)
}

// Buckets returns a copy of the buckets in creation order.
func (q *Quantizer) Buckets() []Bucket {
	out := make([]Bucket, len(q.buckets))
	copy(out, q.buckets)
	return out
}

// Quantize rounds each channel of c to the nearest multiple of QuantizationStep.
// Channels may round up to 260.
func Quantize(c RGB) (r, g, b int) {
	return quantizeChannel(c.R), quantizeChannel(c.G), quantizeChannel(c.B)
}

// QuantizeKey packs the quantized channels of c into a single map key.
func QuantizeKey(c RGB) uint32 {
	r, g, b := Quantize(c)
	return uint32(r)<<20 | uint32(g)<<10 | uint32(b)
}

func quantizeChannel(v uint8) int {
	return int(math.Round(float64(v)/QuantizationStep)) * QuantizationStep
}
