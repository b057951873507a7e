package colour

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"math"

	"github.com/disintegration/imaging"
)

// ErrCanvasUnavailable is returned when no sampling surface can be built for an
// image, for example when it is nil or has no area.
var ErrCanvasUnavailable = errors.New("sampling surface unavailable")

// Sample is a single pixel read from the sampling surface.
type Sample struct {
	RGB
	A   uint8
	HSL HSL
}

// Surface returns the NRGBA surface the sampler walks. Images wider than
// MaxSampleWidth are resampled down to that width; smaller images are copied as is.
func Surface(img image.Image) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is nil", ErrCanvasUnavailable)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image has no area (%dx%d)", ErrCanvasUnavailable, width, height)
	}

	scale := math.Min(1, float64(MaxSampleWidth)/float64(width))
	sw := int(float64(width) * scale)
	sh := int(float64(height) * scale)
	if sw <= 0 || sh <= 0 {
		return nil, fmt.Errorf("%w: %dx%d scales to %dx%d", ErrCanvasUnavailable, width, height, sw, sh)
	}

	if sw == width && sh == height {
		return imaging.Clone(img), nil
	}
	return imaging.Resize(img, sw, sh, imaging.Linear), nil
}

// SampleImage builds the sampling surface for img and returns the sequence of
// opaque samples taken every SampleStride pixels in raster order.
// Surface errors are returned before any sample is produced.
func SampleImage(img image.Image) (iter.Seq[Sample], error) {
	surface, err := Surface(img)
	if err != nil {
		return nil, err
	}
	return samples(surface), nil
}

func samples(surface *image.NRGBA) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		pix := surface.Pix
		for i := 0; i+3 < len(pix); i += 4 * SampleStride {
			a := pix[i+3]
			if a < AlphaThreshold {
				continue
			}

			rgb := RGB{R: pix[i], G: pix[i+1], B: pix[i+2]}
			if !yield(Sample{RGB: rgb, A: a, HSL: rgb.HSL()}) {
				return
			}
		}
	}
}
