package colour

import (
	"image"
	"image/color"
	"math/rand/v2"
)

// newSolid returns a w x h image filled with c.
func newSolid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// newBands returns a 10-pixel wide image with one horizontal band of rows per
// colour. With a 10-pixel width each row contributes exactly one sample.
func newBands(rows int, colours ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SampleStride, rows*len(colours)))
	for i, c := range colours {
		for y := i * rows; y < (i+1)*rows; y++ {
			for x := range SampleStride {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// newNoise returns a reproducible image of random opaque pixels.
func newNoise(w, h int, seed uint64) *image.NRGBA {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(rng.IntN(256))
		img.Pix[i+1] = uint8(rng.IntN(256))
		img.Pix[i+2] = uint8(rng.IntN(256))
		img.Pix[i+3] = 255
	}
	return img
}

func nrgba(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
