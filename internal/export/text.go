package export

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// typeface identifies one of the bundled Go fonts.
type typeface int

const (
	faceRegular typeface = iota
	faceBold
	faceItalic
	faceMono
)

func (t typeface) ttf() []byte {
	switch t {
	case faceBold:
		return gobold.TTF
	case faceItalic:
		return goitalic.TTF
	case faceMono:
		return gomono.TTF
	default:
		return goregular.TTF
	}
}

// newFace returns a font face for t at the given pixel size.
func newFace(t typeface, size float64) (font.Face, error) {
	return parseFace(t.ttf(), size)
}

// parseFace returns a face for OpenType or TrueType data at the given pixel size.
func parseFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// drawText draws s with its baseline starting at (x, y).
func drawText(dst draw.Image, face font.Face, x, y int, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawTextRight draws s so that it ends at x.
func drawTextRight(dst draw.Image, face font.Face, x, y int, c color.Color, s string) {
	drawText(dst, face, x-textWidth(face, s), y, c, s)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// wrapText splits s into lines no wider than width, breaking on spaces.
// Words wider than width, such as unspaced CJK text, break between runes.
func wrapText(face font.Face, s string, width int) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		words = append(words, splitWide(face, w, width)...)
	}
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if textWidth(face, candidate) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// splitWide breaks w into rune runs no wider than width.
func splitWide(face font.Face, w string, width int) []string {
	if textWidth(face, w) <= width {
		return []string{w}
	}

	var parts []string
	var run []rune
	for _, r := range w {
		if len(run) > 0 && textWidth(face, string(append(run, r))) > width {
			parts = append(parts, string(run))
			run = run[:0]
		}
		run = append(run, r)
	}
	return append(parts, string(run))
}

// fillRect fills r with c, blending over the existing pixels.
func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}
