// Package export renders shareable artwork from an extracted palette.
package export

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/sunsetology/internal/colour"
)

// GradientStops is the maximum number of palette colours used in a gradient.
const GradientStops = 5

// GradientType selects how a gradient is laid out.
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
	GradientConic  GradientType = "conic"
)

// ValidGradientTypes returns the list of gradient types.
func ValidGradientTypes() []GradientType {
	return []GradientType{GradientLinear, GradientRadial, GradientConic}
}

// Stop is a gradient colour at a position in percent.
type Stop struct {
	Colour colour.Colour `json:"colour"`
	Pct    int           `json:"pct"`
}

// Gradient is a brightest-to-darkest run of palette colours.
type Gradient struct {
	Stops []Stop `json:"stops"`
}

// NewGradient builds a gradient from the brightest GradientStops colours of p,
// ordered by luminance with evenly spaced stops.
func NewGradient(p *colour.Palette) Gradient {
	sorted := colour.SortByLuminance(p.Colours)
	if len(sorted) > GradientStops {
		sorted = sorted[:GradientStops]
	}

	stops := make([]Stop, len(sorted))
	for i, c := range sorted {
		pct := 0
		if len(sorted) > 1 {
			pct = int(math.Round(float64(i) / float64(len(sorted)-1) * 100))
		}
		stops[i] = Stop{Colour: c, Pct: pct}
	}
	return Gradient{Stops: stops}
}

// Empty reports whether the gradient has no stops.
func (g Gradient) Empty() bool {
	return len(g.Stops) == 0
}

// CSS returns the gradient as a CSS background-image value.
func (g Gradient) CSS(t GradientType) (string, error) {
	parts := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		parts[i] = fmt.Sprintf("%s %d%%", s.Colour.Hex, s.Pct)
	}
	stops := strings.Join(parts, ", ")

	switch t {
	case GradientLinear:
		return fmt.Sprintf("linear-gradient(to bottom, %s)", stops), nil
	case GradientRadial:
		return fmt.Sprintf("radial-gradient(circle, %s)", stops), nil
	case GradientConic:
		return fmt.Sprintf("conic-gradient(%s)", stops), nil
	default:
		return "", fmt.Errorf("unknown gradient type: %s (valid types: %v)", t, ValidGradientTypes())
	}
}

// At returns the gradient colour at position t in [0, 1], blending neighbouring
// stops in RGB the way CSS does.
func (g Gradient) At(t float64) color.Color {
	switch len(g.Stops) {
	case 0:
		return slate900
	case 1:
		return g.Stops[0].Colour
	}

	pos := math.Max(0, math.Min(1, t)) * 100
	for i := 1; i < len(g.Stops); i++ {
		prev, next := g.Stops[i-1], g.Stops[i]
		if pos > float64(next.Pct) {
			continue
		}

		span := float64(next.Pct - prev.Pct)
		local := 0.0
		if span > 0 {
			local = (pos - float64(prev.Pct)) / span
		}
		blended := toColorful(prev.Colour).BlendRgb(toColorful(next.Colour), local).Clamped()
		r, gg, b := blended.RGB255()
		return color.NRGBA{R: r, G: gg, B: b, A: 255}
	}
	return g.Stops[len(g.Stops)-1].Colour
}

func toColorful(c colour.Colour) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
