// Package colour extracts representative colour palettes from images.
package colour

import (
	"cmp"
	"encoding/json"
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// Colour is a palette entry with its common encodings precomputed.
type Colour struct {
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
	Hex  string `json:"hex"`
	HSL  string `json:"hsl"`
	CMYK string `json:"cmyk"`
}

// NewColour encodes c into a Colour.
func NewColour(c RGB) Colour {
	return Colour{
		R:    c.R,
		G:    c.G,
		B:    c.B,
		Hex:  c.Hex(),
		HSL:  c.HSL().String(),
		CMYK: c.CMYK().String(),
	}
}

// RGB returns the colour's channels.
func (c Colour) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// RGBA implements color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// Palette is the result of one extraction.
// Colours holds up to MaxColours distinct colours in descending bucket weight order.
// The role fields point at copies of entries in Colours and are nil only when
// Colours is empty.
type Palette struct {
	Primary    *Colour  `json:"primary"`
	Secondary  *Colour  `json:"secondary"`
	Accent     *Colour  `json:"accent"`
	Background *Colour  `json:"background"`
	Colours    []Colour `json:"colors"`
}

// Assemble encodes the selected colours and assigns roles by luminance.
func Assemble(selected []RGB) *Palette {
	colours := make([]Colour, len(selected))
	for i, c := range selected {
		colours[i] = NewColour(c)
	}

	sorted := SortByLuminance(colours)
	n := len(sorted)

	return &Palette{
		Primary:    pick(sorted, n/2, colours, 0),
		Secondary:  pick(sorted, 0, colours, 1),
		Accent:     pick(sorted, n-1, colours, 2),
		Background: pick(sorted, n-2, colours, 0),
		Colours:    colours,
	}
}

// pick returns sorted[i], or fallback[j] when i is out of range, or nil.
func pick(sorted []Colour, i int, fallback []Colour, j int) *Colour {
	if i >= 0 && i < len(sorted) {
		c := sorted[i]
		return &c
	}
	if j < len(fallback) {
		c := fallback[j]
		return &c
	}
	return nil
}

// SortByLuminance returns a copy of colours ordered brightest first.
// Colours with equal luminance keep their relative order.
func SortByLuminance(colours []Colour) []Colour {
	sorted := slices.Clone(colours)
	slices.SortStableFunc(sorted, func(a, b Colour) int {
		return cmp.Compare(Luminance(b.RGB()), Luminance(a.RGB()))
	})
	return sorted
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Empty reports whether extraction found no opaque pixels.
func (p *Palette) Empty() bool {
	return len(p.Colours) == 0
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, Colour) bool) {
	return func(yield func(int, Colour) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Role is a named slot in the palette.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleBackground Role = "background"
)

// Roles returns the palette roles in display order.
func Roles() []Role {
	return []Role{RolePrimary, RoleSecondary, RoleAccent, RoleBackground}
}

// Role returns the colour assigned to r, or nil.
func (p *Palette) Role(r Role) *Colour {
	switch r {
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	case RoleAccent:
		return p.Accent
	case RoleBackground:
		return p.Background
	default:
		return nil
	}
}

// ToHex returns the hex strings of the palette colours.
func (p *Palette) ToHex() []string {
	hex := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hex[i] = c.Hex
	}
	return hex
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if p.Empty() {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&sb, "  %2d: %s (%s)\n", i+1, c.Hex, c.RGB())
	}
	return sb.String()
}
