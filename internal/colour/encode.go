package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL is a colour in HSL space with integer components.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// CMYK is a colour in CMYK space with integer percentage components.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as an uppercase "#RRGGBB" string.
func (c RGB) Hex() string {
	// The 1<<24 bit keeps leading zeros; it is sliced off after formatting.
	v := (1 << 24) | int(c.R)<<16 | int(c.G)<<8 | int(c.B)
	return "#" + strings.ToUpper(strconv.FormatInt(int64(v), 16)[1:])
}

// HSL converts the colour to HSL, rounding each component to the nearest integer.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2.0

	var h, s float64
	if maxVal != minVal {
		d := maxVal - minVal
		if l > 0.5 {
			s = d / (2 - maxVal - minVal)
		} else {
			s = d / (maxVal + minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	// Hues just below 360 round up to 360, which is the same angle as 0.
	deg := int(math.Round(h*360)) % 360

	return HSL{
		H: deg,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// CMYK converts the colour to CMYK percentages.
func (c RGB) CMYK() CMYK {
	cf := 1 - float64(c.R)/255.0
	mf := 1 - float64(c.G)/255.0
	yf := 1 - float64(c.B)/255.0
	k := math.Min(cf, math.Min(mf, yf))

	// Pure black has no chroma; avoid dividing by zero.
	if d := 1 - k; d != 0 {
		cf = (cf - k) / d
		mf = (mf - k) / d
		yf = (yf - k) / d
	} else {
		cf, mf, yf = 0, 0, 0
	}

	return CMYK{
		C: int(math.Round(cf * 100)),
		M: int(math.Round(mf * 100)),
		Y: int(math.Round(yf * 100)),
		K: int(math.Round(k * 100)),
	}
}

// String formats the HSL colour as "H, S%, L%".
func (h HSL) String() string {
	return fmt.Sprintf("%d, %d%%, %d%%", h.H, h.S, h.L)
}

// String formats the CMYK colour as "C%, M%, Y%, K%".
func (c CMYK) String() string {
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", c.C, c.M, c.Y, c.K)
}

// ParseHex parses a "#RRGGBB" or "RRGGBB" string, in either case.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Distance returns the Euclidean distance between two colours in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Luminance returns the perceived brightness 0.299r + 0.587g + 0.114b,
// in the range [0, 255].
func Luminance(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}
