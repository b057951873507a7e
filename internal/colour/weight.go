package colour

import "fmt"

// WeightFunc scores how much a sampled pixel should count towards its bucket.
// Extraction clamps the result to MinWeight, so a WeightFunc may return any value.
type WeightFunc func(r, g, b uint8, hsl HSL) float64

// NeutralWeight counts every pixel equally.
func NeutralWeight(_, _, _ uint8, _ HSL) float64 {
	return 1
}

// SunsetWeight favours warm reds, oranges, pinks and purples, then twilight blues,
// and penalises mid greys and blown-out whites.
func SunsetWeight(_, _, _ uint8, hsl HSL) float64 {
	weight := 1.0

	if hsl.H > 300 || hsl.H < 60 {
		weight += 2.0
	} else if hsl.H > 200 && hsl.H < 260 && hsl.L < 60 {
		weight += 1.5
	}

	// Near-black greys stay unpenalised; they are usually silhouettes.
	if hsl.S < 20 && hsl.L > 15 && hsl.L < 85 {
		weight -= 0.5
	}

	if hsl.L > 95 {
		weight -= 0.8
	}

	return weight
}

// weigh applies fn to c and clamps the result to MinWeight.
func weigh(fn WeightFunc, c RGB, hsl HSL) float64 {
	if fn == nil {
		fn = NeutralWeight
	}
	return max(MinWeight, fn(c.R, c.G, c.B, hsl))
}

// Theme names a weighting strategy.
type Theme string

const (
	// ThemeSunset prioritises sunset tones.
	ThemeSunset Theme = "sunset"

	// ThemeGeneral extracts without any bias.
	ThemeGeneral Theme = "general"
)

// ValidThemes returns the list of known themes.
func ValidThemes() []Theme {
	return []Theme{ThemeSunset, ThemeGeneral}
}

// Weight returns the WeightFunc for the theme.
func (t Theme) Weight() (WeightFunc, error) {
	switch t {
	case ThemeSunset:
		return SunsetWeight, nil
	case ThemeGeneral:
		return NeutralWeight, nil
	default:
		return nil, fmt.Errorf("unknown theme: %s (valid themes: %v)", t, ValidThemes())
	}
}
