package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/sunsetology/internal/colour"
	"github.com/jmylchreest/sunsetology/internal/export"
)

var (
	red   = colour.RGB{R: 255}
	white = colour.RGB{R: 255, G: 255, B: 255}
)

func TestFormatPalettePreview(t *testing.T) {
	p := colour.Assemble([]colour.RGB{red, white})

	tests := []struct {
		name   string
		format Format
		want   []string
	}{
		{
			name:   "hex",
			format: FormatHex,
			want: []string{
				colour.FormatColourWithPreview(red, 4) + "\n",
				colour.FormatColourWithLabel(red, "primary", 4) + "\n",
				colour.FormatColourWithLabel(white, "secondary", 4) + "\n",
			},
		},
		{
			name:   "rgb",
			format: FormatRGB,
			want: []string{
				colour.ColourPreview(white, 4) + " rgb(255, 255, 255)\n",
				colour.FormatColourWithLabel(white, "background", 4) + "\n",
			},
		},
		{
			name:   "table",
			format: FormatTable,
			want: []string{
				colour.ColourPreviewWithText(red, "1", 4),
				colour.ColourPreviewWithText(white, "2", 4),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatPalette(p, tt.format, export.GradientLinear, true)
			if err != nil {
				t.Fatalf("formatPalette() error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%q", want, got)
				}
			}
		})
	}
}

func TestFormatPaletteEmptyPreview(t *testing.T) {
	got, err := formatPalette(colour.Assemble(nil), FormatHex, export.GradientLinear, true)
	if err != nil {
		t.Fatalf("formatPalette() error: %v", err)
	}
	if got != "" {
		t.Errorf("empty palette preview = %q, want nothing", got)
	}
}

func TestFormatPaletteText(t *testing.T) {
	tests := []struct {
		name string
		p    *colour.Palette
		want string
	}{
		{name: "empty", p: colour.Assemble(nil), want: "Empty palette\n"},
		{
			name: "colours",
			p:    colour.Assemble([]colour.RGB{red}),
			want: "Palette with 1 colours:\n   1: #FF0000 (rgb(255, 0, 0))\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatPalette(tt.p, FormatText, export.GradientLinear, false)
			if err != nil {
				t.Fatalf("formatPalette() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("formatPalette() = %q, want %q", got, tt.want)
			}
		})
	}
}
