package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	tests := []struct {
		name  string
		c     RGB
		width int
		want  string
	}{
		{name: "red", c: red, width: 4, want: "\033[48;2;255;0;0m    \033[0m"},
		{name: "default width", c: navy, width: 0, want: "\033[48;2;0;0;128m        \033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColourPreview(tt.c, tt.width); got != tt.want {
				t.Errorf("ColourPreview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColourPreviewWithText(t *testing.T) {
	tests := []struct {
		name  string
		c     RGB
		text  string
		width int
		want  string
	}{
		{
			name: "dark background gets white text",
			c:    navy, text: "1", width: 4,
			want: "\033[48;2;0;0;128m\033[38;2;255;255;255m 1  \033[0m",
		},
		{
			name: "light background gets black text",
			c:    white, text: "12", width: 4,
			want: "\033[48;2;255;255;255m\033[38;2;0;0;0m 12 \033[0m",
		},
		{
			name: "long text is truncated",
			c:    black, text: "primary", width: 4,
			want: "\033[48;2;0;0;0m\033[38;2;255;255;255mprim\033[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColourPreviewWithText(tt.c, tt.text, tt.width); got != tt.want {
				t.Errorf("ColourPreviewWithText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatColour(t *testing.T) {
	swatch := ColourPreview(sky, 4)

	if got, want := FormatColourWithPreview(sky, 4), swatch+" #87CEEB"; got != want {
		t.Errorf("FormatColourWithPreview() = %q, want %q", got, want)
	}

	got := FormatColourWithLabel(sky, "accent", 4)
	if !strings.HasPrefix(got, swatch+"  accent ") || !strings.HasSuffix(got, " #87CEEB") {
		t.Errorf("FormatColourWithLabel() = %q", got)
	}
	if want := swatch + "  accent       #87CEEB"; got != want {
		t.Errorf("FormatColourWithLabel() = %q, want %q", got, want)
	}
}
