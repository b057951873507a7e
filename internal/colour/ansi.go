package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns a solid block of width spaces on a c background.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with text centred on it, in
// black or white depending on the block's luminance.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := RGB{R: 255, G: 255, B: 255}
	if Luminance(c) > 140 {
		fg = RGB{}
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgCode := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	return bg + fgCode + display + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(c RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(c, width), c.Hex())
}

// FormatColourWithLabel formats a colour with a label and preview.
func FormatColourWithLabel(c RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-12s %s", ColourPreview(c, width), label, c.Hex())
}
