package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sunsetology/internal/colour"
	"github.com/jmylchreest/sunsetology/internal/config"
	"github.com/jmylchreest/sunsetology/internal/export"
	"github.com/jmylchreest/sunsetology/internal/image"
)

// Format is an output format for the extract command.
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatHSL   Format = "hsl"
	FormatCMYK  Format = "cmyk"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSS   Format = "css"
	FormatText  Format = "text"
)

// ValidFormats returns the list of output formats.
func ValidFormats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSL, FormatCMYK, FormatTable, FormatJSON, FormatCSS, FormatText}
}

func newExtractCmd(opts *globalOptions) *cobra.Command {
	mode := newEnumFlag(colour.ThemeSunset, colour.ValidThemes())
	algorithm := newEnumFlag(colour.AlgorithmBucket, colour.ValidAlgorithms())
	format := newEnumFlag(FormatHex, ValidFormats())
	gradient := newEnumFlag(export.GradientLinear, export.ValidGradientTypes())
	var output string

	cmd := &cobra.Command{
		Use:   "extract <image|directory>",
		Short: "Extract a colour palette from an image",
		Long: `Extract up to eight visually distinct colours from an image and assign them
the primary, secondary, accent and background roles.

In sunset mode saturated reds, oranges, pinks and purples are favoured; general
mode weighs every colour equally. When given a directory, a random image from
it is used.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF, AVIF

Examples:
  # Extract a sunset palette
  sunsetology extract sunset.jpg

  # Extract without bias, as a table with terminal swatches
  sunsetology extract --mode general --format table --preview beach.png

  # Emit CSS custom properties with a radial gradient
  sunsetology extract -f css -g radial sunset.jpg

  # Save JSON to a file
  sunsetology extract -f json -o palette.json sunset.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args[0], output)
		},
	}

	cmd.Flags().VarP(mode, config.KeyMode, "m", mode.usage("weighting mode"))
	cmd.Flags().VarP(algorithm, config.KeyAlgorithm, "a", algorithm.usage("candidate algorithm"))
	cmd.Flags().VarP(format, config.KeyFormat, "f", format.usage("output format"))
	cmd.Flags().VarP(gradient, config.KeyGradient, "g", gradient.usage("gradient type for css output"))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Bool(config.KeyPreview, false, "show colour swatches when writing to a terminal")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *globalOptions, input, output string) error {
	logger := opts.logger.Named("extract")
	cfg := opts.config

	palette, _, err := extractPalette(input, cfg, logger)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	preview := cfg.Bool(config.KeyPreview) && output == "" && isTerminal(w)

	text, err := formatPalette(palette, Format(cfg.String(config.KeyFormat)), export.GradientType(cfg.String(config.KeyGradient)), preview)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := io.WriteString(w, text)
		return err
	}

	logger.Debug("writing palette", "path", output)
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("palette written", "path", output, "colours", palette.Len())
	return nil
}

// extractPalette resolves input to an image, loads it and extracts its palette.
func extractPalette(input string, cfg *config.Config, logger hclog.Logger) (*colour.Palette, imageSource, error) {
	path, err := image.ResolveImagePath(input)
	if err != nil {
		return nil, imageSource{}, fmt.Errorf("invalid image path: %w", err)
	}

	ec := colour.ExtractorConfig{
		Algorithm: colour.Algorithm(cfg.String(config.KeyAlgorithm)),
		Theme:     colour.Theme(cfg.String(config.KeyMode)),
	}
	if err := ec.Validate(); err != nil {
		return nil, imageSource{}, fmt.Errorf("invalid configuration: %w", err)
	}
	weight, err := ec.Theme.Weight()
	if err != nil {
		return nil, imageSource{}, err
	}

	logger.Debug("loading image", "path", path)
	img, err := image.NewFileLoader().Load(path)
	if err != nil {
		return nil, imageSource{}, fmt.Errorf("failed to load image: %w", err)
	}
	b := img.Bounds()
	logger.Debug("image loaded", "width", b.Dx(), "height", b.Dy())

	extractor, err := colour.NewExtractor(ec.Algorithm, colour.WithLogger(logger))
	if err != nil {
		return nil, imageSource{}, fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(img, weight)
	if err != nil {
		return nil, imageSource{}, fmt.Errorf("failed to extract colours: %w", err)
	}

	if palette.Empty() {
		logger.Warn("no colours extracted, image may be fully transparent", "path", path)
	} else {
		logger.Debug("extracted palette", "mode", ec.Theme, "algorithm", ec.Algorithm, "colours", palette.Len())
	}
	return palette, imageSource{path: path, img: img}, nil
}

// formatPalette renders the palette in the given format.
func formatPalette(p *colour.Palette, f Format, g export.GradientType, preview bool) (string, error) {
	switch f {
	case FormatHex, FormatRGB, FormatHSL, FormatCMYK:
		return formatLines(p, f, preview), nil
	case FormatTable:
		return formatTable(p, preview), nil
	case FormatJSON:
		data, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case FormatCSS:
		return formatCSS(p, g)
	case FormatText:
		return strings.TrimSuffix(p.String(), "\n") + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %v)", f, ValidFormats())
	}
}

func colourValue(c colour.Colour, f Format) string {
	switch f {
	case FormatRGB:
		return c.RGB().String()
	case FormatHSL:
		return c.HSL
	case FormatCMYK:
		return c.CMYK
	default:
		return c.Hex
	}
}

func formatLines(p *colour.Palette, f Format, preview bool) string {
	var sb strings.Builder
	for _, c := range p.All() {
		switch {
		case preview && f == FormatHex:
			sb.WriteString(colour.FormatColourWithPreview(c.RGB(), 4))
		case preview:
			sb.WriteString(colour.ColourPreview(c.RGB(), 4) + " " + colourValue(c, f))
		default:
			sb.WriteString(colourValue(c, f))
		}
		sb.WriteString("\n")
	}

	if preview && !p.Empty() {
		sb.WriteString("\n")
		for _, r := range colour.Roles() {
			if c := p.Role(r); c != nil {
				sb.WriteString(colour.FormatColourWithLabel(c.RGB(), string(r), 4) + "\n")
			}
		}
	}
	return sb.String()
}

// rolesOf lists the roles c fills in p.
func rolesOf(p *colour.Palette, c colour.Colour) string {
	var roles []string
	for _, r := range colour.Roles() {
		if rc := p.Role(r); rc != nil && rc.Hex == c.Hex {
			roles = append(roles, string(r))
		}
	}
	return strings.Join(roles, ", ")
}

func formatTable(p *colour.Palette, preview bool) string {
	table := NewTable("#", "HEX", "RGB", "HSL", "CMYK", "ROLES")
	for i, c := range p.All() {
		index := strconv.Itoa(i + 1)
		if preview {
			index = colour.ColourPreviewWithText(c.RGB(), index, 4)
		}
		table.AddRow(index, c.Hex, c.RGB().String(), c.HSL, c.CMYK, rolesOf(p, c))
	}
	return table.Render()
}

func formatCSS(p *colour.Palette, g export.GradientType) (string, error) {
	gradient, err := export.NewGradient(p).CSS(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, r := range colour.Roles() {
		if c := p.Role(r); c != nil {
			fmt.Fprintf(&sb, "  --sunset-%s: %s;\n", r, c.Hex)
		}
	}
	for i, c := range p.All() {
		fmt.Fprintf(&sb, "  --sunset-colour-%d: %s;\n", i+1, c.Hex)
	}
	if !p.Empty() {
		fmt.Fprintf(&sb, "  --sunset-gradient: %s;\n", gradient)
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}
